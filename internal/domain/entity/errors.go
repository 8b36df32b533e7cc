package entity

import "errors"

// Taxonomía común a los cuatro servicios. Los mensajes concretos se agregan
// envolviendo con %w, así los handlers sólo necesitan errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
)
