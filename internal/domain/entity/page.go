package entity

import "fmt"

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Page es la ventana offset/limit de los listados.
type Page struct {
	Offset int
	Limit  int
}

// DefaultPage es offset=0, limit=10.
func DefaultPage() Page {
	return Page{Offset: 0, Limit: DefaultLimit}
}

// NewPage valida la ventana. limit se recorta a MaxLimit.
func NewPage(offset, limit int) (Page, error) {
	if offset < 0 {
		return Page{}, fmt.Errorf("%w: offset must be >= 0", ErrInvalidInput)
	}
	if limit <= 0 {
		return Page{}, fmt.Errorf("%w: limit must be > 0", ErrInvalidInput)
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Offset: offset, Limit: limit}, nil
}

// Normalize aplica los defaults a una Page construida a mano (p.ej. en tests o repos).
func (p Page) Normalize() Page {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Slice devuelve los límites [from, to) de la página sobre n elementos.
func (p Page) Slice(n int) (int, int) {
	p = p.Normalize()
	from := p.Offset
	if from > n {
		from = n
	}
	to := from + p.Limit
	if to > n {
		to = n
	}
	return from, to
}
