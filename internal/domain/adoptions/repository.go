package adoptions

import (
	"context"

	"shelter-adoptions/internal/domain/entity"
)

// Repository expone las lecturas de adopciones. Toda escritura pasa por RunInTx.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]entity.Adoption, error)
	GetDetail(ctx context.Context, id int64) (entity.AdoptionDetail, error)

	// Report: orden por data_adocao desc, relaciones cargadas.
	Report(ctx context.Context, page entity.Page) ([]entity.AdoptionDetail, error)
	// ActiveReport: adopciones no canceladas de animales adoptados, una fila por atendente.
	ActiveReport(ctx context.Context, page entity.Page) ([]entity.ActiveAdoptionRow, error)

	// RunInTx ejecuta fn en una transacción. Si fn devuelve error no queda nada escrito.
	RunInTx(ctx context.Context, fn func(tx Tx) error) error
}

// Tx agrupa las operaciones que mueven el estado de una adopción y el
// status_adocao del animal. Se usan sólo dentro de RunInTx.
type Tx interface {
	GetAnimal(ctx context.Context, id int64) (entity.Animal, error)
	GetAdopter(ctx context.Context, id int64) (entity.Adopter, error)
	GetAttendant(ctx context.Context, id int64) (entity.Attendant, error)
	GetAdoption(ctx context.Context, id int64) (entity.Adoption, error)

	// MarkAnimalAdopted pone status_adocao=true sólo si estaba en false.
	// false sin error significa que otro ya lo adoptó.
	MarkAnimalAdopted(ctx context.Context, animalID int64) (bool, error)
	ReleaseAnimal(ctx context.Context, animalID int64) error

	CreateAdoption(ctx context.Context, a entity.Adoption) (entity.Adoption, error)
	// UpdateAdoption sólo escribe data_adocao.
	UpdateAdoption(ctx context.Context, a entity.Adoption) error
	// CancelAdoption pone cancelamento=true sólo si estaba en false.
	CancelAdoption(ctx context.Context, id int64) (bool, error)
	// DeleteAdoption borra primero los vínculos con atendentes.
	DeleteAdoption(ctx context.Context, id int64) error

	// LinkAttendant es idempotente.
	LinkAttendant(ctx context.Context, adoptionID, attendantID int64) error
	UnlinkAttendant(ctx context.Context, adoptionID, attendantID int64) error
}

type ListFilter struct {
	Cancelled   *bool
	Year        *int
	NewestFirst bool // data_adocao desc, id desc
	Page        entity.Page
}
