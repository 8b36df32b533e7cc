package animals

import (
	"context"

	"shelter-adoptions/internal/domain/entity"
)

type Repository interface {
	Create(ctx context.Context, a entity.Animal) (entity.Animal, error)
	Update(ctx context.Context, a entity.Animal) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (entity.Animal, error)
	List(ctx context.Context, filter ListFilter) ([]entity.Animal, error)

	Count(ctx context.Context, adopted *bool) (int64, error)
	CountAdoptedBySpecies(ctx context.Context) (map[string]int64, error)
	CountAdoptions(ctx context.Context, id int64) (int64, error)

	// AdoptionsOf devuelve las adopciones (con relaciones) de los animales dados,
	// ordenadas por id de adopción.
	AdoptionsOf(ctx context.Context, animalIDs []int64) ([]entity.AdoptionDetail, error)
}

type OrderBy string

const (
	OrderByID  OrderBy = "id"
	OrderByAge OrderBy = "age"
)

// ListFilter combina los predicados de los listados. Los campos nil no filtran.
type ListFilter struct {
	NameContains string
	RescueYear   *int
	AdopterID    *int64
	Adopted      *bool
	OrderBy      OrderBy
	Page         entity.Page
}
