package attendants

import (
	"context"

	"shelter-adoptions/internal/domain/entity"
)

type Repository interface {
	Create(ctx context.Context, a entity.Attendant) (entity.Attendant, error)
	Update(ctx context.Context, a entity.Attendant) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (entity.Attendant, error)
	List(ctx context.Context, filter ListFilter) ([]entity.Attendant, error)
	Count(ctx context.Context) (int64, error)

	// CountLinks cuenta filas de adocao_atend del atendente.
	CountLinks(ctx context.Context, id int64) (int64, error)
}

type ListFilter struct {
	NameContains string
	OrderByName  bool // false = orden por id
	Page         entity.Page
}
