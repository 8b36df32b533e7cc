package adopters

import (
	"context"

	"shelter-adoptions/internal/domain/entity"
)

type Repository interface {
	Create(ctx context.Context, a entity.Adopter) (entity.Adopter, error)
	Update(ctx context.Context, a entity.Adopter) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (entity.Adopter, error)
	List(ctx context.Context, filter ListFilter) ([]entity.Adopter, error)
	CountAdoptions(ctx context.Context, id int64) (int64, error)
}

type ListFilter struct {
	NameContains string
	Page         entity.Page
}
