package adopters

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shelter-adoptions/internal/domain/entity"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name        string
	Contact     string
	Address     string
	Preferences string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (entity.Adopter, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entity.Adopter{}, fmt.Errorf("%w: nome is required", entity.ErrInvalidInput)
	}
	return s.repo.Create(ctx, entity.Adopter{
		Name:        name,
		Contact:     strings.TrimSpace(in.Contact),
		Address:     strings.TrimSpace(in.Address),
		Preferences: strings.TrimSpace(in.Preferences),
	})
}

func (s *Service) GetByID(ctx context.Context, id int64) (entity.Adopter, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return entity.Adopter{}, notFound(err, id)
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, page entity.Page) ([]entity.Adopter, error) {
	return s.repo.List(ctx, ListFilter{Page: page})
}

func (s *Service) SearchByName(ctx context.Context, name string, page entity.Page) ([]entity.Adopter, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: nome is required", entity.ErrInvalidInput)
	}
	return s.repo.List(ctx, ListFilter{NameContains: name, Page: page})
}

func (s *Service) Update(ctx context.Context, id int64, patch entity.AdopterPatch) (entity.Adopter, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return entity.Adopter{}, err
	}
	if err := patch.Apply(&current); err != nil {
		return entity.Adopter{}, err
	}
	current.ID = id
	if err := s.repo.Update(ctx, current); err != nil {
		return entity.Adopter{}, notFound(err, id)
	}
	return current, nil
}

// Delete rechaza adoptantes con adopciones registradas (activas o no).
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	n, err := s.repo.CountAdoptions(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: adopter %d has registered adoptions and cannot be removed", entity.ErrConflict, id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, id)
	}
	return nil
}

func notFound(err error, id int64) error {
	if errors.Is(err, entity.ErrNotFound) {
		return fmt.Errorf("%w: adopter %d", entity.ErrNotFound, id)
	}
	return err
}
