package attendants

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

func (s *Service) Create(ctx context.Context, name string) (entity.Attendant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entity.Attendant{}, fmt.Errorf("%w: nome is required", entity.ErrInvalidInput)
	}
	return s.repo.Create(ctx, entity.Attendant{Name: name})
}

func (s *Service) GetByID(ctx context.Context, id int64) (entity.Attendant, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return entity.Attendant{}, notFound(err, id)
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, page entity.Page) ([]entity.Attendant, error) {
	return s.repo.List(ctx, ListFilter{Page: page})
}

func (s *Service) SearchByName(ctx context.Context, name string, page entity.Page) ([]entity.Attendant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: nome is required", entity.ErrInvalidInput)
	}
	return s.repo.List(ctx, ListFilter{NameContains: name, Page: page})
}

func (s *Service) SortByName(ctx context.Context, page entity.Page) ([]entity.Attendant, error) {
	return s.repo.List(ctx, ListFilter{OrderByName: true, Page: page})
}

func (s *Service) CountTotal(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *Service) Update(ctx context.Context, id int64, patch entity.AttendantPatch) (entity.Attendant, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return entity.Attendant{}, err
	}
	if err := patch.Apply(&current); err != nil {
		return entity.Attendant{}, err
	}
	current.ID = id
	if err := s.repo.Update(ctx, current); err != nil {
		return entity.Attendant{}, notFound(err, id)
	}
	return current, nil
}

// Delete rechaza atendentes vinculados a alguna adopción.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	n, err := s.repo.CountLinks(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: attendant %d is assigned to adoptions and cannot be removed", entity.ErrConflict, id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, id)
	}
	return nil
}

func notFound(err error, id int64) error {
	if errors.Is(err, entity.ErrNotFound) {
		return fmt.Errorf("%w: attendant %d", entity.ErrNotFound, id)
	}
	return err
}
