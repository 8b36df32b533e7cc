package animals

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
	Name       string
	Species    string
	Age        int
	RescueDate string // YYYY-MM-DD
	Adopted    *bool
}

func (s *Service) Create(ctx context.Context, in CreateInput) (entity.Animal, error) {
	name := strings.TrimSpace(in.Name)
	species := strings.TrimSpace(in.Species)
	if name == "" {
		return entity.Animal{}, fmt.Errorf("%w: nome is required", entity.ErrInvalidInput)
	}
	if species == "" {
		return entity.Animal{}, fmt.Errorf("%w: especie is required", entity.ErrInvalidInput)
	}
	if in.Age < 0 {
		return entity.Animal{}, fmt.Errorf("%w: idade must be >= 0", entity.ErrInvalidInput)
	}
	// Un animal nuevo nunca está adoptado: el flag sólo lo prende una adopción.
	if in.Adopted != nil && *in.Adopted {
		return entity.Animal{}, fmt.Errorf("%w: status_adocao is managed by adoptions", entity.ErrInvalidInput)
	}
	rescued, err := entity.ParseDate("data_resgate", in.RescueDate)
	if err != nil {
		return entity.Animal{}, err
	}

	return s.repo.Create(ctx, entity.Animal{
		Name:       name,
		Species:    species,
		Age:        in.Age,
		RescueDate: rescued,
	})
}

func (s *Service) GetByID(ctx context.Context, id int64) (entity.Animal, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return entity.Animal{}, notFound(err, id)
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, page entity.Page) ([]entity.Animal, error) {
	return s.repo.List(ctx, ListFilter{Page: page, OrderBy: OrderByID})
}

// Update aplica un merge-patch; el id nunca se toca.
func (s *Service) Update(ctx context.Context, id int64, patch entity.AnimalPatch) (entity.Animal, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return entity.Animal{}, err
	}
	if err := patch.Apply(&current); err != nil {
		return entity.Animal{}, err
	}
	current.ID = id
	if err := s.repo.Update(ctx, current); err != nil {
		return entity.Animal{}, notFound(err, id)
	}
	return current, nil
}

// Delete rechaza animales con historial de adopciones, incluso canceladas.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	n, err := s.repo.CountAdoptions(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: animal %d has adoption history and cannot be removed", entity.ErrConflict, id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, id)
	}
	return nil
}

func (s *Service) SearchByName(ctx context.Context, name string, page entity.Page) ([]entity.Animal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: nome is required", entity.ErrInvalidInput)
	}
	return s.repo.List(ctx, ListFilter{NameContains: name, OrderBy: OrderByID, Page: page})
}

func (s *Service) FilterByRescueYear(ctx context.Context, year int, page entity.Page) ([]entity.Animal, error) {
	if year < 1 || year > 9999 {
		return nil, fmt.Errorf("%w: ano out of range", entity.ErrInvalidInput)
	}
	return s.repo.List(ctx, ListFilter{RescueYear: &year, OrderBy: OrderByID, Page: page})
}

// FilterByAdopter lista los animales que el adoptante adoptó alguna vez.
func (s *Service) FilterByAdopter(ctx context.Context, adopterID int64, page entity.Page) ([]entity.Animal, error) {
	return s.repo.List(ctx, ListFilter{AdopterID: &adopterID, OrderBy: OrderByID, Page: page})
}

// FilterByStatus filtra por status_adocao (nil = todos) y ordena por id o edad.
func (s *Service) FilterByStatus(ctx context.Context, adopted *bool, orderBy OrderBy, page entity.Page) ([]entity.Animal, error) {
	switch orderBy {
	case "":
		orderBy = OrderByID
	case OrderByID, OrderByAge:
	default:
		return nil, fmt.Errorf("%w: order_by must be id or age", entity.ErrInvalidInput)
	}
	return s.repo.List(ctx, ListFilter{Adopted: adopted, OrderBy: orderBy, Page: page})
}

func (s *Service) CountTotal(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx, nil)
}

func (s *Service) CountByStatus(ctx context.Context, adopted bool) (int64, error) {
	return s.repo.Count(ctx, &adopted)
}

func (s *Service) CountAdoptedBySpecies(ctx context.Context) (map[string]int64, error) {
	return s.repo.CountAdoptedBySpecies(ctx)
}

// DetailedListing produce una fila por adopción de cada animal de la página.
// Animales sin adopciones no aportan filas; una página vacía es NotFound.
func (s *Service) DetailedListing(ctx context.Context, page entity.Page) ([]entity.AnimalAdoptionRow, error) {
	items, err := s.repo.List(ctx, ListFilter{OrderBy: OrderByID, Page: page})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no animals found", entity.ErrNotFound)
	}

	ids := make([]int64, 0, len(items))
	for _, a := range items {
		ids = append(ids, a.ID)
	}
	details, err := s.repo.AdoptionsOf(ctx, ids)
	if err != nil {
		return nil, err
	}

	byAnimal := make(map[int64][]entity.AdoptionDetail, len(items))
	for _, d := range details {
		byAnimal[d.AnimalID] = append(byAnimal[d.AnimalID], d)
	}

	out := make([]entity.AnimalAdoptionRow, 0, len(details))
	for _, a := range items {
		for _, d := range byAnimal[a.ID] {
			attendants := d.Attendants
			if attendants == nil {
				attendants = []entity.Attendant{}
			}
			out = append(out, entity.AnimalAdoptionRow{
				Animal:     a,
				Adoption:   d.Adoption,
				Adopter:    d.Adopter,
				Attendants: attendants,
			})
		}
	}
	return out, nil
}

func notFound(err error, id int64) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, entity.ErrNotFound) {
		return fmt.Errorf("%w: animal %d", entity.ErrNotFound, id)
	}
	return err
}
