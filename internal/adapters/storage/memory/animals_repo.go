package memory

import (
	"context"
	"fmt"
	"sort"

	"shelter-adoptions/internal/domain/animals"
	"shelter-adoptions/internal/domain/entity"
)

type animalRepo struct {
	s *Store
}

func (r *animalRepo) Create(ctx context.Context, a entity.Animal) (entity.Animal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.t.seqAnimal++
	a.ID = r.s.t.seqAnimal
	r.s.t.animals[a.ID] = a
	return a, nil
}

// Update no toca status_adocao: ese campo lo escribe sólo el flujo de adopciones.
func (r *animalRepo) Update(ctx context.Context, a entity.Animal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.t.animals[a.ID]
	if !ok {
		return entity.ErrNotFound
	}
	a.Adopted = cur.Adopted
	r.s.t.animals[a.ID] = a
	return nil
}

func (r *animalRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.t.animals[id]; !ok {
		return entity.ErrNotFound
	}
	if r.s.t.adoptionCount(func(a entity.Adoption) bool { return a.AnimalID == id }) > 0 {
		return fmt.Errorf("%w: animal %d is referenced by adoptions", entity.ErrConflict, id)
	}
	delete(r.s.t.animals, id)
	return nil
}

func (r *animalRepo) GetByID(ctx context.Context, id int64) (entity.Animal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.t.animals[id]
	if !ok {
		return entity.Animal{}, entity.ErrNotFound
	}
	return a, nil
}

func (r *animalRepo) List(ctx context.Context, f animals.ListFilter) ([]entity.Animal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var adoptedBy map[int64]bool
	if f.AdopterID != nil {
		adoptedBy = make(map[int64]bool)
		for _, ad := range r.s.t.adoptions {
			if ad.AdopterID == *f.AdopterID {
				adoptedBy[ad.AnimalID] = true
			}
		}
	}

	out := make([]entity.Animal, 0, len(r.s.t.animals))
	for _, a := range r.s.t.animals {
		if f.NameContains != "" && !containsFold(a.Name, f.NameContains) {
			continue
		}
		if f.RescueYear != nil && a.RescueDate.Year() != *f.RescueYear {
			continue
		}
		if adoptedBy != nil && !adoptedBy[a.ID] {
			continue
		}
		if f.Adopted != nil && a.Adopted != *f.Adopted {
			continue
		}
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool {
		if f.OrderBy == animals.OrderByAge && out[i].Age != out[j].Age {
			return out[i].Age < out[j].Age
		}
		return out[i].ID < out[j].ID
	})
	return paginate(out, f.Page), nil
}

func (r *animalRepo) Count(ctx context.Context, adopted *bool) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, a := range r.s.t.animals {
		if adopted == nil || a.Adopted == *adopted {
			n++
		}
	}
	return n, nil
}

func (r *animalRepo) CountAdoptedBySpecies(ctx context.Context) (map[string]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make(map[string]int64)
	for _, a := range r.s.t.animals {
		if a.Adopted {
			out[a.Species]++
		}
	}
	return out, nil
}

func (r *animalRepo) CountAdoptions(ctx context.Context, id int64) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.t.adoptionCount(func(a entity.Adoption) bool { return a.AnimalID == id }), nil
}

func (r *animalRepo) AdoptionsOf(ctx context.Context, animalIDs []int64) ([]entity.AdoptionDetail, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	want := make(map[int64]bool, len(animalIDs))
	for _, id := range animalIDs {
		want[id] = true
	}
	var out []entity.AdoptionDetail
	for _, a := range r.s.t.adoptions {
		if want[a.AnimalID] {
			out = append(out, r.s.t.detail(a))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AnimalID != out[j].AnimalID {
			return out[i].AnimalID < out[j].AnimalID
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
