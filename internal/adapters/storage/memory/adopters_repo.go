package memory

import (
	"context"
	"fmt"
	"sort"

	"shelter-adoptions/internal/domain/adopters"
	"shelter-adoptions/internal/domain/entity"
)

type adopterRepo struct {
	s *Store
}

func (r *adopterRepo) Create(ctx context.Context, a entity.Adopter) (entity.Adopter, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.t.seqAdopter++
	a.ID = r.s.t.seqAdopter
	r.s.t.adopters[a.ID] = a
	return a, nil
}

func (r *adopterRepo) Update(ctx context.Context, a entity.Adopter) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.t.adopters[a.ID]; !ok {
		return entity.ErrNotFound
	}
	r.s.t.adopters[a.ID] = a
	return nil
}

func (r *adopterRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.t.adopters[id]; !ok {
		return entity.ErrNotFound
	}
	if r.s.t.adoptionCount(func(a entity.Adoption) bool { return a.AdopterID == id }) > 0 {
		return fmt.Errorf("%w: adopter %d is referenced by adoptions", entity.ErrConflict, id)
	}
	delete(r.s.t.adopters, id)
	return nil
}

func (r *adopterRepo) GetByID(ctx context.Context, id int64) (entity.Adopter, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.t.adopters[id]
	if !ok {
		return entity.Adopter{}, entity.ErrNotFound
	}
	return a, nil
}

func (r *adopterRepo) List(ctx context.Context, f adopters.ListFilter) ([]entity.Adopter, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entity.Adopter, 0, len(r.s.t.adopters))
	for _, a := range r.s.t.adopters {
		if f.NameContains != "" && !containsFold(a.Name, f.NameContains) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, f.Page), nil
}

func (r *adopterRepo) CountAdoptions(ctx context.Context, id int64) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.t.adoptionCount(func(a entity.Adoption) bool { return a.AdopterID == id }), nil
}
