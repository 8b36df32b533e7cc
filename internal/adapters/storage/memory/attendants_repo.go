package memory

import (
	"context"
	"fmt"
	"sort"

	"shelter-adoptions/internal/domain/attendants"
	"shelter-adoptions/internal/domain/entity"
)

type attendantRepo struct {
	s *Store
}

func (r *attendantRepo) Create(ctx context.Context, a entity.Attendant) (entity.Attendant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.t.seqAttendant++
	a.ID = r.s.t.seqAttendant
	r.s.t.attendants[a.ID] = a
	return a, nil
}

func (r *attendantRepo) Update(ctx context.Context, a entity.Attendant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.t.attendants[a.ID]; !ok {
		return entity.ErrNotFound
	}
	r.s.t.attendants[a.ID] = a
	return nil
}

func (r *attendantRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.t.attendants[id]; !ok {
		return entity.ErrNotFound
	}
	if r.links(id) > 0 {
		return fmt.Errorf("%w: attendant %d is referenced by adoptions", entity.ErrConflict, id)
	}
	delete(r.s.t.attendants, id)
	return nil
}

func (r *attendantRepo) GetByID(ctx context.Context, id int64) (entity.Attendant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.t.attendants[id]
	if !ok {
		return entity.Attendant{}, entity.ErrNotFound
	}
	return a, nil
}

func (r *attendantRepo) List(ctx context.Context, f attendants.ListFilter) ([]entity.Attendant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entity.Attendant, 0, len(r.s.t.attendants))
	for _, a := range r.s.t.attendants {
		if f.NameContains != "" && !containsFold(a.Name, f.NameContains) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if f.OrderByName && out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return paginate(out, f.Page), nil
}

func (r *attendantRepo) Count(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return int64(len(r.s.t.attendants)), nil
}

func (r *attendantRepo) CountLinks(ctx context.Context, id int64) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.links(id), nil
}

// links asume el lock tomado.
func (r *attendantRepo) links(id int64) int64 {
	var n int64
	for _, set := range r.s.t.links {
		if _, ok := set[id]; ok {
			n++
		}
	}
	return n
}
