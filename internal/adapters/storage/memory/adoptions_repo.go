package memory

import (
	"context"
	"sort"

	"shelter-adoptions/internal/domain/adoptions"
	"shelter-adoptions/internal/domain/entity"
)

type adoptionRepo struct {
	s *Store
}

func (r *adoptionRepo) List(ctx context.Context, f adoptions.ListFilter) ([]entity.Adoption, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entity.Adoption, 0, len(r.s.t.adoptions))
	for _, a := range r.s.t.adoptions {
		if f.Cancelled != nil && a.Cancelled != *f.Cancelled {
			continue
		}
		if f.Year != nil && a.Date.Year() != *f.Year {
			continue
		}
		out = append(out, a)
	}
	if f.NewestFirst {
		sortNewestFirst(out)
	} else {
		sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	}
	return paginate(out, f.Page), nil
}

func (r *adoptionRepo) GetDetail(ctx context.Context, id int64) (entity.AdoptionDetail, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.t.adoptions[id]
	if !ok {
		return entity.AdoptionDetail{}, entity.ErrNotFound
	}
	return r.s.t.detail(a), nil
}

func (r *adoptionRepo) Report(ctx context.Context, page entity.Page) ([]entity.AdoptionDetail, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	all := make([]entity.Adoption, 0, len(r.s.t.adoptions))
	for _, a := range r.s.t.adoptions {
		all = append(all, a)
	}
	sortNewestFirst(all)

	items := paginate(all, page)
	out := make([]entity.AdoptionDetail, 0, len(items))
	for _, a := range items {
		out = append(out, r.s.t.detail(a))
	}
	return out, nil
}

func (r *adoptionRepo) ActiveReport(ctx context.Context, page entity.Page) ([]entity.ActiveAdoptionRow, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	active := make([]entity.Adoption, 0)
	for _, a := range r.s.t.adoptions {
		if a.Cancelled || !r.s.t.animals[a.AnimalID].Adopted {
			continue
		}
		active = append(active, a)
	}
	sort.Slice(active, func(i, j int) bool { return active[i].ID < active[j].ID })

	var rows []entity.ActiveAdoptionRow
	for _, a := range active {
		base := entity.ActiveAdoptionRow{
			AdoptionID:  a.ID,
			AnimalID:    a.AnimalID,
			AnimalName:  r.s.t.animals[a.AnimalID].Name,
			AdopterID:   a.AdopterID,
			AdopterName: r.s.t.adopters[a.AdopterID].Name,
		}
		linked := r.s.t.attendantsOf(a.ID)
		if len(linked) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, at := range linked {
			row := base
			id, name := at.ID, at.Name
			row.AttendantID = &id
			row.AttendantName = &name
			rows = append(rows, row)
		}
	}
	return paginate(rows, page), nil
}

// RunInTx toma el lock de escritura durante fn y restaura las tablas si fn falla.
func (r *adoptionRepo) RunInTx(ctx context.Context, fn func(tx adoptions.Tx) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	snapshot := r.s.t.clone()
	if err := fn(&memTx{t: &r.s.t}); err != nil {
		r.s.t = snapshot
		return err
	}
	return nil
}

func sortNewestFirst(items []entity.Adoption) {
	sort.Slice(items, func(i, j int) bool {
		if !items[i].Date.Equal(items[j].Date.Time) {
			return items[i].Date.After(items[j].Date.Time)
		}
		return items[i].ID > items[j].ID
	})
}

// memTx opera sobre las tablas con el lock ya tomado por RunInTx.
type memTx struct {
	t *tables
}

func (x *memTx) GetAnimal(ctx context.Context, id int64) (entity.Animal, error) {
	a, ok := x.t.animals[id]
	if !ok {
		return entity.Animal{}, entity.ErrNotFound
	}
	return a, nil
}

func (x *memTx) GetAdopter(ctx context.Context, id int64) (entity.Adopter, error) {
	a, ok := x.t.adopters[id]
	if !ok {
		return entity.Adopter{}, entity.ErrNotFound
	}
	return a, nil
}

func (x *memTx) GetAttendant(ctx context.Context, id int64) (entity.Attendant, error) {
	a, ok := x.t.attendants[id]
	if !ok {
		return entity.Attendant{}, entity.ErrNotFound
	}
	return a, nil
}

func (x *memTx) GetAdoption(ctx context.Context, id int64) (entity.Adoption, error) {
	a, ok := x.t.adoptions[id]
	if !ok {
		return entity.Adoption{}, entity.ErrNotFound
	}
	return a, nil
}

func (x *memTx) MarkAnimalAdopted(ctx context.Context, animalID int64) (bool, error) {
	a, ok := x.t.animals[animalID]
	if !ok {
		return false, entity.ErrNotFound
	}
	if a.Adopted {
		return false, nil
	}
	a.Adopted = true
	x.t.animals[animalID] = a
	return true, nil
}

func (x *memTx) ReleaseAnimal(ctx context.Context, animalID int64) error {
	a, ok := x.t.animals[animalID]
	if !ok {
		return entity.ErrNotFound
	}
	a.Adopted = false
	x.t.animals[animalID] = a
	return nil
}

func (x *memTx) CreateAdoption(ctx context.Context, a entity.Adoption) (entity.Adoption, error) {
	x.t.seqAdoption++
	a.ID = x.t.seqAdoption
	x.t.adoptions[a.ID] = a
	return a, nil
}

func (x *memTx) UpdateAdoption(ctx context.Context, a entity.Adoption) error {
	cur, ok := x.t.adoptions[a.ID]
	if !ok {
		return entity.ErrNotFound
	}
	cur.Date = a.Date
	x.t.adoptions[a.ID] = cur
	return nil
}

func (x *memTx) CancelAdoption(ctx context.Context, id int64) (bool, error) {
	a, ok := x.t.adoptions[id]
	if !ok {
		return false, entity.ErrNotFound
	}
	if a.Cancelled {
		return false, nil
	}
	a.Cancelled = true
	x.t.adoptions[id] = a
	return true, nil
}

func (x *memTx) DeleteAdoption(ctx context.Context, id int64) error {
	if _, ok := x.t.adoptions[id]; !ok {
		return entity.ErrNotFound
	}
	delete(x.t.links, id)
	delete(x.t.adoptions, id)
	return nil
}

func (x *memTx) LinkAttendant(ctx context.Context, adoptionID, attendantID int64) error {
	set, ok := x.t.links[adoptionID]
	if !ok {
		set = make(map[int64]struct{})
		x.t.links[adoptionID] = set
	}
	set[attendantID] = struct{}{}
	return nil
}

func (x *memTx) UnlinkAttendant(ctx context.Context, adoptionID, attendantID int64) error {
	if set, ok := x.t.links[adoptionID]; ok {
		delete(set, attendantID)
		if len(set) == 0 {
			delete(x.t.links, adoptionID)
		}
	}
	return nil
}
