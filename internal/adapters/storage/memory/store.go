package memory

import (
	"sort"
	"strings"
	"sync"

	"shelter-adoptions/internal/domain/adopters"
	"shelter-adoptions/internal/domain/adoptions"
	"shelter-adoptions/internal/domain/animals"
	"shelter-adoptions/internal/domain/attendants"
	"shelter-adoptions/internal/domain/entity"
)

// Store guarda las cinco tablas en memoria bajo un único lock, así las
// transacciones de adopciones ven y modifican todo de forma atómica.
type Store struct {
	mu sync.RWMutex
	t  tables
}

type tables struct {
	animals    map[int64]entity.Animal
	adopters   map[int64]entity.Adopter
	attendants map[int64]entity.Attendant
	adoptions  map[int64]entity.Adoption
	links      map[int64]map[int64]struct{} // id_adocao -> id_atendente

	seqAnimal    int64
	seqAdopter   int64
	seqAttendant int64
	seqAdoption  int64
}

func NewStore() *Store {
	return &Store{t: tables{
		animals:    make(map[int64]entity.Animal),
		adopters:   make(map[int64]entity.Adopter),
		attendants: make(map[int64]entity.Attendant),
		adoptions:  make(map[int64]entity.Adoption),
		links:      make(map[int64]map[int64]struct{}),
	}}
}

func (s *Store) Animals() animals.Repository       { return &animalRepo{s: s} }
func (s *Store) Adopters() adopters.Repository     { return &adopterRepo{s: s} }
func (s *Store) Attendants() attendants.Repository { return &attendantRepo{s: s} }
func (s *Store) Adoptions() adoptions.Repository   { return &adoptionRepo{s: s} }

// clone copia las tablas para poder restaurarlas si la transacción falla.
func (t *tables) clone() tables {
	c := *t
	c.animals = make(map[int64]entity.Animal, len(t.animals))
	for k, v := range t.animals {
		c.animals[k] = v
	}
	c.adopters = make(map[int64]entity.Adopter, len(t.adopters))
	for k, v := range t.adopters {
		c.adopters[k] = v
	}
	c.attendants = make(map[int64]entity.Attendant, len(t.attendants))
	for k, v := range t.attendants {
		c.attendants[k] = v
	}
	c.adoptions = make(map[int64]entity.Adoption, len(t.adoptions))
	for k, v := range t.adoptions {
		c.adoptions[k] = v
	}
	c.links = make(map[int64]map[int64]struct{}, len(t.links))
	for k, set := range t.links {
		cs := make(map[int64]struct{}, len(set))
		for id := range set {
			cs[id] = struct{}{}
		}
		c.links[k] = cs
	}
	return c
}

// attendantsOf devuelve los atendentes vinculados, ordenados por id.
func (t *tables) attendantsOf(adoptionID int64) []entity.Attendant {
	set := t.links[adoptionID]
	out := make([]entity.Attendant, 0, len(set))
	for id := range set {
		if at, ok := t.attendants[id]; ok {
			out = append(out, at)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (t *tables) detail(a entity.Adoption) entity.AdoptionDetail {
	return entity.AdoptionDetail{
		Adoption:   a,
		Animal:     t.animals[a.AnimalID],
		Adopter:    t.adopters[a.AdopterID],
		Attendants: t.attendantsOf(a.ID),
	}
}

func (t *tables) adoptionCount(match func(entity.Adoption) bool) int64 {
	var n int64
	for _, a := range t.adoptions {
		if match(a) {
			n++
		}
	}
	return n
}

func paginate[T any](items []T, p entity.Page) []T {
	from, to := p.Slice(len(items))
	return items[from:to]
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
