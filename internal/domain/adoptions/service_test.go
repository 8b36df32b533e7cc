package adoptions_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"shelter-adoptions/internal/adapters/storage/memory"
	"shelter-adoptions/internal/domain/adoptions"
	"shelter-adoptions/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type countingRecorder struct {
	mu                          sync.Mutex
	created, cancelled, deleted int
}

func (r *countingRecorder) AdoptionCreated()   { r.mu.Lock(); r.created++; r.mu.Unlock() }
func (r *countingRecorder) AdoptionCancelled() { r.mu.Lock(); r.cancelled++; r.mu.Unlock() }
func (r *countingRecorder) AdoptionDeleted()   { r.mu.Lock(); r.deleted++; r.mu.Unlock() }

type AdoptionServiceSuite struct {
	suite.Suite
	ctx   context.Context
	store *memory.Store
	rec   *countingRecorder
	svc   *adoptions.Service

	rex, mia entity.Animal
	ana      entity.Adopter
	bia      entity.Attendant
}

func TestAdoptionServiceSuite(t *testing.T) {
	suite.Run(t, new(AdoptionServiceSuite))
}

func (s *AdoptionServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.NewStore()
	s.rec = &countingRecorder{}
	s.svc = adoptions.NewService(s.store.Adoptions(), s.rec)

	var err error
	s.rex, err = s.store.Animals().Create(s.ctx, entity.Animal{Name: "Rex", Species: "dog", Age: 5, RescueDate: entity.DateOf(2024, 1, 10)})
	s.Require().NoError(err)
	s.mia, err = s.store.Animals().Create(s.ctx, entity.Animal{Name: "Mia", Species: "cat", Age: 2, RescueDate: entity.DateOf(2023, 5, 2)})
	s.Require().NoError(err)
	s.ana, err = s.store.Adopters().Create(s.ctx, entity.Adopter{Name: "Ana"})
	s.Require().NoError(err)
	s.bia, err = s.store.Attendants().Create(s.ctx, entity.Attendant{Name: "Bia"})
	s.Require().NoError(err)
}

func (s *AdoptionServiceSuite) animal(id int64) entity.Animal {
	a, err := s.store.Animals().GetByID(s.ctx, id)
	s.Require().NoError(err)
	return a
}

func (s *AdoptionServiceSuite) create(animalID int64, date string) entity.AdoptionDetail {
	d, err := s.svc.Create(s.ctx, adoptions.CreateInput{AnimalID: animalID, AdopterID: s.ana.ID, Date: &date})
	s.Require().NoError(err)
	return d
}

func (s *AdoptionServiceSuite) TestCreate_MarksAnimalAndRejectsSecondAdoption() {
	before := entity.NewDate(time.Now())
	d, err := s.svc.Create(s.ctx, adoptions.CreateInput{AnimalID: s.rex.ID, AdopterID: s.ana.ID, Attendants: []int64{s.bia.ID}})
	after := entity.NewDate(time.Now())
	s.Require().NoError(err)

	s.True(d.Date.Equal(before.Time) || d.Date.Equal(after.Time), "defaults to today")
	s.False(d.Cancelled)
	s.True(d.Animal.Adopted)
	s.Equal("Ana", d.Adopter.Name)
	s.Require().Len(d.Attendants, 1)
	s.True(s.animal(s.rex.ID).Adopted)

	_, err = s.svc.Create(s.ctx, adoptions.CreateInput{AnimalID: s.rex.ID, AdopterID: s.ana.ID})
	s.ErrorIs(err, entity.ErrConflict)
	s.Equal(1, s.rec.created)
}

func (s *AdoptionServiceSuite) TestCreate_Validation() {
	yes := true
	bad := "2024/01/01"
	cases := []adoptions.CreateInput{
		{AdopterID: s.ana.ID},
		{AnimalID: s.rex.ID},
		{AnimalID: s.rex.ID, AdopterID: s.ana.ID, Cancelled: &yes},
		{AnimalID: s.rex.ID, AdopterID: s.ana.ID, Date: &bad},
		{AnimalID: s.rex.ID, AdopterID: s.ana.ID, Attendants: []int64{0}},
	}
	for _, in := range cases {
		_, err := s.svc.Create(s.ctx, in)
		s.ErrorIs(err, entity.ErrInvalidInput, "%+v", in)
	}
	s.False(s.animal(s.rex.ID).Adopted)
}

func (s *AdoptionServiceSuite) TestCreate_UnknownReferencesRollBack() {
	_, err := s.svc.Create(s.ctx, adoptions.CreateInput{AnimalID: 999, AdopterID: s.ana.ID})
	s.ErrorIs(err, entity.ErrNotFound)

	_, err = s.svc.Create(s.ctx, adoptions.CreateInput{AnimalID: s.rex.ID, AdopterID: 999})
	s.ErrorIs(err, entity.ErrNotFound)

	_, err = s.svc.Create(s.ctx, adoptions.CreateInput{AnimalID: s.rex.ID, AdopterID: s.ana.ID, Attendants: []int64{s.bia.ID, 999}})
	s.ErrorIs(err, entity.ErrNotFound)

	s.False(s.animal(s.rex.ID).Adopted)
	items, err := s.svc.List(s.ctx, entity.DefaultPage())
	s.Require().NoError(err)
	s.Empty(items)
}

func (s *AdoptionServiceSuite) TestCancel_ReleasesAnimalOnce() {
	d := s.create(s.rex.ID, "2024-03-01")

	res, err := s.svc.Cancel(s.ctx, d.ID)
	s.Require().NoError(err)
	s.Equal(adoptions.CancelResult{Cancelled: true, AnimalReleased: true}, res)
	s.False(s.animal(s.rex.ID).Adopted)

	_, err = s.svc.Cancel(s.ctx, d.ID)
	s.ErrorIs(err, entity.ErrConflict)

	_, err = s.svc.Cancel(s.ctx, 999)
	s.ErrorIs(err, entity.ErrNotFound)

	// el animal liberado se puede volver a adoptar
	s.create(s.rex.ID, "2024-04-01")
	s.Equal(1, s.rec.cancelled)
}

func (s *AdoptionServiceSuite) TestHardDelete_RestoresStatusWhenActive() {
	active := s.create(s.rex.ID, "2024-03-01")
	s.Require().NoError(s.svc.HardDelete(s.ctx, active.ID))
	s.False(s.animal(s.rex.ID).Adopted)

	cancelled := s.create(s.mia.ID, "2024-03-02")
	_, err := s.svc.Cancel(s.ctx, cancelled.ID)
	s.Require().NoError(err)
	again := s.create(s.mia.ID, "2024-03-03")

	// borrar la cancelada no toca al animal, que sigue adoptado por la nueva
	s.Require().NoError(s.svc.HardDelete(s.ctx, cancelled.ID))
	s.True(s.animal(s.mia.ID).Adopted)

	_, err = s.svc.GetWithRelations(s.ctx, cancelled.ID)
	s.ErrorIs(err, entity.ErrNotFound)
	s.ErrorIs(s.svc.HardDelete(s.ctx, cancelled.ID), entity.ErrNotFound)

	_, err = s.svc.GetWithRelations(s.ctx, again.ID)
	s.NoError(err)
	s.Equal(2, s.rec.deleted)
}

func (s *AdoptionServiceSuite) TestUpdate_RoutesCancellationThroughStateMachine() {
	d := s.create(s.rex.ID, "2024-03-01")

	date := "2024-03-15"
	got, err := s.svc.Update(s.ctx, d.ID, entity.AdoptionPatch{Date: &date})
	s.Require().NoError(err)
	s.Equal("2024-03-15", got.Date.String())
	s.True(s.animal(s.rex.ID).Adopted)

	no := false
	_, err = s.svc.Update(s.ctx, d.ID, entity.AdoptionPatch{Cancelled: &no})
	s.Require().NoError(err, "active stays active")

	yes := true
	got, err = s.svc.Update(s.ctx, d.ID, entity.AdoptionPatch{Cancelled: &yes})
	s.Require().NoError(err)
	s.True(got.Cancelled)
	s.False(s.animal(s.rex.ID).Adopted)

	_, err = s.svc.Update(s.ctx, d.ID, entity.AdoptionPatch{Cancelled: &yes})
	s.Require().NoError(err, "cancelling a cancelled adoption through update is a no-op")

	_, err = s.svc.Update(s.ctx, d.ID, entity.AdoptionPatch{Cancelled: &no})
	s.ErrorIs(err, entity.ErrConflict)

	bad := "15/03/2024"
	_, err = s.svc.Update(s.ctx, d.ID, entity.AdoptionPatch{Date: &bad})
	s.ErrorIs(err, entity.ErrInvalidInput)

	_, err = s.svc.Update(s.ctx, 999, entity.AdoptionPatch{Date: &date})
	s.ErrorIs(err, entity.ErrNotFound)
}

func (s *AdoptionServiceSuite) TestAssignAndUnassignAttendant() {
	d := s.create(s.rex.ID, "2024-03-01")

	got, err := s.svc.AssignAttendant(s.ctx, d.ID, s.bia.ID)
	s.Require().NoError(err)
	s.Len(got.Attendants, 1)

	got, err = s.svc.AssignAttendant(s.ctx, d.ID, s.bia.ID)
	s.Require().NoError(err)
	s.Len(got.Attendants, 1, "idempotent")

	_, err = s.svc.AssignAttendant(s.ctx, d.ID, 999)
	s.ErrorIs(err, entity.ErrNotFound)

	got, err = s.svc.UnassignAttendant(s.ctx, d.ID, s.bia.ID)
	s.Require().NoError(err)
	s.Empty(got.Attendants)
	s.NotNil(got.Attendants)

	_, err = s.svc.Cancel(s.ctx, d.ID)
	s.Require().NoError(err)
	_, err = s.svc.AssignAttendant(s.ctx, d.ID, s.bia.ID)
	s.ErrorIs(err, entity.ErrConflict)
}

func (s *AdoptionServiceSuite) TestListingsAndReports() {
	_, err := s.svc.FullReport(s.ctx, entity.DefaultPage())
	s.ErrorIs(err, entity.ErrNotFound)

	first := s.create(s.rex.ID, "2023-12-31")
	second := s.create(s.mia.ID, "2024-02-01")
	_, err = s.svc.Cancel(s.ctx, first.ID)
	s.Require().NoError(err)

	recent, err := s.svc.MostRecent(s.ctx, entity.DefaultPage())
	s.Require().NoError(err)
	s.Require().Len(recent, 2)
	s.Equal(second.ID, recent[0].ID)

	in2024, err := s.svc.FilterByYear(s.ctx, 2024, entity.DefaultPage())
	s.Require().NoError(err)
	s.Require().Len(in2024, 1)
	s.Equal(second.ID, in2024[0].ID)

	_, err = s.svc.FilterByYear(s.ctx, 10000, entity.DefaultPage())
	s.ErrorIs(err, entity.ErrInvalidInput)

	cancelled, err := s.svc.FilterByCancellation(s.ctx, true, entity.DefaultPage())
	s.Require().NoError(err)
	s.Require().Len(cancelled, 1)
	s.Equal(first.ID, cancelled[0].ID)

	report, err := s.svc.FullReport(s.ctx, entity.DefaultPage())
	s.Require().NoError(err)
	s.Require().Len(report, 2)
	s.Equal(second.ID, report[0].ID)
	s.Equal("Mia", report[0].Animal.Name)

	active, err := s.svc.ActiveReport(s.ctx, entity.DefaultPage())
	s.Require().NoError(err)
	s.Require().Len(active, 1)
	s.Equal(entity.ActiveAdoptionRow{
		AdoptionID:  second.ID,
		AnimalID:    s.mia.ID,
		AnimalName:  "Mia",
		AdopterID:   s.ana.ID,
		AdopterName: "Ana",
	}, active[0])
}

func TestCreate_ConcurrentAttemptsOnOneAnimal(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := adoptions.NewService(store.Adoptions(), nil)

	rex, err := store.Animals().Create(ctx, entity.Animal{Name: "Rex", Species: "dog", RescueDate: entity.DateOf(2024, 1, 10)})
	require.NoError(t, err)
	ana, err := store.Adopters().Create(ctx, entity.Adopter{Name: "Ana"})
	require.NoError(t, err)

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(ctx, adoptions.CreateInput{AnimalID: rex.ID, AdopterID: ana.ID})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, entity.ErrConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, workers-1, conflicts)
}
