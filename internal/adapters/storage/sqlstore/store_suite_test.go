package sqlstore_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"shelter-adoptions/internal/adapters/storage/sqlstore"
	"shelter-adoptions/internal/domain/adopters"
	"shelter-adoptions/internal/domain/adoptions"
	"shelter-adoptions/internal/domain/animals"
	"shelter-adoptions/internal/domain/attendants"
	"shelter-adoptions/internal/domain/entity"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// storeSuite corre igual sobre SQLite y Postgres. newDB entrega una base
// migrada y vacía para cada test.
type storeSuite struct {
	suite.Suite
	newDB func(t *testing.T) *sql.DB

	ctx   context.Context
	store *sqlstore.Store
}

func (s *storeSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = sqlstore.New(s.newDB(s.T()))
}

func (s *storeSuite) animal(name, species string, age int, rescued entity.Date) entity.Animal {
	a, err := s.store.Animals().Create(s.ctx, entity.Animal{Name: name, Species: species, Age: age, RescueDate: rescued})
	s.Require().NoError(err)
	return a
}

func (s *storeSuite) adopter(name string) entity.Adopter {
	a, err := s.store.Adopters().Create(s.ctx, entity.Adopter{Name: name, Contact: "555-0101"})
	s.Require().NoError(err)
	return a
}

func (s *storeSuite) attendant(name string) entity.Attendant {
	a, err := s.store.Attendants().Create(s.ctx, entity.Attendant{Name: name})
	s.Require().NoError(err)
	return a
}

func (s *storeSuite) TestAnimalFiltersAndOrdering() {
	repo := s.store.Animals()
	rex := s.animal("Rex", "dog", 5, entity.DateOf(2024, 1, 10))
	s.animal("Mia", "cat", 2, entity.DateOf(2023, 12, 31))
	s.animal("rexinho", "dog", 1, entity.DateOf(2024, 6, 1))

	got, err := repo.GetByID(s.ctx, rex.ID)
	s.Require().NoError(err)
	s.Equal("2024-01-10", got.RescueDate.String())
	s.False(got.Adopted)

	byName, err := repo.List(s.ctx, animals.ListFilter{NameContains: "REX", Page: entity.DefaultPage()})
	s.Require().NoError(err)
	s.Len(byName, 2)

	year := 2024
	rescued, err := repo.List(s.ctx, animals.ListFilter{RescueYear: &year, Page: entity.DefaultPage()})
	s.Require().NoError(err)
	s.Len(rescued, 2)
	for _, a := range rescued {
		s.Equal(2024, a.RescueDate.Year())
	}

	byAge, err := repo.List(s.ctx, animals.ListFilter{OrderBy: animals.OrderByAge, Page: entity.DefaultPage()})
	s.Require().NoError(err)
	s.Require().Len(byAge, 3)
	s.Equal([]int{1, 2, 5}, []int{byAge[0].Age, byAge[1].Age, byAge[2].Age})

	page, err := repo.List(s.ctx, animals.ListFilter{Page: entity.Page{Offset: 1, Limit: 1}})
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal("Mia", page[0].Name)

	total, err := repo.Count(s.ctx, nil)
	s.Require().NoError(err)
	s.EqualValues(3, total)

	notFound := repo.Update(s.ctx, entity.Animal{ID: 999, Name: "x", Species: "y"})
	s.ErrorIs(notFound, entity.ErrNotFound)
}

func (s *storeSuite) TestAdoptionLifecycle() {
	svc := adoptions.NewService(s.store.Adoptions(), nil)
	rex := s.animal("Rex", "dog", 5, entity.DateOf(2024, 1, 10))
	ana := s.adopter("Ana")
	bia := s.attendant("Bia")
	date := "2024-03-01"

	created, err := svc.Create(s.ctx, adoptions.CreateInput{AnimalID: rex.ID, AdopterID: ana.ID, Date: &date, Attendants: []int64{bia.ID, bia.ID}})
	s.Require().NoError(err)
	s.True(created.Animal.Adopted)

	stored, err := s.store.Animals().GetByID(s.ctx, rex.ID)
	s.Require().NoError(err)
	s.True(stored.Adopted)

	_, err = svc.Create(s.ctx, adoptions.CreateInput{AnimalID: rex.ID, AdopterID: ana.ID})
	s.ErrorIs(err, entity.ErrConflict)

	detail, err := svc.GetWithRelations(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("Ana", detail.Adopter.Name)
	s.Require().Len(detail.Attendants, 1)
	s.Equal("Bia", detail.Attendants[0].Name)
	s.Equal("2024-03-01", detail.Date.String())

	species, err := s.store.Animals().CountAdoptedBySpecies(s.ctx)
	s.Require().NoError(err)
	s.Equal(map[string]int64{"dog": 1}, species)

	res, err := svc.Cancel(s.ctx, created.ID)
	s.Require().NoError(err)
	s.True(res.Cancelled)
	s.True(res.AnimalReleased)

	_, err = svc.Cancel(s.ctx, created.ID)
	s.ErrorIs(err, entity.ErrConflict)

	stored, err = s.store.Animals().GetByID(s.ctx, rex.ID)
	s.Require().NoError(err)
	s.False(stored.Adopted)

	s.Require().NoError(svc.HardDelete(s.ctx, created.ID))
	_, err = svc.GetWithRelations(s.ctx, created.ID)
	s.ErrorIs(err, entity.ErrNotFound)

	links, err := s.store.Attendants().CountLinks(s.ctx, bia.ID)
	s.Require().NoError(err)
	s.Zero(links)
}

func (s *storeSuite) TestForeignKeysGuardDeletes() {
	rex := s.animal("Rex", "dog", 5, entity.DateOf(2024, 1, 10))
	ana := s.adopter("Ana")
	bia := s.attendant("Bia")

	svc := adoptions.NewService(s.store.Adoptions(), nil)
	_, err := svc.Create(s.ctx, adoptions.CreateInput{AnimalID: rex.ID, AdopterID: ana.ID, Attendants: []int64{bia.ID}})
	s.Require().NoError(err)

	s.ErrorIs(s.store.Animals().Delete(s.ctx, rex.ID), entity.ErrConflict)
	s.ErrorIs(s.store.Adopters().Delete(s.ctx, ana.ID), entity.ErrConflict)
	s.ErrorIs(s.store.Attendants().Delete(s.ctx, bia.ID), entity.ErrConflict)
	s.ErrorIs(s.store.Animals().Delete(s.ctx, 999), entity.ErrNotFound)
}

func (s *storeSuite) TestFailedTransactionLeavesNoTrace() {
	rex := s.animal("Rex", "dog", 5, entity.DateOf(2024, 1, 10))
	boom := errors.New("boom")

	err := s.store.Adoptions().RunInTx(s.ctx, func(tx adoptions.Tx) error {
		ok, err := tx.MarkAnimalAdopted(s.ctx, rex.ID)
		s.Require().NoError(err)
		s.Require().True(ok)
		return boom
	})
	s.ErrorIs(err, boom)

	stored, err := s.store.Animals().GetByID(s.ctx, rex.ID)
	s.Require().NoError(err)
	s.False(stored.Adopted)
}

func (s *storeSuite) TestReports() {
	svc := adoptions.NewService(s.store.Adoptions(), nil)
	rex := s.animal("Rex", "dog", 5, entity.DateOf(2024, 1, 10))
	mia := s.animal("Mia", "cat", 2, entity.DateOf(2023, 5, 2))
	ana := s.adopter("Ana")
	bia := s.attendant("Bia")
	caio := s.attendant("Caio")

	older, newer := "2024-02-01", "2024-05-01"
	first, err := svc.Create(s.ctx, adoptions.CreateInput{AnimalID: rex.ID, AdopterID: ana.ID, Date: &older, Attendants: []int64{caio.ID, bia.ID}})
	s.Require().NoError(err)
	second, err := svc.Create(s.ctx, adoptions.CreateInput{AnimalID: mia.ID, AdopterID: ana.ID, Date: &newer})
	s.Require().NoError(err)

	report, err := svc.FullReport(s.ctx, entity.DefaultPage())
	s.Require().NoError(err)
	s.Require().Len(report, 2)
	s.Equal(second.ID, report[0].ID)
	s.Equal(first.ID, report[1].ID)
	s.Equal([]string{"Bia", "Caio"}, []string{report[1].Attendants[0].Name, report[1].Attendants[1].Name})
	s.NotNil(report[0].Attendants)

	active, err := svc.ActiveReport(s.ctx, entity.DefaultPage())
	s.Require().NoError(err)
	s.Require().Len(active, 3)
	s.Equal("Rex", active[0].AnimalName)
	s.Require().NotNil(active[0].AttendantName)
	s.Equal("Bia", *active[0].AttendantName)
	s.Nil(active[2].AttendantID)

	year := 2024
	byYear, err := svc.FilterByYear(s.ctx, year, entity.DefaultPage())
	s.Require().NoError(err)
	s.Len(byYear, 2)

	_, err = svc.Cancel(s.ctx, second.ID)
	s.Require().NoError(err)

	cancelled, err := svc.FilterByCancellation(s.ctx, true, entity.DefaultPage())
	s.Require().NoError(err)
	s.Require().Len(cancelled, 1)
	s.Equal(second.ID, cancelled[0].ID)

	active, err = svc.ActiveReport(s.ctx, entity.DefaultPage())
	s.Require().NoError(err)
	s.Len(active, 2)

	byAdopter, err := s.store.Animals().List(s.ctx, animals.ListFilter{AdopterID: &ana.ID, Page: entity.DefaultPage()})
	s.Require().NoError(err)
	s.Len(byAdopter, 2)
}

func (s *storeSuite) TestAttendantsSortedByName() {
	s.attendant("Zeca")
	s.attendant("Ana")
	s.attendant("Maria")

	items, err := s.store.Attendants().List(s.ctx, attendants.ListFilter{OrderByName: true, Page: entity.DefaultPage()})
	s.Require().NoError(err)
	s.Require().Len(items, 3)
	s.Equal("Ana", items[0].Name)
	s.Equal("Zeca", items[2].Name)
}

func (s *storeSuite) TestNameSearchIsLiteralAndFoldsAccents() {
	s.attendant("Ana")
	s.attendant("Bob")
	s.attendant("CONCEIÇÃO")
	s.attendant("50% off_line")
	s.adopter("João Conceição")
	s.adopter("Maria")
	s.animal("Pé de Pano", "horse", 7, entity.DateOf(2022, 3, 1))
	s.animal("Rex", "dog", 3, entity.DateOf(2022, 3, 1))

	cases := []struct {
		query string
		want  []string
	}{
		{query: "_", want: []string{"50% off_line"}},
		{query: "%", want: []string{"50% off_line"}},
		{query: `\`, want: nil},
		{query: "ção", want: []string{"CONCEIÇÃO"}},
		{query: "conceiÇão", want: []string{"CONCEIÇÃO"}},
		{query: "an", want: []string{"Ana"}},
	}
	for _, tc := range cases {
		items, err := s.store.Attendants().List(s.ctx, attendants.ListFilter{NameContains: tc.query, Page: entity.DefaultPage()})
		s.Require().NoError(err, tc.query)
		names := make([]string, 0, len(items))
		for _, a := range items {
			names = append(names, a.Name)
		}
		if tc.want == nil {
			s.Empty(names, tc.query)
			continue
		}
		s.Equal(tc.want, names, tc.query)
	}

	byAdopter, err := s.store.Adopters().List(s.ctx, adopters.ListFilter{NameContains: "JOÃO", Page: entity.DefaultPage()})
	s.Require().NoError(err)
	s.Require().Len(byAdopter, 1)
	s.Equal("João Conceição", byAdopter[0].Name)

	byAnimal, err := s.store.Animals().List(s.ctx, animals.ListFilter{NameContains: "PÉ", Page: entity.DefaultPage()})
	s.Require().NoError(err)
	s.Require().Len(byAnimal, 1)
	s.Equal("Pé de Pano", byAnimal[0].Name)

	none, err := s.store.Animals().List(s.ctx, animals.ListFilter{NameContains: "_", Page: entity.DefaultPage()})
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *storeSuite) TestListPagesAreDisjointAndCover() {
	all := make(map[int64]bool)
	for i := 0; i < 7; i++ {
		all[s.attendant("At").ID] = true
	}

	for _, n := range []int{1, 3, 4, 7} {
		seen := make(map[int64]bool)
		for _, offset := range []int{0, n} {
			items, err := s.store.Attendants().List(s.ctx, attendants.ListFilter{Page: entity.Page{Offset: offset, Limit: n}})
			s.Require().NoError(err)
			for _, a := range items {
				s.False(seen[a.ID], "id %d repeated with limit %d", a.ID, n)
				seen[a.ID] = true
			}
		}
		want := 2 * n
		if want > len(all) {
			want = len(all)
		}
		s.Len(seen, want, "limit %d", n)
		for id := range seen {
			s.True(all[id])
		}
	}
}

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()
	db, err := sqlstore.Open(ctx, sqlstore.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, sqlstore.Migrate(ctx, db, sqlstore.DriverSQLite))
	return db
}

func TestSQLiteStore(t *testing.T) {
	suite.Run(t, &storeSuite{newDB: openSQLite})
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, sqlstore.Migrate(context.Background(), db, sqlstore.DriverSQLite))

	counts, err := sqlstore.Counts(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, counts, len(sqlstore.Tables))
}

func TestParseDriver(t *testing.T) {
	d, err := sqlstore.ParseDriver("postgres")
	require.NoError(t, err)
	require.Equal(t, sqlstore.DriverPostgres, d)

	_, err = sqlstore.ParseDriver("mysql")
	require.Error(t, err)
}
