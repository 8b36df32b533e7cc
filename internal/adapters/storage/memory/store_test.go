package memory_test

import (
	"context"
	"testing"

	"shelter-adoptions/internal/adapters/storage/memory"
	"shelter-adoptions/internal/domain/adopters"
	"shelter-adoptions/internal/domain/animals"
	"shelter-adoptions/internal/domain/attendants"
	"shelter-adoptions/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameSearch_LiteralAndAccentFolding(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	for _, name := range []string{"Ana", "Bob", "CONCEIÇÃO", "50% off_line"} {
		_, err := store.Attendants().Create(ctx, entity.Attendant{Name: name})
		require.NoError(t, err)
	}

	cases := []struct {
		query string
		want  []string
	}{
		{query: "_", want: []string{"50% off_line"}},
		{query: "%", want: []string{"50% off_line"}},
		{query: "ção", want: []string{"CONCEIÇÃO"}},
		{query: "an", want: []string{"Ana"}},
		{query: "zzz", want: []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			items, err := store.Attendants().List(ctx, attendants.ListFilter{NameContains: tc.query, Page: entity.DefaultPage()})
			require.NoError(t, err)
			names := make([]string, 0, len(items))
			for _, a := range items {
				names = append(names, a.Name)
			}
			assert.Equal(t, tc.want, names)
		})
	}
}

func TestList_PagesAreDisjointAndCover(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	all := make(map[int64]bool)
	for i := 0; i < 7; i++ {
		a, err := store.Animals().Create(ctx, entity.Animal{Name: "Rex", Species: "dog", RescueDate: entity.DateOf(2024, 1, 1)})
		require.NoError(t, err)
		all[a.ID] = true
		_, err = store.Adopters().Create(ctx, entity.Adopter{Name: "Ana"})
		require.NoError(t, err)
	}

	listAnimals := func(p entity.Page) ([]int64, error) {
		items, err := store.Animals().List(ctx, animals.ListFilter{Page: p})
		ids := make([]int64, 0, len(items))
		for _, a := range items {
			ids = append(ids, a.ID)
		}
		return ids, err
	}
	listAdopters := func(p entity.Page) ([]int64, error) {
		items, err := store.Adopters().List(ctx, adopters.ListFilter{Page: p})
		ids := make([]int64, 0, len(items))
		for _, a := range items {
			ids = append(ids, a.ID)
		}
		return ids, err
	}

	for name, list := range map[string]func(entity.Page) ([]int64, error){
		"animals":  listAnimals,
		"adopters": listAdopters,
	} {
		for _, n := range []int{1, 3, 4, 7} {
			first, err := list(entity.Page{Offset: 0, Limit: n})
			require.NoError(t, err)
			second, err := list(entity.Page{Offset: n, Limit: n})
			require.NoError(t, err)

			seen := make(map[int64]bool)
			for _, id := range append(first, second...) {
				assert.False(t, seen[id], "%s: id %d repeated with limit %d", name, id, n)
				seen[id] = true
			}
			want := min(2*n, len(all))
			assert.Len(t, seen, want, "%s: limit %d", name, n)
		}
	}
}
