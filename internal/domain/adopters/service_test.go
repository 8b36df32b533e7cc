package adopters_test

import (
	"context"
	"testing"

	"shelter-adoptions/internal/adapters/storage/memory"
	"shelter-adoptions/internal/domain/adopters"
	"shelter-adoptions/internal/domain/adoptions"
	"shelter-adoptions/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdopterService(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := adopters.NewService(store.Adopters())

	_, err := svc.Create(ctx, adopters.CreateInput{Name: "  "})
	assert.ErrorIs(t, err, entity.ErrInvalidInput)

	ana, err := svc.Create(ctx, adopters.CreateInput{Name: "Ana", Contact: "555-0101", Preferences: "dog"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, adopters.CreateInput{Name: "Bruno"})
	require.NoError(t, err)

	found, err := svc.SearchByName(ctx, "AN", entity.DefaultPage())
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, ana.ID, found[0].ID)

	all, err := svc.List(ctx, entity.Page{Offset: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Bruno", all[0].Name)

	addr := "Rua A, 10"
	updated, err := svc.Update(ctx, ana.ID, entity.AdopterPatch{Address: &addr})
	require.NoError(t, err)
	assert.Equal(t, "Rua A, 10", updated.Address)
	assert.Equal(t, "555-0101", updated.Contact)

	empty := ""
	_, err = svc.Update(ctx, ana.ID, entity.AdopterPatch{Name: &empty})
	assert.ErrorIs(t, err, entity.ErrInvalidInput)

	_, err = svc.GetByID(ctx, 999)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestAdopterDelete_ConflictWithAdoptions(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := adopters.NewService(store.Adopters())

	ana, err := svc.Create(ctx, adopters.CreateInput{Name: "Ana"})
	require.NoError(t, err)
	rex, err := store.Animals().Create(ctx, entity.Animal{Name: "Rex", Species: "dog", RescueDate: entity.DateOf(2024, 1, 10)})
	require.NoError(t, err)

	d, err := adoptions.NewService(store.Adoptions(), nil).Create(ctx, adoptions.CreateInput{AnimalID: rex.ID, AdopterID: ana.ID})
	require.NoError(t, err)
	require.Equal(t, ana.ID, d.AdopterID)

	assert.ErrorIs(t, svc.Delete(ctx, ana.ID), entity.ErrConflict)

	bruno, err := svc.Create(ctx, adopters.CreateInput{Name: "Bruno"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, bruno.ID))
	assert.ErrorIs(t, svc.Delete(ctx, bruno.ID), entity.ErrNotFound)
}
