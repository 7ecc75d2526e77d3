package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmsuite/facility-admin/internal/models"
	"github.com/fmsuite/facility-admin/internal/store"
)

func TestBranchService_CreateAndGet(t *testing.T) {
	s := NewBranchService(store.NewMemoryStore())

	created, err := s.Create(context.Background(), models.Branch{
		Name: "Accra Main", Code: "ACC-01", Region: "Greater Accra", Employees: 45, FloorArea: 1200,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.BranchActive, created.Status)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := s.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Accra Main", found.Name)
}

func TestBranchService_CreateValidation(t *testing.T) {
	s := NewBranchService(store.NewMemoryStore())

	_, err := s.Create(context.Background(), models.Branch{Code: "ACC-01"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "name", vErr.Field)

	_, err = s.Create(context.Background(), models.Branch{Name: "Accra Main"})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "code", vErr.Field)

	// Nothing was written.
	branches, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, branches)
}

func TestBranchService_Update(t *testing.T) {
	s := NewBranchService(store.NewMemoryStore())
	created, err := s.Create(context.Background(), models.Branch{Name: "Kumasi", Code: "KSI-01"})
	require.NoError(t, err)

	updated, err := s.Update(context.Background(), created.ID, models.Branch{
		Name: "Kumasi Adum", Code: "KSI-01", Status: models.BranchInactive,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Kumasi Adum", updated.Name)
	assert.Equal(t, models.BranchInactive, updated.Status)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestBranchService_UpdateMissing(t *testing.T) {
	s := NewBranchService(store.NewMemoryStore())
	_, err := s.Update(context.Background(), "nope", models.Branch{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBranchService_Delete(t *testing.T) {
	mem := store.NewMemoryStore()
	s := NewBranchService(mem)
	created, err := s.Create(context.Background(), models.Branch{Name: "Tamale", Code: "TML-01"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(context.Background(), created.ID))
	_, err = s.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete(context.Background(), created.ID), ErrNotFound)
}

func TestBranchService_PersistsAcrossInstances(t *testing.T) {
	mem := store.NewMemoryStore()
	first := NewBranchService(mem)
	created, err := first.Create(context.Background(), models.Branch{Name: "Takoradi", Code: "TKD-01"})
	require.NoError(t, err)

	second := NewBranchService(mem)
	found, err := second.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Takoradi", found.Name)
}
