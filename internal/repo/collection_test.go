package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmsuite/facility-admin/internal/models"
	"github.com/fmsuite/facility-admin/internal/store"
)

func TestCollection_LoadEmptyWhenMissing(t *testing.T) {
	s := store.NewMemoryStore()
	c := NewCollection[models.Branch](s, store.KeyBranches)

	items, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestCollection_SaveThenLoad(t *testing.T) {
	s := store.NewMemoryStore()
	c := NewCollection[models.Branch](s, store.KeyBranches)

	branches := []models.Branch{
		{ID: "br-1", Name: "Accra Main", Code: "ACC-01", Region: "Greater Accra", Employees: 45, FloorArea: 1200, Status: models.BranchActive},
		{ID: "br-2", Name: "Kumasi", Code: "KSI-01", Region: "Ashanti", Employees: 20, FloorArea: 600, Status: models.BranchActive},
	}
	require.NoError(t, c.Save(context.Background(), branches))

	loaded, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, branches, loaded)
}

func TestCollection_CorruptValueResetsToEmpty(t *testing.T) {
	s := store.NewMemoryStore()
	require.NoError(t, s.Set(context.Background(), store.KeyVendors, "{not json"))

	c := NewCollection[models.Vendor](s, store.KeyVendors)
	items, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCollection_NullValueLoadsAsEmpty(t *testing.T) {
	s := store.NewMemoryStore()
	require.NoError(t, s.Set(context.Background(), store.KeyVendors, "null"))

	c := NewCollection[models.Vendor](s, store.KeyVendors)
	items, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
