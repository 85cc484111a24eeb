package cart

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"piwkina-shop/ids"
	"piwkina-shop/models"
)

func line(productID string, price, weight float64) models.CartItem {
	return models.CartItem{
		ProductID:  productID,
		Name:       productID,
		PricePerKg: price,
		WeightKg:   weight,
		TotalPrice: price * weight,
	}
}

func TestAddRemoveClear(t *testing.T) {
	storage := NewMemoryStorage()
	s := Load(storage, StorageKey, ids.New())
	assert.Empty(t, s.Items())
	assert.Equal(t, 0, s.Count())

	a, err := s.Add(line("p1", 40, 1.5))
	require.NoError(t, err)
	b, err := s.Add(line("p1", 40, 1))
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Regexp(t, `^cart_\d+_[0-9a-f]{12}$`, a.ID)
	assert.Equal(t, 2, s.Count())
	assert.InDelta(t, 100, s.Subtotal(), 1e-9)

	require.NoError(t, s.Remove("missing"))
	assert.Equal(t, 2, s.Count())

	require.NoError(t, s.Remove(a.ID))
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, b.ID, items[0].ID)

	require.NoError(t, s.Clear())
	assert.Equal(t, 0, s.Count())
	raw, ok, _ := storage.Get(StorageKey)
	assert.True(t, ok)
	assert.Equal(t, "[]", raw)
}

func TestCartSurvivesReload(t *testing.T) {
	storage := NewMemoryStorage()
	gen := ids.New()
	s := Load(storage, StorageKey, gen)
	added, err := s.Add(line("p1", 45.5, 2))
	require.NoError(t, err)

	again := Load(storage, StorageKey, gen)
	items := again.Items()
	require.Len(t, items, 1)
	assert.Equal(t, added, items[0])
}

func TestMalformedSavedCartStartsEmpty(t *testing.T) {
	for _, raw := range []string{"{not json", `{"id":"x"}`, "null"} {
		storage := NewMemoryStorage()
		require.NoError(t, storage.Set(StorageKey, raw))
		s := Load(storage, StorageKey, ids.New())
		assert.Empty(t, s.Items(), raw)
		assert.NotNil(t, s.Items(), raw)
	}
}

// failingStorage serves saved data but rejects writes once broken is set.
type failingStorage struct {
	saved  string
	broken bool
}

func (f *failingStorage) Get(string) (string, bool, error) { return f.saved, f.saved != "", nil }

func (f *failingStorage) Set(_ string, value string) error {
	if f.broken {
		return errors.New("disk full")
	}
	f.saved = value
	return nil
}

func TestFailedSaveLeavesCartUnchanged(t *testing.T) {
	storage := &failingStorage{}
	s := Load(storage, StorageKey, ids.New())
	kept, err := s.Add(line("p1", 10, 1))
	require.NoError(t, err)

	storage.broken = true
	_, err = s.Add(line("p2", 20, 1))
	assert.Error(t, err)
	assert.Equal(t, []string{kept.ID}, lineIDs(s.Items()))
	assert.Equal(t, 10.0, s.Subtotal())

	assert.Error(t, s.Remove(kept.ID))
	assert.Equal(t, 1, s.Count())
	assert.Error(t, s.Clear())
	assert.Equal(t, 1, s.Count())

	reopened := Load(storage, StorageKey, ids.New())
	assert.Equal(t, []string{kept.ID}, lineIDs(reopened.Items()))
}

func lineIDs(items []models.CartItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestRegistryKeepsCartsApart(t *testing.T) {
	storage := NewMemoryStorage()
	reg := NewRegistry(storage, ids.New())

	_, err := reg.For("u1").Add(line("p1", 10, 1))
	require.NoError(t, err)
	assert.Same(t, reg.For("u1"), reg.For("u1"))
	assert.Equal(t, 1, reg.For("u1").Count())
	assert.Equal(t, 0, reg.For("u2").Count())
	assert.Equal(t, StorageKey+":u1", reg.For("u1").Key())
}

func TestSQLStorage(t *testing.T) {
	storage, err := NewSQLStorage(filepath.Join(t.TempDir(), "local.db"))
	require.NoError(t, err)
	defer storage.Close()

	_, ok, err := storage.Get(StorageKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, storage.Set(StorageKey, "[]"))
	require.NoError(t, storage.Set(StorageKey, `[{"id":"cart_1"}]`))
	raw, ok, err := storage.Get(StorageKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"cart_1"}]`, raw)

	s := Load(storage, StorageKey, ids.New())
	require.Len(t, s.Items(), 1)
	assert.Equal(t, "cart_1", s.Items()[0].ID)
}
