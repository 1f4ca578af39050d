package repositories

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lead-scoring-backend/internal/models"
)

func TestMemoryOfferRepository(t *testing.T) {
	t.Parallel()

	t.Run("get before set is not found", func(t *testing.T) {
		t.Parallel()
		repo := NewMemoryOfferRepository()
		_, err := repo.Get()
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("set assigns id and timestamp", func(t *testing.T) {
		t.Parallel()
		repo := NewMemoryOfferRepository()

		saved, err := repo.Set(&models.Offer{
			Name:          "AI Outreach Tool",
			ValueProps:    []string{"Faster pipeline"},
			IdealUseCases: []string{"B2B SaaS"},
		})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, saved.ID)
		assert.False(t, saved.CreatedAt.IsZero())

		got, err := repo.Get()
		require.NoError(t, err)
		assert.Equal(t, "AI Outreach Tool", got.Name)
	})

	t.Run("last write wins", func(t *testing.T) {
		t.Parallel()
		repo := NewMemoryOfferRepository()

		_, err := repo.Set(&models.Offer{Name: "First"})
		require.NoError(t, err)
		_, err = repo.Set(&models.Offer{Name: "Second"})
		require.NoError(t, err)

		got, err := repo.Get()
		require.NoError(t, err)
		assert.Equal(t, "Second", got.Name)
	})
}

func TestMemoryLeadRepository(t *testing.T) {
	t.Parallel()

	t.Run("get before set is not found", func(t *testing.T) {
		t.Parallel()
		repo := NewMemoryLeadRepository()
		_, err := repo.Get()
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("set assigns sequential ids and upload time", func(t *testing.T) {
		t.Parallel()
		repo := NewMemoryLeadRepository()

		saved, err := repo.Set([]models.Lead{
			{Name: "Ava"},
			{Name: "Ben"},
			{Name: "Cleo"},
		})
		require.NoError(t, err)
		require.Len(t, saved, 3)

		for i, lead := range saved {
			assert.Equal(t, i+1, lead.ID)
			assert.False(t, lead.UploadedAt.IsZero())
		}
		assert.Equal(t, "Ben", saved[1].Name)
	})

	t.Run("new batch replaces the old one entirely", func(t *testing.T) {
		t.Parallel()
		repo := NewMemoryLeadRepository()

		_, err := repo.Set([]models.Lead{{Name: "Ava"}, {Name: "Ben"}})
		require.NoError(t, err)
		_, err = repo.Set([]models.Lead{{Name: "Cleo"}})
		require.NoError(t, err)

		got, err := repo.Get()
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Cleo", got[0].Name)
		assert.Equal(t, 1, got[0].ID)
	})

	t.Run("empty batch reads as not found", func(t *testing.T) {
		t.Parallel()
		repo := NewMemoryLeadRepository()

		_, err := repo.Set(nil)
		require.NoError(t, err)
		_, err = repo.Get()
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryResultRepository(t *testing.T) {
	t.Parallel()

	t.Run("get before set is not found", func(t *testing.T) {
		t.Parallel()
		repo := NewMemoryResultRepository()
		_, err := repo.Get()
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("stores and replaces the whole batch", func(t *testing.T) {
		t.Parallel()
		repo := NewMemoryResultRepository()

		_, err := repo.Set([]models.ScoredLead{
			{Name: "Ava", Intent: models.IntentHigh, Score: 85},
			{Name: "Ben", Intent: models.IntentLow, Score: 20},
		})
		require.NoError(t, err)

		_, err = repo.Set([]models.ScoredLead{
			{Name: "Cleo", Intent: models.IntentMedium, Score: 55},
		})
		require.NoError(t, err)

		got, err := repo.Get()
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Cleo", got[0].Name)
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		t.Parallel()
		repo := NewMemoryResultRepository()

		_, err := repo.Set([]models.ScoredLead{{Name: "Ava", Score: 85}})
		require.NoError(t, err)

		first, err := repo.Get()
		require.NoError(t, err)
		first[0].Name = "mutated"

		second, err := repo.Get()
		require.NoError(t, err)
		assert.Equal(t, "Ava", second[0].Name)
	})
}
