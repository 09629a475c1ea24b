package repositories

import (
	"context"
	"testing"

	apperr "acquiring/internal/errors"
	"acquiring/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// offlineDB never dials: the pgx pool is opened lazily and the ping is off.
func offlineDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(
		postgres.Open("host=127.0.0.1 port=1 user=fees dbname=fees sslmode=disable"),
		&gorm.Config{DisableAutomaticPing: true},
	)
	require.NoError(t, err)
	return db
}

func TestFeeStructureRepository_MalformedID(t *testing.T) {
	ctx := context.Background()
	repo := NewFeeStructureRepository(offlineDB(t))

	for _, id := range []string{"std", "abc", "", "123e4567-e89b-12d3-a456"} {
		t.Run(id, func(t *testing.T) {
			_, err := repo.GetByID(ctx, id)
			assert.ErrorIs(t, err, apperr.ErrNotFound)

			assert.ErrorIs(t, repo.SetActive(ctx, id, false), apperr.ErrNotFound)
		})
	}

	err := repo.Update(ctx, &models.FeeStructure{ID: "std"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestAssignmentRepository_MalformedStructureID(t *testing.T) {
	ids, err := NewAssignmentRepository(offlineDB(t)).MerchantIDsByStructure(context.Background(), "std")
	require.NoError(t, err)
	assert.Empty(t, ids)
}
