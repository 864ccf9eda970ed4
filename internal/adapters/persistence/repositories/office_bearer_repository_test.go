package repositories

import (
	"context"
	"testing"

	"samajam-backend/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBearerRepo(t *testing.T) OfficeBearerRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	bearers := []models.OfficeBearer{
		{Name: "New President", Designation: "President", TermStart: "2025", TermEnd: "2028", DisplayOrder: 1},
		{Name: "New Secretary", Designation: "General Secretary", TermStart: "2025", TermEnd: "2028", DisplayOrder: 2},
		{Name: "Old Secretary", Designation: "General Secretary", TermStart: "2022", TermEnd: "2025", DisplayOrder: 2},
		{Name: "Old President", Designation: "President", TermStart: "2022", TermEnd: "2025", DisplayOrder: 1},
	}
	require.NoError(t, db.Create(&bearers).Error)

	return NewOfficeBearerRepository(db)
}

func TestOfficeBearersByTerm(t *testing.T) {
	repo := newBearerRepo(t)

	bearers, err := repo.GetByTerm(context.Background(), "2025", "2028")
	require.NoError(t, err)
	require.Len(t, bearers, 2)
	assert.Equal(t, "New President", bearers[0].Name)
	assert.Equal(t, "New Secretary", bearers[1].Name)

	empty, err := repo.GetByTerm(context.Background(), "2019", "2022")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestOfficeBearersAllTermsOrdered(t *testing.T) {
	repo := newBearerRepo(t)

	bearers, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, bearers, 4)

	// Latest term first, presentation order inside a term
	assert.Equal(t, "New President", bearers[0].Name)
	assert.Equal(t, "New Secretary", bearers[1].Name)
	assert.Equal(t, "Old President", bearers[2].Name)
	assert.Equal(t, "Old Secretary", bearers[3].Name)
}
