package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anjaleena-mwt/reciperealm/database"
	"github.com/anjaleena-mwt/reciperealm/database/models"
	"github.com/anjaleena-mwt/reciperealm/testutil"
)

func TestCategoryRepository_CreateAndGet(t *testing.T) {
	db := testutil.OpenTestDB(t, "catrepo_create")
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	category := &models.Category{Name: "Desserts"}
	require.NoError(t, repo.Create(ctx, category))
	require.NotZero(t, category.ID)

	byName, err := repo.GetByName(ctx, "Desserts")
	require.NoError(t, err)
	require.NotNil(t, byName)
	require.Equal(t, category.ID, byName.ID)

	byID, err := repo.GetByID(ctx, category.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	require.Equal(t, "Desserts", byID.Name)

	missing, err := repo.GetByID(ctx, 9999)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestCategoryRepository_UniqueName(t *testing.T) {
	db := testutil.OpenTestDB(t, "catrepo_unique")
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Category{Name: "Desserts"}))

	err := repo.Create(ctx, &models.Category{Name: "Desserts"})
	require.Error(t, err)
	require.True(t, database.IsUniqueViolation(err))
}

func TestCategoryRepository_GetAll(t *testing.T) {
	db := testutil.OpenTestDB(t, "catrepo_all")
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Desserts", "Starters", "Mains"} {
		require.NoError(t, repo.Create(ctx, &models.Category{Name: name}))
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "Desserts", all[0].Name)
}
