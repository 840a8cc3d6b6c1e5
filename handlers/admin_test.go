package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anjaleena-mwt/reciperealm/database/models"
	webmodels "github.com/anjaleena-mwt/reciperealm/models"
	"github.com/anjaleena-mwt/reciperealm/testutil"
)

func TestAddCategory(t *testing.T) {
	app, _ := newTestApp(t, "admin_add_category")

	status, envelope := doJSON(t, app, http.MethodPost, "/admin/add-category",
		webmodels.CategoryCreateRequest{Name: "Desserts"})
	require.Equal(t, http.StatusOK, status)
	require.True(t, envelope.Success)
	require.Equal(t, "Category added", envelope.Message)

	var category models.Category
	require.NoError(t, json.Unmarshal(envelope.Data, &category))
	require.NotZero(t, category.ID)
	require.Equal(t, "Desserts", category.Name)

	// Same name again is rejected.
	status, envelope = doJSON(t, app, http.MethodPost, "/admin/add-category",
		webmodels.CategoryCreateRequest{Name: "Desserts"})
	require.Equal(t, http.StatusBadRequest, status)
	require.False(t, envelope.Success)
	require.Equal(t, "Category already exists", envelope.Message)
}

func TestListCategories(t *testing.T) {
	app, db := newTestApp(t, "admin_list_categories")
	testutil.SeedCategory(t, db, "Desserts")
	testutil.SeedCategory(t, db, "Mains")

	status, envelope := doJSON(t, app, http.MethodGet, "/admin/categories", nil)
	require.Equal(t, http.StatusOK, status)

	var categories []models.Category
	require.NoError(t, json.Unmarshal(envelope.Data, &categories))
	require.Len(t, categories, 2)
	require.Equal(t, "Desserts", categories[0].Name)
	require.Equal(t, "Mains", categories[1].Name)
}

func TestViewRecipes(t *testing.T) {
	app, db := newTestApp(t, "admin_view_recipes")

	user := testutil.SeedUser(t, db, "alice", "alice@example.com", "secret")
	desserts := testutil.SeedCategory(t, db, "Desserts")
	testutil.SeedRecipe(t, db, "Carrot Cake", user.ID, desserts.ID, true)
	testutil.SeedRecipe(t, db, "Chocolate Cake", user.ID, desserts.ID, false)

	// The moderation queue shows every recipe, approved or not, with the
	// owner and category names joined in.
	status, envelope := doJSON(t, app, http.MethodGet, "/admin/view-recipes", nil)
	require.Equal(t, http.StatusOK, status)

	var recipes []models.RecipeDetail
	require.NoError(t, json.Unmarshal(envelope.Data, &recipes))
	require.Len(t, recipes, 2)
	require.True(t, recipes[0].Approved)
	require.False(t, recipes[1].Approved)
	require.Equal(t, "alice", recipes[0].Username)
	require.Equal(t, "Desserts", recipes[0].CategoryName)
}

func TestApproveReject(t *testing.T) {
	app, db := newTestApp(t, "admin_approve_reject")

	user := testutil.SeedUser(t, db, "alice", "alice@example.com", "secret")
	desserts := testutil.SeedCategory(t, db, "Desserts")
	recipe := testutil.SeedRecipe(t, db, "Carrot Cake", user.ID, desserts.ID, false)

	status, envelope := doJSON(t, app, http.MethodPost, "/admin/approve-reject",
		webmodels.ApproveRejectRequest{RecipeID: recipe.ID, Approve: true})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Recipe updated", envelope.Message)

	// The approved row now shows up in the public listing.
	status, envelope = doJSON(t, app, http.MethodGet, "/recipes", nil)
	require.Equal(t, http.StatusOK, status)
	var listed []models.RecipeDetail
	require.NoError(t, json.Unmarshal(envelope.Data, &listed))
	require.Len(t, listed, 1)
	require.True(t, listed[0].Approved)

	// Rejecting takes it back out again.
	status, _ = doJSON(t, app, http.MethodPost, "/admin/approve-reject",
		webmodels.ApproveRejectRequest{RecipeID: recipe.ID, Approve: false})
	require.Equal(t, http.StatusOK, status)

	status, envelope = doJSON(t, app, http.MethodGet, "/recipes", nil)
	require.Equal(t, http.StatusOK, status)
	listed = nil
	require.NoError(t, json.Unmarshal(envelope.Data, &listed))
	require.Empty(t, listed)
}

func TestApproveReject_NotFound(t *testing.T) {
	app, _ := newTestApp(t, "admin_approve_missing")

	status, envelope := doJSON(t, app, http.MethodPost, "/admin/approve-reject",
		webmodels.ApproveRejectRequest{RecipeID: 9999, Approve: true})
	require.Equal(t, http.StatusNotFound, status)
	require.False(t, envelope.Success)
	require.Equal(t, "Recipe not found", envelope.Message)
}
