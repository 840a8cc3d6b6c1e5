package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/anjaleena-mwt/reciperealm/database/repositories"
	"github.com/anjaleena-mwt/reciperealm/middleware"
	webmodels "github.com/anjaleena-mwt/reciperealm/models"
	"github.com/anjaleena-mwt/reciperealm/services"
	"github.com/anjaleena-mwt/reciperealm/testutil"
)

// apiResponse mirrors the JSON envelope for decoding in tests.
type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T, name string) (*fiber.App, *bun.DB) {
	t.Helper()

	db := testutil.OpenTestDB(t, name)

	repos := webmodels.NewRepositories(
		repositories.NewUserRepository(db),
		repositories.NewCategoryRepository(db),
		repositories.NewRecipeRepository(db),
	)

	images, err := services.NewLocalImageStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	webApp := &WebApp{
		Repos:   repos,
		Images:  images,
		Version: "test",
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.CustomErrorHandler,
	})
	RegisterRoutes(app, webApp)

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, apiResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	return resp.StatusCode, decodeEnvelope(t, resp)
}

func doMultipart(t *testing.T, app *fiber.App, path string, fields map[string]string, imageName string, imageData []byte) (int, apiResponse) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if imageName != "" {
		part, err := writer.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = part.Write(imageData)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	return resp.StatusCode, decodeEnvelope(t, resp)
}

func decodeEnvelope(t *testing.T, resp *http.Response) apiResponse {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope apiResponse
	require.NoError(t, json.Unmarshal(raw, &envelope), "body: %s", raw)
	return envelope
}

func TestWelcome(t *testing.T) {
	app, _ := newTestApp(t, "handlers_welcome")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "Welcome to RecipeRealm", body["message"])
}

func TestUnknownRoute(t *testing.T) {
	app, _ := newTestApp(t, "handlers_unknown")

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
