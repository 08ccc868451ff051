package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gift-recommender-be/internal/bootstrap"
	"gift-recommender-be/internal/config"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

const testCatalog = `[
  {"id": 1, "name": "ساعة يد نسائية", "description": "ساعة أنيقة بسوار جلد", "price": 750,
   "tags": ["watches"], "occasion": "birthday", "targetGender": "female"},
  {"id": 2, "name": "محفظة جلد رجالي", "description": "محفظة عملية بجيوب كتير", "price": 300,
   "tags": ["wallets"], "targetGender": "male"}
]`

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "products.json")
	require.NoError(t, os.WriteFile(catalogPath, []byte(testCatalog), 0o644))

	cfg := &config.Config{
		App: config.AppConfig{
			Port:               "0",
			Environment:        "test",
			LogFilePath:        filepath.Join(dir, "app.log"),
			CorsAllowedOrigins: "*",
			JwtSecret:          testSecret,
		},
		Ai: config.AIConfig{
			EmbeddingProvider: "local",
			LocalDimensions:   128,
			CacheTTL:          time.Minute,
			BreakerFailures:   5,
			BreakerCooldown:   time.Second,
		},
		Session: config.SessionConfig{
			Backend:         "memory",
			MaxAge:          time.Hour,
			CleanupInterval: time.Hour,
			HistoryLimit:    5,
		},
		Catalog:   config.CatalogConfig{Source: "file", FilePath: catalogPath},
		Recommend: config.RecommendConfig{DefaultTopK: 5, SimilarityThreshold: 0, TimeZone: "UTC"},
	}

	container, err := bootstrap.NewContainer(nil, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })

	return New(cfg, container).GetApp()
}

func do(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &body))
	}
	return resp.StatusCode, body
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func adminToken(t *testing.T, admin bool) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "ops", "admin": admin})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestServer_WelcomeAndHealth(t *testing.T) {
	app := newTestApp(t)

	code, body := do(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, body["message"])

	code, body = do(t, app, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "closed", body["embedding_breaker"])
}

func TestServer_Suggest(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/suggest", "/api/suggest/v1"} {
		code, body := do(t, app, jsonRequest(http.MethodPost, path,
			`{"question": "عايز هدية عيد ميلاد لأختي", "top_k": [1], "session_id": "web-1"}`))
		require.Equal(t, http.StatusOK, code, path)

		products, ok := body["products"].([]interface{})
		require.True(t, ok, path)
		require.Len(t, products, 1, path)
		assert.Equal(t, "ساعة يد نسائية", products[0].(map[string]interface{})["name"])
		assert.Equal(t, "web-1", body["session_id"])
		assert.NotEmpty(t, body["message"])
		assert.Contains(t, body, "execution_time")
	}
}

func TestServer_SuggestValidation(t *testing.T) {
	app := newTestApp(t)

	code, body := do(t, app, jsonRequest(http.MethodPost, "/api/suggest/v1", `{"top_k": 3}`))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, body["success"])

	code, _ = do(t, app, jsonRequest(http.MethodPost, "/api/suggest/v1", `{not json`))
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestServer_SessionLifecycle(t *testing.T) {
	app := newTestApp(t)

	code, body := do(t, app, httptest.NewRequest(http.MethodPost, "/api/session/v1", nil))
	require.Equal(t, http.StatusCreated, code)
	id := body["data"].(map[string]interface{})["session_id"].(string)
	require.NotEmpty(t, id)

	code, body = do(t, app, httptest.NewRequest(http.MethodGet, "/api/session/v1/"+id, nil))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, id, body["id"])

	code, _ = do(t, app, httptest.NewRequest(http.MethodGet, "/api/session/v1/missing", nil))
	assert.Equal(t, http.StatusNotFound, code)
}

func TestServer_AdminRequiresToken(t *testing.T) {
	app := newTestApp(t)

	code, _ := do(t, app, httptest.NewRequest(http.MethodGet, "/api/admin/session/v1", nil))
	assert.Equal(t, http.StatusUnauthorized, code)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/session/v1", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, false))
	code, _ = do(t, app, req)
	assert.Equal(t, http.StatusForbidden, code)

	do(t, app, httptest.NewRequest(http.MethodPost, "/api/session/v1", nil))

	req = httptest.NewRequest(http.MethodGet, "/api/admin/session/v1", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, true))
	code, body := do(t, app, req)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["data"].(map[string]interface{})["count"])

	req = httptest.NewRequest(http.MethodPost, "/api/admin/session/v1/sweep", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, true))
	code, body = do(t, app, req)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(0), body["data"].(map[string]interface{})["removed"])

	req = httptest.NewRequest(http.MethodGet, "/api/admin/embedding/v1", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, true))
	code, body = do(t, app, req)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "local:128", body["data"].(map[string]interface{})["model"])
}

func TestServer_Metrics(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_MetricsSurviveMixedTraffic(t *testing.T) {
	app := newTestApp(t)

	for i := 0; i < 3; i++ {
		do(t, app, httptest.NewRequest(http.MethodGet, "/health", nil))
		do(t, app, httptest.NewRequest(http.MethodPost, "/api/session/v1", nil))
		do(t, app, httptest.NewRequest(http.MethodGet, "/api/session/v1/missing", nil))
		do(t, app, jsonRequest(http.MethodPost, "/suggest", `{"question": "هدية"}`))
		do(t, app, httptest.NewRequest(http.MethodDelete, "/api/admin/session/v1/x", nil))
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	assert.Contains(t, string(raw), `method="POST",route="/api/session/v1"`)
	assert.Contains(t, string(raw), `method="GET",route="/health"`)
}
