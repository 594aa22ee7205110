package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stockroomhq/stockroom-backend/internal/auth"
	"github.com/stockroomhq/stockroom-backend/internal/describe"
	"github.com/stockroomhq/stockroom-backend/internal/items"
	"github.com/stockroomhq/stockroom-backend/internal/products"
	"github.com/stockroomhq/stockroom-backend/internal/users"
	pkgauth "github.com/stockroomhq/stockroom-backend/pkg/auth"
	"github.com/stockroomhq/stockroom-backend/pkg/config"
	"github.com/stockroomhq/stockroom-backend/pkg/db/models"
	"github.com/stockroomhq/stockroom-backend/pkg/enums"
	"github.com/stockroomhq/stockroom-backend/pkg/identifier"
	"github.com/stockroomhq/stockroom-backend/pkg/metrics"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T, protectProductWrites bool) http.Handler {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Item{}, &models.Product{}, &models.User{}))

	cfg := &config.Config{}
	cfg.JWT = config.JWTConfig{Secret: "route-test-secret", Issuer: "stockroom-api", ExpirationHours: 1}
	cfg.Features.ProtectProductWrites = protectProductWrites

	itemsSvc, err := items.NewService(items.NewRepository(conn))
	require.NoError(t, err)
	productsSvc, err := products.NewService(products.NewRepository(conn))
	require.NoError(t, err)
	authSvc, err := auth.NewService(users.NewRepository(conn), cfg.JWT)
	require.NoError(t, err)

	return New(Deps{
		Config:   cfg,
		Metrics:  metrics.NewHTTPMetrics(),
		Items:    itemsSvc,
		Products: productsSvc,
		Auth:     authSvc,
		Describe: describe.NewTemplateGenerator(),
	})
}

func mintToken(t *testing.T, role enums.UserRole) string {
	t.Helper()
	token, err := pkgauth.MintAccessToken(config.JWTConfig{
		Secret:          "route-test-secret",
		Issuer:          "stockroom-api",
		ExpirationHours: 1,
	}, time.Now().UTC(), identifier.New(), role)
	require.NoError(t, err)
	return token
}

func request(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func itemBody(name string) map[string]any {
	return map[string]any{
		"itemName":    name,
		"quantity":    2,
		"price":       9.99,
		"description": "a perfectly ordinary item",
		"category":    "General",
	}
}

func TestItemWritesRequireToken(t *testing.T) {
	router := newTestRouter(t, false)

	rec := request(t, router, http.MethodPost, "/api/items", "", itemBody("Hammer"))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = request(t, router, http.MethodPost, "/api/items", mintToken(t, enums.UserRoleUser), itemBody("Hammer"))
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestItemReadsAreOpen(t *testing.T) {
	router := newTestRouter(t, false)

	require.Equal(t, http.StatusOK, request(t, router, http.MethodGet, "/api/items", "", nil).Code)
	require.Equal(t, http.StatusOK, request(t, router, http.MethodGet, "/api/items/stats", "", nil).Code)
	require.Equal(t, http.StatusOK, request(t, router, http.MethodGet, "/api/items/categories", "", nil).Code)
}

func TestItemDeleteRequiresAdminRole(t *testing.T) {
	router := newTestRouter(t, false)

	rec := request(t, router, http.MethodPost, "/api/items", mintToken(t, enums.UserRoleUser), itemBody("Hammer"))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = request(t, router, http.MethodDelete, "/api/items/"+created.Data.ID, mintToken(t, enums.UserRoleUser), nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = request(t, router, http.MethodDelete, "/api/items/"+created.Data.ID, mintToken(t, enums.UserRoleAdmin), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestProductWritesOpenByDefault(t *testing.T) {
	router := newTestRouter(t, false)

	rec := request(t, router, http.MethodPost, "/api/products", "", map[string]any{
		"name":  "Desk Lamp",
		"price": 24.99,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestProductWritesGatedByFlag(t *testing.T) {
	router := newTestRouter(t, true)

	rec := request(t, router, http.MethodPost, "/api/products", "", map[string]any{
		"name":  "Desk Lamp",
		"price": 24.99,
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = request(t, router, http.MethodPost, "/api/products", mintToken(t, enums.UserRoleUser), map[string]any{
		"name":  "Desk Lamp",
		"price": 24.99,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// reads stay open regardless of the flag
	require.Equal(t, http.StatusOK, request(t, router, http.MethodGet, "/api/products", "", nil).Code)
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	router := newTestRouter(t, false)

	require.Equal(t, http.StatusOK, request(t, router, http.MethodGet, "/health/live", "", nil).Code)

	// drive one request through the middleware, then scrape
	request(t, router, http.MethodGet, "/api/items", "", nil)
	rec := request(t, router, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "http_requests_total")
}
