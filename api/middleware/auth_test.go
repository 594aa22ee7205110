package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkgauth "github.com/stockroomhq/stockroom-backend/pkg/auth"
	"github.com/stockroomhq/stockroom-backend/pkg/config"
	"github.com/stockroomhq/stockroom-backend/pkg/enums"
	"github.com/stockroomhq/stockroom-backend/pkg/identifier"
	"github.com/stockroomhq/stockroom-backend/pkg/types"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "secret", Issuer: "stockroom-api", ExpirationHours: 168}
}

func mintTestToken(t *testing.T, cfg config.JWTConfig, role enums.UserRole, issuedAt time.Time) string {
	t.Helper()
	token, err := pkgauth.MintAccessToken(cfg, issuedAt, identifier.New(), role)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func authHandler(cfg config.JWTConfig, repoTouched *bool) http.Handler {
	return Auth(cfg, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if repoTouched != nil {
			*repoTouched = true
		}
		w.WriteHeader(http.StatusOK)
	}))
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) types.ErrorEnvelope {
	t.Helper()
	var body types.ErrorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	return body
}

func TestAuthRejectsMissingHeaderWithoutDownstreamWork(t *testing.T) {
	touched := false
	handler := authHandler(testJWTConfig(), &touched)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
	if touched {
		t.Fatal("downstream handler must not run without credentials")
	}
}

func TestAuthRejectsMalformedScheme(t *testing.T) {
	handler := authHandler(testJWTConfig(), nil)

	for _, header := range []string{"Basic abc", "bearer lowercase", "Bearer", "Bearer   "} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401 got %d", header, resp.Code)
		}
	}
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	handler := authHandler(testJWTConfig(), nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
	if body := decodeError(t, resp); body.Error != "invalid token" {
		t.Fatalf("expected invalid-token message, got %q", body.Error)
	}
}

func TestAuthRejectsExpiredTokenWithSpecificMessage(t *testing.T) {
	cfg := testJWTConfig()
	cfg.ExpirationHours = 1
	token := mintTestToken(t, cfg, enums.UserRoleUser, time.Now().Add(-2*time.Hour))

	handler := authHandler(cfg, nil)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
	if body := decodeError(t, resp); body.Error != "token expired" {
		t.Fatalf("expected expiry-specific message, got %q", body.Error)
	}
}

func TestAuthMissingSecretIsServerFailure(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Secret = ""
	handler := authHandler(cfg, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for unconfigured secret, got %d", resp.Code)
	}
}

func TestAuthSeedsIdentity(t *testing.T) {
	cfg := testJWTConfig()
	token := mintTestToken(t, cfg, enums.UserRoleAdmin, time.Now())

	var captured struct {
		user string
		role string
	}
	handler := Auth(cfg, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.user = UserIDFromContext(r.Context())
		captured.role = RoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if captured.user == "" {
		t.Fatal("expected user id in context")
	}
	if captured.role != enums.UserRoleAdmin.String() {
		t.Fatalf("expected role admin got %s", captured.role)
	}
}

func TestRequireAdminForbidsStandardUser(t *testing.T) {
	handler := RequireAdmin(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	req = req.WithContext(WithIdentity(req.Context(), identifier.New(), enums.UserRoleUser.String()))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", resp.Code)
	}
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	handler := RequireAdmin(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	req = req.WithContext(WithIdentity(req.Context(), identifier.New(), enums.UserRoleAdmin.String()))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}
