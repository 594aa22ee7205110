package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stockroomhq/stockroom-backend/api/responses"
	pkgauth "github.com/stockroomhq/stockroom-backend/pkg/auth"
	"github.com/stockroomhq/stockroom-backend/pkg/config"
	pkgerrors "github.com/stockroomhq/stockroom-backend/pkg/errors"
	"github.com/stockroomhq/stockroom-backend/pkg/logger"
)

const bearerPrefix = "Bearer "

// Auth validates a bearer token and seeds the request context with the
// authenticated identity. This is the only way downstream handlers learn
// who is calling; the check is stateless — no session store, no revocation.
func Auth(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("Authorization")
			if !strings.HasPrefix(raw, bearerPrefix) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing or malformed authorization header"))
				return
			}

			token := strings.TrimSpace(raw[len(bearerPrefix):])
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing or malformed authorization header"))
				return
			}

			claims, err := pkgauth.ParseAccessToken(cfg, token)
			if err != nil {
				if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeServerConfig {
					responses.WriteError(r.Context(), logg, w, typed)
					return
				}
				if errors.Is(err, jwt.ErrTokenExpired) {
					responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "token expired"))
					return
				}
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			ctx := WithIdentity(r.Context(), claims.UserID(), claims.Role.String())
			if logg != nil {
				ctx = logg.WithFields(ctx, map[string]any{
					"user_id":    claims.UserID(),
					"actor_role": claims.Role.String(),
				})
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
