package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stockroomhq/stockroom-backend/pkg/config"
	pkgerrors "github.com/stockroomhq/stockroom-backend/pkg/errors"
	"github.com/stockroomhq/stockroom-backend/pkg/enums"
)

var jwtSigningMethod = jwt.SigningMethodHS256

// MintAccessToken issues a signed JWT for the user using the configured TTL.
// An unconfigured secret is a server-configuration failure, never an auth
// failure.
func MintAccessToken(cfg config.JWTConfig, now time.Time, userID string, role enums.UserRole) (string, error) {
	if cfg.Secret == "" {
		return "", pkgerrors.New(pkgerrors.CodeServerConfig, "jwt signing secret is not configured")
	}
	if cfg.TokenTTL() <= 0 {
		return "", pkgerrors.New(pkgerrors.CodeServerConfig, "jwt expiration must be positive")
	}
	if !role.IsValid() {
		return "", fmt.Errorf("invalid user role %q", role)
	}

	claims := AccessTokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TokenTTL())),
		},
	}

	token := jwt.NewWithClaims(jwtSigningMethod, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("signing jwt: %w", err)
	}
	return signed, nil
}

// ParseAccessToken validates the JWT string and returns typed claims. Expiry
// failures surface as jwt.ErrTokenExpired so callers can distinguish them.
func ParseAccessToken(cfg config.JWTConfig, tokenString string) (*AccessTokenClaims, error) {
	if cfg.Secret == "" {
		return nil, pkgerrors.New(pkgerrors.CodeServerConfig, "jwt signing secret is not configured")
	}

	claims := &AccessTokenClaims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwtSigningMethod {
				return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
			}
			return []byte(cfg.Secret), nil
		},
		jwt.WithValidMethods([]string{jwtSigningMethod.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
	)
	if err != nil {
		return nil, err
	}

	return claims, nil
}
