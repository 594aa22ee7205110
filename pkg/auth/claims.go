package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/stockroomhq/stockroom-backend/pkg/enums"
)

// AccessTokenClaims is the typed JWT issued to clients. The user id rides in
// the registered subject claim; the role is the only custom claim.
type AccessTokenClaims struct {
	Role enums.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// UserID returns the subject the token was issued for.
func (c *AccessTokenClaims) UserID() string {
	return c.Subject
}
