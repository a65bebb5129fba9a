package auth

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"github.com/riwi/jobboard-backend/pkg/enums"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID uint
	Email  string
	Role   enums.Role
	// JTI pins the token id; empty means a fresh uuid is generated.
	JTI string
}

// AccessTokenClaims is the typed JWT issued to clients. The user id travels
// in the registered "sub" claim.
type AccessTokenClaims struct {
	Email string     `json:"email"`
	Role  enums.Role `json:"role"`
	jwt.RegisteredClaims
}

// UserID decodes the numeric subject.
func (c *AccessTokenClaims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
