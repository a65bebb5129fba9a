package access

import (
	"context"

	"github.com/riwi/jobboard-backend/pkg/enums"
)

// Principal is the authenticated identity attached to one request.
type Principal struct {
	UserID uint
	Email  string
	Role   enums.Role
	// TokenID is the jti of the access token that proved the identity.
	TokenID string
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the request principal, or nil for anonymous requests.
func PrincipalFrom(ctx context.Context) *Principal {
	if ctx == nil {
		return nil
	}
	p, _ := ctx.Value(principalKey{}).(*Principal)
	return p
}
