package authinfo

import (
	"context"

	"github.com/edgekit/authinfo/authctx"
)

// Context key type for the decoded auth context.
type authContextKey struct{}

// ContextWithAuth adds a decoded auth context to the context.
func ContextWithAuth(ctx context.Context, ac *authctx.Context) context.Context {
	return context.WithValue(ctx, authContextKey{}, ac)
}

// AuthFromContext extracts the decoded auth context from the context.
func AuthFromContext(ctx context.Context) (*authctx.Context, bool) {
	ac, ok := ctx.Value(authContextKey{}).(*authctx.Context)
	return ac, ok
}
