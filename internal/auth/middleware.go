package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/storage/user"
)

type contextKey struct{}

var currentUserKey = contextKey{}

// userFinder is the slice of the identity store the authorizer needs.
type userFinder interface {
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}

// NewMiddleware returns the request authorizer. It resolves the bearer token
// to a User and rejects with 401 on any failure: missing or malformed header,
// invalid or expired token, or a subject that no longer resolves to a user.
func NewMiddleware(api huma.API, tokens *TokenService, users userFinder) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		token, ok := bearerToken(ctx.Header("Authorization"))
		if !ok {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "Invalid authentication credentials")
			return
		}

		subject, err := tokens.Verify(token)
		if err != nil {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "Invalid authentication credentials")
			return
		}

		resolved, err := users.FindByEmail(ctx.Context(), subject)
		if err != nil {
			_ = huma.WriteErr(api, ctx, http.StatusInternalServerError, "failed to resolve user")
			return
		}
		if resolved == nil {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "User not found")
			return
		}

		next(huma.WithValue(ctx, currentUserKey, resolved))
	}
}

func bearerToken(header string) (string, bool) {
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}

// CurrentUser returns the user resolved by the authorizer middleware.
func CurrentUser(ctx context.Context) (*user.User, bool) {
	resolved, ok := ctx.Value(currentUserKey).(*user.User)
	return resolved, ok
}

// ContextWithUser injects a user, for handler tests that bypass the
// middleware.
func ContextWithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, currentUserKey, u)
}

// InjectUser returns a middleware that installs the given user as the request
// identity without touching the Authorization header. Used by handler tests.
func InjectUser(u *user.User) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithValue(ctx, currentUserKey, u))
	}
}
