package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"
)

type contextKey string

const UserIDKey contextKey = "user_id"

// Middleware rejects requests without a valid bearer token and session.
// Authenticated requests carry the user id under UserIDKey.
func (h *AuthHandler) Middleware(api huma.API, log *zap.Logger) func(ctx huma.Context, next func(huma.Context)) {
	if log == nil {
		log = zap.NewNop()
	}
	return func(ctx huma.Context, next func(huma.Context)) {
		userID, err := h.Authenticate(ctx.Context(), ctx.Header("Authorization"))
		if err != nil {
			switch {
			case errors.Is(err, ErrMissingToken), errors.Is(err, ErrInvalidToken), errors.Is(err, ErrSessionExpired):
				huma.WriteErr(api, ctx, http.StatusUnauthorized, "Unauthorized")
			default:
				log.Error("authentication failed", zap.Error(err))
				huma.WriteErr(api, ctx, http.StatusInternalServerError, "Internal Server Error")
			}
			return
		}

		next(huma.WithValue(ctx, UserIDKey, userID))
	}
}

// UserID returns the id stored by Middleware.
func UserID(ctx context.Context) (uint, bool) {
	userID, ok := ctx.Value(UserIDKey).(uint)
	return userID, ok
}
