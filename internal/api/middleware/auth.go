package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/premium-barber/booking-service/internal/api/handlers"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	roleKey   contextKey = "userRole"
)

// RoleAdmin is the role claim that unlocks the admin surface. Identity and
// roles are established upstream (API gateway); this service only reads the
// headers it is handed.
const RoleAdmin = "admin"

const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
)

// Auth requires a positive integer X-User-ID header and stores the caller's
// identity and role in the request context.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(headerUserID)
		if raw == "" {
			handlers.RespondUnauthorized(w, "missing X-User-ID header")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "invalid X-User-ID header")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, roleKey, r.Header.Get(headerUserRole))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin rejects callers whose role claim is not admin. Must run after
// Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdmin(r.Context()) {
			handlers.RespondForbidden(w, "admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID returns the authenticated caller's id.
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// IsAdmin reports whether the caller carries the admin role claim.
func IsAdmin(ctx context.Context) bool {
	role, ok := ctx.Value(roleKey).(string)
	return ok && role == RoleAdmin
}
