package infra

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/s21platform/chat-service/internal/config"
)

const userUUIDHeader = "X-User-Uuid"

// AuthInterceptorHTTP trusts the platform gateway to authenticate the caller
// and forward its uuid. Requests without a valid uuid are rejected here.
func AuthInterceptorHTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userUUID := r.Header.Get(userUUIDHeader)
		if _, err := uuid.Parse(userUUID); err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyUUID, userUUID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
