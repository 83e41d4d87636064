package middleware

import (
	"context"
	"net/http"
	"strconv"
)

// Заголовки аутентификации, проставляемые API-шлюзом
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	userRoleKey
)

// Logger - интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth извлекает идентификацию пользователя из заголовков шлюза.
// Запросы без корректного X-User-ID отклоняются.
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawID := r.Header.Get(HeaderUserID)
			userID, err := strconv.ParseInt(rawID, 10, 64)
			if err != nil || userID <= 0 {
				logger.Warn("[middleware] unauthorized request: path=%s", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"пользователь не аутентифицирован"}`))
				return
			}

			role := r.Header.Get(HeaderUserRole)
			if role == "" {
				role = "student"
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, userRoleKey, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID возвращает идентификатор пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// GetUserRole возвращает роль пользователя из контекста запроса
func GetUserRole(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(userRoleKey).(string)
	return role, ok
}
