package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// userCookieName — cookie с анонимным идентификатором пользователя.
const userCookieName = "scroller_user_id"

const userCookieMaxAge = 365 * 24 * 60 * 60 // 1 год

type userIDCtxKey struct{}

// EnsureUserID выдаёт анонимный идентификатор пользователя:
// читает cookie, а при её отсутствии чеканит новый UUID и устанавливает cookie.
// Идентификатор кладётся в контекст запроса.
func EnsureUserID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var userID string
		if cookie, err := r.Cookie(userCookieName); err == nil && cookie.Value != "" {
			userID = cookie.Value
		} else {
			userID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     userCookieName,
				Value:    userID,
				Path:     "/",
				MaxAge:   userCookieMaxAge,
				HttpOnly: true,
			})
		}

		ctx := context.WithValue(r.Context(), userIDCtxKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromCtx извлекает идентификатор пользователя из контекста запроса.
func UserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDCtxKey{}).(string)
	return userID, ok
}
