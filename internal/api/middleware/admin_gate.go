package middleware

import (
	"encoding/json"
	"net/http"
)

const (
	// AdminCodeHeader передаёт код доступа к административным маршрутам
	AdminCodeHeader = "X-Admin-Code"

	msgAdminCodeRequired = "code administrateur invalide"
)

type errorResponse struct {
	Error string `json:"error"`
}

// AdminGate закрывает административные маршруты простым кодом доступа.
// Это не аутентификация: код статический, общий для всех администраторов
// и сравнивается как есть. Гейт лишь прячет служебные ручки от случайных
// посетителей; настоящая авторизация - за внешним периметром.
func AdminGate(code string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get(AdminCodeHeader) != code {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(errorResponse{Error: msgAdminCodeRequired})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
