package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vaultpass/passgen-go/internal/model"
)

type contextKey string

const preferencesKey contextKey = "preferences"

// PreferencesLoader turns a bearer token into saved preferences.
type PreferencesLoader interface {
	Load(token string) (model.Preferences, error)
}

// Preferences returns middleware that reads an optional Bearer preferences
// token from the Authorization header. Requests without the header pass
// through untouched; a malformed or invalid token is rejected.
func Preferences(loader PreferencesLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			prefs, err := loader.Load(token)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired preferences token")
				return
			}

			ctx := context.WithValue(r.Context(), preferencesKey, prefs)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PreferencesFromContext extracts saved preferences from the request context.
func PreferencesFromContext(ctx context.Context) (model.Preferences, bool) {
	prefs, ok := ctx.Value(preferencesKey).(model.Preferences)
	return prefs, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
