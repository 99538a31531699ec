package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/baharkarakas/marina-backend/internal/api/httpx"
	"github.com/baharkarakas/marina-backend/internal/auth"
)

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Auth requires a bearer token. A missing or malformed Authorization header
// is 401; a token that fails verification is 403.
func Auth(tv TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				httpx.WriteError(w, http.StatusUnauthorized, httpx.APIError{
					Message: "Accès refusé. Veuillez vous connecter.",
					Code:    "unauthorized",
				})
				return
			}

			claims, err := tv.Verify(token)
			if err != nil {
				e := httpx.APIError{Message: "Token invalide.", Code: "invalid_token"}
				if errors.Is(err, auth.ErrExpiredToken) {
					e = httpx.APIError{Message: "Token expiré.", Code: "token_expired"}
				}
				httpx.WriteError(w, http.StatusForbidden, e)
				return
			}

			ctx := auth.WithIdentity(r.Context(), claims.Identity())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
