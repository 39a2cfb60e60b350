package http

import (
	"net/http"

	"github.com/MKhiriev/vip-motors/internal/service"
	"github.com/MKhiriev/vip-motors/internal/utils"
	"github.com/MKhiriev/vip-motors/models"
)

// auth requires a valid access token of an active account and stores that
// account in the request context.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			h.writeError(w, r, ErrMissingToken)
			return
		}

		account, err := h.services.AuthService.Authenticate(r.Context(), token)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithAccount(r.Context(), account)))
	})
}

// optionalAuth attaches the account when a valid token is present and lets
// the request through anonymously otherwise.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		account, err := h.services.AuthService.Authenticate(r.Context(), token)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithAccount(r.Context(), account)))
	})
}

// authorize must run after auth. It rejects accounts whose role is not one of
// roles.
func (h *Handler) authorize(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			account, ok := utils.GetAccountFromContext(r.Context())
			if !ok {
				h.writeError(w, r, ErrMissingToken)
				return
			}
			if !account.HasRole(roles...) {
				h.writeError(w, r, service.ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// currentAccount returns the account stored by auth. Handlers behind auth
// can rely on it being present.
func currentAccount(r *http.Request) models.Account {
	account, _ := utils.GetAccountFromContext(r.Context())
	return account
}
