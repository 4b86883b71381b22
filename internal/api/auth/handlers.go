// internal/api/auth/handlers.go
package auth

import (
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/coregymclub/core-gym-public/internal/api/apiutil"
)

const (
	sessionCookieName   = "zoeziId"
	sessionCookieMaxAge = 60 * 60 * 24 * 30 // 30 days
)

var (
	cookieDomain string
	domainOnce   sync.Once
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(domain string) {
	if domain == "" {
		return
	}
	domainOnce.Do(func() {
		cookieDomain = domain
	})
}

type sessionRequest struct {
	Session string `json:"session"`
	User    any    `json:"user"`
}

type sessionResponse struct {
	Success bool `json:"success"`
	User    any  `json:"user"`
}

// POST /api/auth/session
//
// Makes an externally obtained member session usable by first-party page
// loads. The cookie is deliberately not HTTP-only: the member platform's
// browser scripts read it.
func HandleSession(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	var req sessionRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Session == "" {
		apiutil.WriteError(w, http.StatusBadRequest, "Missing session token")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    req.Session,
		Domain:   cookieDomain,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge,
		Secure:   true,
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})

	if err := apiutil.WriteJSON(w, http.StatusOK, sessionResponse{
		Success: true,
		User:    req.User,
	}); err != nil {
		logger.Error().Err(err).Msg("Failed to write session response")
	}
}
