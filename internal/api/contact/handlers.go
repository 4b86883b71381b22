// internal/api/contact/handlers.go
package contact

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/coregymclub/core-gym-public/internal/api/apiutil"
	"github.com/coregymclub/core-gym-public/internal/contact"
	"github.com/coregymclub/core-gym-public/internal/ratelimit"
)

var (
	service     *contact.Service
	limiter     *ratelimit.Limiter
	trustProxy  bool
	serviceOnce sync.Once
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(s *contact.Service, l *ratelimit.Limiter, trustForwardedFor bool) {
	if s == nil {
		return
	}
	serviceOnce.Do(func() {
		service = s
		limiter = l
		trustProxy = trustForwardedFor
	})
}

type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Club    string `json:"club"`
}

type submitResponse struct {
	Success bool              `json:"success"`
	ID      string            `json:"id,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// POST /api/v1/contact
func HandleSubmit(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if service == nil {
		logger.Error().Msg("Contact service not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if limiter != nil {
		clientIP := ratelimit.GetClientIP(r, trustProxy)
		if result := limiter.Allow(clientIP); !result.Allowed {
			logger.Warn().Str("client_ip", clientIP).Msg("Contact submission rate limited")
			w.Header().Set("Retry-After", strconv.Itoa(int(result.RetryAfter.Seconds())+1))
			apiutil.WriteError(w, http.StatusTooManyRequests, "För många förfrågningar, försök igen senare")
			return
		}
	}

	values, err := decodeSubmitValues(r)
	if err != nil {
		apiutil.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	submission, fieldErrors, err := service.Submit(r.Context(), values)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to store contact submission")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if len(fieldErrors) > 0 {
		apiutil.WriteJSON(w, http.StatusBadRequest, submitResponse{Errors: fieldErrors})
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusCreated, submitResponse{
		Success: true,
		ID:      submission.ID,
	}); err != nil {
		logger.Error().Err(err).Msg("Failed to write contact response")
	}
}

func decodeSubmitValues(r *http.Request) (map[string]string, error) {
	if apiutil.IsJSONRequest(r) {
		var req submitRequest
		if err := apiutil.DecodeJSON(r, &req); err != nil {
			return nil, err
		}
		return map[string]string{
			"name":    req.Name,
			"email":   req.Email,
			"phone":   req.Phone,
			"subject": req.Subject,
			"message": req.Message,
			"club":    req.Club,
		}, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return map[string]string{
		"name":    apiutil.FirstNonEmpty(r.FormValue("name")),
		"email":   apiutil.FirstNonEmpty(r.FormValue("email")),
		"phone":   apiutil.FirstNonEmpty(r.FormValue("phone")),
		"subject": apiutil.FirstNonEmpty(r.FormValue("subject")),
		"message": r.FormValue("message"),
		"club":    apiutil.FirstNonEmpty(r.FormValue("club")),
	}, nil
}
