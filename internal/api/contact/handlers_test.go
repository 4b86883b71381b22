// internal/api/contact/handlers_test.go
package contact

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/coregymclub/core-gym-public/internal/contact"
	"github.com/coregymclub/core-gym-public/internal/ratelimit"
	"github.com/coregymclub/core-gym-public/internal/testutil"
)

func setupHandlers(t *testing.T, cfg *ratelimit.Config) {
	t.Helper()

	database := testutil.NewTestDB(t)
	svc := contact.NewService(contact.NewStore(database.DB), nil, "", zerolog.Nop())

	service = svc
	limiter = ratelimit.New(cfg)
	trustProxy = false
	t.Cleanup(func() {
		service = nil
		limiter = nil
	})
}

func postJSON(body string, remoteAddr string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	r.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	HandleSubmit(w, r)
	return w
}

func TestHandleSubmitStoresValidSubmission(t *testing.T) {
	setupHandlers(t, nil)

	w := postJSON(`{
		"name": "Anna Andersson",
		"email": "anna@example.com",
		"message": "Jag vill veta mer om era medlemskap."
	}`, "1.2.3.4:1000")

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.ID == "" {
		t.Fatalf("expected success with id, got %+v", resp)
	}
}

func TestHandleSubmitReturnsFieldErrors(t *testing.T) {
	setupHandlers(t, nil)

	w := postJSON(`{"name": "Anna", "email": "not-an-email", "message": "kort"}`, "1.2.3.4:1000")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Errors["email"] == "" {
		t.Error("expected an email field error")
	}
	if resp.Errors["message"] == "" {
		t.Error("expected a message field error")
	}
}

func TestHandleSubmitRateLimits(t *testing.T) {
	setupHandlers(t, &ratelimit.Config{Cooldown: time.Minute, MaxPerHour: 10})

	body := `{
		"name": "Anna Andersson",
		"email": "anna@example.com",
		"message": "Jag vill veta mer om era medlemskap."
	}`

	if w := postJSON(body, "1.2.3.4:1000"); w.Code != http.StatusCreated {
		t.Fatalf("first submission should succeed, got %d", w.Code)
	}

	w := postJSON(body, "1.2.3.4:1001")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 within cooldown, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header on rate limited response")
	}

	// A different client is unaffected.
	if w := postJSON(body, "5.6.7.8:1000"); w.Code != http.StatusCreated {
		t.Fatalf("other client should succeed, got %d", w.Code)
	}
}
