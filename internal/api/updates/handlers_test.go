// internal/api/updates/handlers_test.go
package updates

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coregymclub/core-gym-public/internal/updates"
)

func setupClient(t *testing.T, handler http.HandlerFunc) {
	t.Helper()

	upstream := httptest.NewServer(handler)
	t.Cleanup(upstream.Close)

	client = updates.NewClient(upstream.URL, time.Second)
	t.Cleanup(func() { client = nil })
}

func getList(t *testing.T) listResponse {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/updates", nil)
	w := httptest.NewRecorder()
	HandleList(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp listResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestHandleListDecoratesExpiry(t *testing.T) {
	soon := time.Now().Add(36 * time.Hour).Format(time.RFC3339)
	later := time.Now().Add(10*24*time.Hour + time.Hour).Format(time.RFC3339)

	setupClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"updates": [
			{"id": "u1", "message": "Stängt för underhåll", "expiresAt": %q},
			{"id": "u2", "message": "Nya öppettider", "expiresAt": %q}
		], "total": 2}`, soon, later)
	})

	resp := getList(t)
	if len(resp.Updates) != 2 {
		t.Fatalf("expected 2 updates, got %d", len(resp.Updates))
	}

	first := resp.Updates[0]
	if first.DaysLeft != 2 || !first.ExpiringSoon {
		t.Errorf("update expiring in 36h: daysLeft=%d expiringSoon=%v", first.DaysLeft, first.ExpiringSoon)
	}
	second := resp.Updates[1]
	if second.DaysLeft != 11 || second.ExpiringSoon {
		t.Errorf("update expiring in 10 days: daysLeft=%d expiringSoon=%v", second.DaysLeft, second.ExpiringSoon)
	}
}

func TestHandleListDegradesWhenUpstreamFails(t *testing.T) {
	setupClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	resp := getList(t)
	if len(resp.Updates) != 0 {
		t.Fatalf("expected empty list, got %d updates", len(resp.Updates))
	}
	if resp.Error != "Kunde inte ladda uppdateringar" {
		t.Fatalf("unexpected error message: %q", resp.Error)
	}
}
