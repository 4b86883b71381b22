// internal/api/zproxy/handlers.go
// Reverse proxy for the Zoezi member platform. Relays requests under
// /api/z/ and rewrites Set-Cookie attributes so strict-cookie browsers
// accept the session under the site's own domain.
package zproxy

import (
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/coregymclub/core-gym-public/internal/api/apiutil"
)

var (
	domainAttr   = regexp.MustCompile(`(?i)domain=[^;]+`)
	sameSiteNone = regexp.MustCompile(`(?i)samesite=none`)
)

// Handlers proxies requests to the upstream member platform.
type Handlers struct {
	upstreamBase string
	cookieDomain string
	httpClient   *http.Client
}

func NewHandlers(upstreamBase, cookieDomain string, timeout time.Duration) *Handlers {
	return &Handlers{
		upstreamBase: strings.TrimRight(upstreamBase, "/"),
		cookieDomain: cookieDomain,
		httpClient: &http.Client{
			Timeout: timeout,
			// The browser follows redirects, not the proxy.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// ANY /api/z/{path...}
func (h *Handlers) HandleProxy(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	targetURL := h.upstreamBase + "/" + r.PathValue("path")
	if r.URL.RawQuery != "" {
		targetURL += "?" + r.URL.RawQuery
	}

	var body io.Reader
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		body = r.Body
	}

	upstreamReq, err := http.NewRequestWithContext(r.Context(), r.Method, targetURL, body)
	if err != nil {
		logger.Error().Err(err).Str("target", targetURL).Msg("Failed to build proxy request")
		apiutil.WriteError(w, http.StatusBadGateway, "Failed to proxy request to Zoezi")
		return
	}
	if cookie := r.Header.Get("Cookie"); cookie != "" {
		upstreamReq.Header.Set("Cookie", cookie)
	}
	if contentType := r.Header.Get("Content-Type"); contentType != "" {
		upstreamReq.Header.Set("Content-Type", contentType)
	}

	res, err := h.httpClient.Do(upstreamReq)
	if err != nil {
		logger.Error().Err(err).Str("target", targetURL).Msg("Proxy request failed")
		apiutil.WriteError(w, http.StatusBadGateway, "Failed to proxy request to Zoezi")
		return
	}
	defer res.Body.Close()

	for _, setCookie := range res.Header.Values("Set-Cookie") {
		w.Header().Add("Set-Cookie", h.RewriteSetCookie(setCookie))
	}
	if contentType := res.Header.Get("Content-Type"); contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}

	w.WriteHeader(res.StatusCode)
	if _, err := io.Copy(w, res.Body); err != nil {
		logger.Error().Err(err).Str("target", targetURL).Msg("Failed to relay proxy response body")
	}
}

// RewriteSetCookie points the cookie at the site's own parent domain and
// downgrades SameSite=None to Lax. The upstream and the site live on
// different subdomains; without the rewrite, strict-cookie browsers drop
// the session cookie.
func (h *Handlers) RewriteSetCookie(header string) string {
	header = domainAttr.ReplaceAllString(header, "domain="+h.cookieDomain)
	header = sameSiteNone.ReplaceAllString(header, "samesite=lax")
	return header
}
