package httpapi

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/sportsworldcentral/swc-api/internal/platform/logging"
	"github.com/sportsworldcentral/swc-api/internal/platform/ratelimit"
	"github.com/sportsworldcentral/swc-api/internal/usecase"
)

// RateLimit enforces the per-API-key daily quota on v0 routes. Health,
// docs, and root probes stay exempt so monitors never burn quota.
func RateLimit(limiter *ratelimit.Limiter, logger *logging.Logger, next http.Handler) http.Handler {
	if limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.RateLimit")
		defer span.End()

		if isQuotaExempt(r.URL.Path) {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		key := quotaKey(r)
		decision, err := limiter.Check(ctx, key)
		if err != nil {
			// Quota store failures degrade open so a Redis outage never
			// takes the read API down with it.
			logger.WarnContext(ctx, "quota check failed", "error", err)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(decision.Limit, 10))
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(decision.Remaining, 10))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(decision.ResetAt.Unix(), 10))

		if !decision.Allowed {
			writeError(ctx, w, fmt.Errorf("%w: daily quota of %d requests reached", usecase.ErrQuotaExhausted, decision.Limit))
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func isQuotaExempt(path string) bool {
	normalized := strings.ToLower(strings.TrimSpace(path))
	switch normalized {
	case "/", "/healthz", "/openapi.json", "/docs", "/docs/":
		return true
	default:
		return false
	}
}

// quotaKey identifies the caller: API key header first, then the api_key
// query parameter, then the client IP as a last resort.
func quotaKey(r *http.Request) string {
	if key := strings.TrimSpace(r.Header.Get("X-API-Key")); key != "" {
		return "key:" + key
	}
	if key := strings.TrimSpace(r.URL.Query().Get("api_key")); key != "" {
		return "key:" + key
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
