package httpapi

import (
	"net/http"

	"github.com/sportsworldcentral/swc-api/internal/platform/id"
	"github.com/sportsworldcentral/swc-api/internal/platform/logging"
	"github.com/sportsworldcentral/swc-api/internal/platform/ratelimit"
)

func NewRouter(
	handler *Handler,
	limiter *ratelimit.Limiter,
	logger *logging.Logger,
	requestIDs id.Generator,
	swaggerEnabled bool,
	corsAllowedOrigins []string,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, swaggerEnabled)
	registerDomainRoutes(mux, handler)

	chain := recoverPanic(logger, mux)
	chain = RateLimit(limiter, logger, chain)
	chain = CORS(corsAllowedOrigins, chain)
	chain = RequestLogging(logger, requestIDs, chain)

	return RequestTracing(chain)
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
