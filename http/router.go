package http

import (
	"net/http"

	"rate-normalizer/logger"
)

// NewRouter mounts every endpoint behind the rate limiter.
func NewRouter(
	rateHandler *RateHandler,
	termHandler *TermHandler,
	limiter *RateLimiter,
	log logger.Logger,
) http.Handler {
	routes := map[string]http.HandlerFunc{
		"/rates/normalize":       rateHandler.NormalizeRecord,
		"/rates/normalize-batch": rateHandler.NormalizeBatch,
		"/rates/quarantine":      rateHandler.Quarantine,
		"/terms/normalize":       termHandler.NormalizeTerm,
		"/terms/range":           termHandler.NormalizeRange,
		"/terms/standard":        termHandler.StandardTerms,
	}

	mux := http.NewServeMux()
	for path, handler := range routes {
		mux.Handle(path, RateLimitMiddleware(limiter, log, handler))
	}
	return mux
}
