package rate_limiter

import (
	"net"
	"net/http"
	"strconv"

	"marketplace/internal/pkg/httpx"
	"marketplace/pkg/logger"
)

// Middleware ограничивает частоту запросов на каждого актора отдельно.
// Запросы без актора (healthcheck, метрики) считаются по адресу клиента.
func Middleware(log handlerLogger, rateLimiterQPS int, rlimiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rlimiter.Allow(limiterKey(r)) {
				next.ServeHTTP(w, r)
				return
			}

			handlerPath := httpx.RouteTemplate(r)
			role := r.Header.Get(httpx.HeaderActorRole)

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", handlerPath),
				logger.NewField("remote_addr", r.RemoteAddr),
				logger.NewField("actor", r.Header.Get(httpx.HeaderActorID)),
			).Warn("rate limit exceeded")

			RateLimitExceededTotal.WithLabelValues(r.Method, handlerPath, role).Inc()

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rateLimiterQPS))
			w.Header().Set("Retry-After", "1")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)

			_, err := w.Write([]byte(`{"error":"Too Many Requests","message":"Rate limit exceeded. Try again later."}`))
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Error("failed to write rate limit response")
			}
		})
	}
}

func limiterKey(r *http.Request) string {
	if id := r.Header.Get(httpx.HeaderActorID); id != "" {
		return r.Header.Get(httpx.HeaderActorRole) + ":" + id
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "addr:" + r.RemoteAddr
	}
	return "addr:" + host
}
