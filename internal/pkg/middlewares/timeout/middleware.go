package timeout

import (
	"context"
	"errors"
	"net/http"
	"time"

	"marketplace/internal/pkg/httpx"
	"marketplace/pkg/logger"
)

// Middleware ограничивает время обработки запроса. Запросы, пережившие дедлайн,
// логируются: их транзакции откатились по отмене контекста.
func Middleware(log handlerLogger, timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// r.Context() = ongoingCtx (из BaseContext)
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))

			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				log.Warn("request deadline exceeded",
					logger.NewField("method", r.Method),
					logger.NewField("route", httpx.RouteTemplate(r)),
					logger.NewField("timeout", timeout.String()),
				)
			}
		})
	}
}
