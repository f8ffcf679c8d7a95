package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"

	"marketplace/internal/pkg/httpx"
)

const shuttingDownMessage = "service is shutting down"

// Middleware отклоняет новые запросы, как только началась остановка сервера.
// Ответ в том же JSON-формате, что и ошибки обработчиков; соединение закрывается,
// чтобы балансировщик переоткрыл его на другой реплике.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isShuttingDown.Load() && ongoingCtx.Err() == nil {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Connection", "close")
			w.Header().Set("Retry-After", "1")
			// клиент уже не дождется ответа, ошибку записи некуда отдавать
			_ = httpx.WriteJSON(w, http.StatusServiceUnavailable, httpx.ErrorResponse{Error: shuttingDownMessage})
		})
	}
}
