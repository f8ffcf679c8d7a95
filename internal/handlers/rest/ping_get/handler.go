package ping_get

import (
	"net/http"

	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/pkg/httpx"
)

type Handler struct {
	log   handlerLogger
	clock Clock
}

func New(log handlerLogger, clock Clock) *Handler {
	return &Handler{
		log:   log,
		clock: clock,
	}
}

// ServeHTTP отвечает pong и временем сервера в UTC.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res := dto.PingResponse{
		Message:    "pong",
		ServerTime: h.clock.Now().UTC(),
	}

	httpx.Respond(w, h.log, http.StatusOK, res)
}
