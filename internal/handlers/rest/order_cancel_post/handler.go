package order_cancel_post

import (
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/pkg/httpx"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, err := httpx.ActorFromRequest(r)
	if err != nil {
		httpx.RespondError(w, h.log, "cancel order", err)
		return
	}

	var body dto.OrderCancel
	if err := httpx.DecodeJSON(r, &body); err != nil {
		httpx.RespondError(w, h.log, "cancel order", err)
		return
	}

	order, err := h.service.CancelOrder(r.Context(), mux.Vars(r)["id"], actor, body.Reason)
	if err != nil {
		httpx.RespondError(w, h.log, "cancel order", err)
		return
	}

	httpx.Respond(w, h.log, http.StatusOK, dto.FromOrder(order))
}
