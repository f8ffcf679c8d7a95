package order_status_post

import (
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/entities"
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
		httpx.RespondError(w, h.log, "update order status", err)
		return
	}

	var body dto.OrderStatusUpdate
	if err := httpx.DecodeJSON(r, &body); err != nil {
		httpx.RespondError(w, h.log, "update order status", err)
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), entities.StatusChange{
		OrderID: mux.Vars(r)["id"],
		Status:  entities.OrderStatus(body.Status),
		Actor:   actor,
		Notes:   body.Notes,
		Reason:  body.Reason,
	})
	if err != nil {
		httpx.RespondError(w, h.log, "update order status", err)
		return
	}

	httpx.Respond(w, h.log, http.StatusOK, dto.FromOrder(order))
}
