package order_assign_post

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
		httpx.RespondError(w, h.log, "assign order", err)
		return
	}

	var body dto.OrderAssign
	if err := httpx.DecodeJSON(r, &body); err != nil {
		httpx.RespondError(w, h.log, "assign order", err)
		return
	}

	order, err := h.service.AssignOrderToCourier(r.Context(), mux.Vars(r)["id"], body.CourierID, actor)
	if err != nil {
		httpx.RespondError(w, h.log, "assign order", err)
		return
	}

	httpx.Respond(w, h.log, http.StatusOK, dto.FromOrder(order))
}
