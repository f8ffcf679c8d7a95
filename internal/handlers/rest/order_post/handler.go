package order_post

import (
	"fmt"
	"net/http"

	"marketplace/internal/entities"
	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/httpx"
)

var errForbidden = fmt.Errorf("%w: only customers and admins can place orders", errs.ErrForbidden)

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
		httpx.RespondError(w, h.log, "create order", err)
		return
	}

	var body dto.OrderCreate
	if err := httpx.DecodeJSON(r, &body); err != nil {
		httpx.RespondError(w, h.log, "create order", err)
		return
	}

	newOrder := body.ToDomain()
	switch actor.Role {
	case entities.RoleCustomer:
		// покупатель заказывает только на себя
		newOrder.CustomerID = actor.ID
	case entities.RoleAdmin:
	default:
		httpx.RespondError(w, h.log, "create order", errForbidden)
		return
	}

	order, err := h.service.CreateOrder(r.Context(), newOrder)
	if err != nil {
		httpx.RespondError(w, h.log, "create order", err)
		return
	}

	httpx.Respond(w, h.log, http.StatusCreated, dto.FromOrder(order))
}
