package courier_commission_put

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
		httpx.RespondError(w, h.log, "update commission rate", err)
		return
	}

	var body dto.CourierCommission
	if err := httpx.DecodeJSON(r, &body); err != nil {
		httpx.RespondError(w, h.log, "update commission rate", err)
		return
	}

	courier, err := h.service.UpdateCommissionRate(r.Context(), mux.Vars(r)["id"], body.CommissionRate, actor)
	if err != nil {
		httpx.RespondError(w, h.log, "update commission rate", err)
		return
	}

	httpx.Respond(w, h.log, http.StatusOK, dto.FromCourier(courier))
}
