package courier_availability_put

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
		httpx.RespondError(w, h.log, "update courier availability", err)
		return
	}

	var body dto.CourierAvailability
	if err := httpx.DecodeJSON(r, &body); err != nil {
		httpx.RespondError(w, h.log, "update courier availability", err)
		return
	}

	courier, err := h.service.UpdateAvailability(r.Context(), mux.Vars(r)["id"], body.ToDomain(), actor)
	if err != nil {
		httpx.RespondError(w, h.log, "update courier availability", err)
		return
	}

	httpx.Respond(w, h.log, http.StatusOK, dto.FromCourier(courier))
}
