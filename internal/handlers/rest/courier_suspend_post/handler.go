package courier_suspend_post

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
		httpx.RespondError(w, h.log, "suspend courier", err)
		return
	}

	var body dto.CourierSuspend
	if err := httpx.DecodeJSON(r, &body); err != nil {
		httpx.RespondError(w, h.log, "suspend courier", err)
		return
	}

	courier, err := h.service.SuspendCourier(r.Context(), mux.Vars(r)["id"], actor, body.Reason)
	if err != nil {
		httpx.RespondError(w, h.log, "suspend courier", err)
		return
	}

	httpx.Respond(w, h.log, http.StatusOK, dto.FromCourier(courier))
}
