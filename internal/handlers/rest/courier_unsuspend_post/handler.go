package courier_unsuspend_post

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
		httpx.RespondError(w, h.log, "unsuspend courier", err)
		return
	}

	courier, err := h.service.UnsuspendCourier(r.Context(), mux.Vars(r)["id"], actor)
	if err != nil {
		httpx.RespondError(w, h.log, "unsuspend courier", err)
		return
	}

	httpx.Respond(w, h.log, http.StatusOK, dto.FromCourier(courier))
}
