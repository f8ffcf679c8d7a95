package courier_post

import (
	"net/http"

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
	var body dto.CourierCreate
	if err := httpx.DecodeJSON(r, &body); err != nil {
		httpx.RespondError(w, h.log, "register courier", err)
		return
	}

	courier, err := h.service.RegisterCourier(r.Context(), body.ToDomain())
	if err != nil {
		httpx.RespondError(w, h.log, "register courier", err)
		return
	}

	httpx.Respond(w, h.log, http.StatusCreated, dto.FromCourier(courier))
}
