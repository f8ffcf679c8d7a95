package payment_get

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
	payment, err := h.service.GetPaymentByOrderID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		httpx.RespondError(w, h.log, "get payment", err)
		return
	}

	httpx.Respond(w, h.log, http.StatusOK, dto.FromPayment(payment))
}
