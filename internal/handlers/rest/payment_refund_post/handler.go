package payment_refund_post

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
		httpx.RespondError(w, h.log, "refund payment", err)
		return
	}

	var body dto.PaymentRefund
	if err := httpx.DecodeJSON(r, &body); err != nil {
		httpx.RespondError(w, h.log, "refund payment", err)
		return
	}

	result, err := h.service.RefundPayment(r.Context(), entities.RefundRequest{
		OrderID: mux.Vars(r)["id"],
		Amount:  body.Amount,
		Reason:  body.Reason,
		Actor:   actor,
	})
	if err != nil {
		httpx.RespondError(w, h.log, "refund payment", err)
		return
	}

	httpx.Respond(w, h.log, http.StatusOK, dto.FromPayment(result))
}
