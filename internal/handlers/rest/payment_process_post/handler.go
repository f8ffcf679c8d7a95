package payment_process_post

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
		httpx.RespondError(w, h.log, "process payment", err)
		return
	}

	var body dto.PaymentProcess
	if err := httpx.DecodeJSON(r, &body); err != nil {
		httpx.RespondError(w, h.log, "process payment", err)
		return
	}

	result, err := h.service.ProcessPayment(r.Context(), entities.ProcessPaymentRequest{
		OrderID:       mux.Vars(r)["id"],
		Amount:        body.Amount,
		Method:        entities.PaymentMethod(body.PaymentMethod),
		TransactionID: body.TransactionID,
		Actor:         actor,
	})
	if err != nil {
		// при ErrPaymentFailed неудачная попытка уже сохранена, её видно через GET /payment
		httpx.RespondError(w, h.log, "process payment", err)
		return
	}

	httpx.Respond(w, h.log, http.StatusOK, dto.FromPayment(result))
}
