package payment

import (
	"marketplace/internal/entities"
)

func ToDomain(p *PaymentDB) *entities.Payment {
	if p == nil {
		return nil
	}

	payment := &entities.Payment{
		ID:            p.ID,
		OrderID:       p.OrderID,
		CustomerID:    p.CustomerID,
		StoreID:       p.StoreID,
		Amount:        p.Amount,
		Method:        entities.PaymentMethod(p.Method),
		Status:        entities.PaymentStatus(p.Status),
		TransactionID: p.TransactionID,
		ConfirmedBy:   p.ConfirmedBy,
		ProcessedBy:   p.ProcessedBy,
		FailureReason: p.FailureReason,
		RefundReason:  p.RefundReason,
		RefundedBy:    p.RefundedBy,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		CompletedAt:   p.CompletedAt,
		RefundedAt:    p.RefundedAt,
		Version:       p.Version,
	}

	if p.RefundAmount.Valid {
		refund := p.RefundAmount.Decimal
		payment.RefundAmount = &refund
	}

	return payment
}
