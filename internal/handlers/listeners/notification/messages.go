package notification

import (
	"fmt"
	"strings"

	"marketplace/internal/entities"
	"marketplace/internal/events"
)

const (
	relatedOrder   = "Order"
	relatedPayment = "Payment"
	relatedCourier = "CourierProfile"

	typeNewOrder         = "new_order"
	typeOrderStatus      = "order_status"
	typeOrderCancelled   = "order_cancelled"
	typeDeliveryAssigned = "delivery_assigned"
	typePayment          = "payment"
	typeAccount          = "account"
)

func customer(id string) entities.Recipient {
	return entities.Recipient{Role: entities.RecipientCustomer, ProfileID: id}
}

func storeOwner(id string) entities.Recipient {
	return entities.Recipient{Role: entities.RecipientStoreOwner, ProfileID: id}
}

func courier(id string) entities.Recipient {
	return entities.Recipient{Role: entities.RecipientCourier, ProfileID: id}
}

func orderCreatedNotification(e events.OrderCreated) entities.Notification {
	return entities.Notification{
		Recipients:   []entities.Recipient{storeOwner(e.StoreID), customer(e.CustomerID)},
		Title:        "New order",
		Message:      fmt.Sprintf("Order %s has been placed, total %s", e.OrderNumber, e.Total.StringFixed(2)),
		Type:         typeNewOrder,
		Priority:     entities.PriorityHigh,
		RelatedID:    e.OrderID,
		RelatedModel: relatedOrder,
		Data: map[string]any{
			"order_number": e.OrderNumber,
			"total":        e.Total.StringFixed(2),
		},
	}
}

func orderStatusNotification(e events.OrderStatusUpdated) entities.Notification {
	recipients := []entities.Recipient{customer(e.CustomerID)}
	// магазин сам двигает заказ до выдачи, о дальнейших шагах узнает от курьера
	if e.UpdatedBy.Role != entities.RoleStore {
		recipients = append(recipients, storeOwner(e.StoreID))
	}

	priority := entities.PriorityNormal
	if e.NewStatus == entities.OrderReady || e.NewStatus == entities.OrderDelivered {
		priority = entities.PriorityHigh
	}

	data := map[string]any{
		"order_number": e.OrderNumber,
		"old_status":   e.OldStatus.String(),
		"new_status":   e.NewStatus.String(),
	}
	if e.Notes != nil {
		data["notes"] = *e.Notes
	}

	return entities.Notification{
		Recipients:   recipients,
		Title:        "Order " + humanStatus(e.NewStatus),
		Message:      fmt.Sprintf("Order %s is now %s", e.OrderNumber, humanStatus(e.NewStatus)),
		Type:         typeOrderStatus,
		Priority:     priority,
		RelatedID:    e.OrderID,
		RelatedModel: relatedOrder,
		Data:         data,
	}
}

func orderCancelledNotification(e events.OrderCancelled) entities.Notification {
	message := fmt.Sprintf("Order %s has been cancelled", e.OrderNumber)
	if e.Reason != "" {
		message += ": " + e.Reason
	}

	return entities.Notification{
		Recipients:   []entities.Recipient{customer(e.CustomerID), storeOwner(e.StoreID)},
		Title:        "Order cancelled",
		Message:      message,
		Type:         typeOrderCancelled,
		Priority:     entities.PriorityHigh,
		RelatedID:    e.OrderID,
		RelatedModel: relatedOrder,
		Data: map[string]any{
			"order_number": e.OrderNumber,
			"reason":       e.Reason,
		},
	}
}

func orderAssignedNotification(e events.OrderAssignedToCourier) entities.Notification {
	return entities.Notification{
		Recipients:   []entities.Recipient{courier(e.CourierID)},
		Title:        "New delivery assigned",
		Message:      "You have been assigned a new delivery",
		Type:         typeDeliveryAssigned,
		Priority:     entities.PriorityHigh,
		Channels:     []entities.NotificationChannel{entities.ChannelInApp, entities.ChannelPush, entities.ChannelSMS},
		RelatedID:    e.OrderID,
		RelatedModel: relatedOrder,
		Data: map[string]any{
			"assigned_by": e.AssignedBy,
		},
	}
}

func paymentProcessedNotification(e events.PaymentProcessed) entities.Notification {
	return paymentNotification(e.PaymentDetails, "Payment processing",
		fmt.Sprintf("Your payment of %s is being processed", e.Amount.StringFixed(2)),
		entities.PriorityLow, customer(e.CustomerID))
}

func paymentCompletedNotification(e events.PaymentCompleted) entities.Notification {
	return paymentNotification(e.PaymentDetails, "Payment received",
		fmt.Sprintf("Payment of %s has been received", e.Amount.StringFixed(2)),
		entities.PriorityNormal, customer(e.CustomerID), storeOwner(e.StoreID))
}

func paymentFailedNotification(e events.PaymentFailed) entities.Notification {
	n := paymentNotification(e.PaymentDetails, "Payment failed",
		fmt.Sprintf("Your payment of %s failed: %s", e.Amount.StringFixed(2), e.Reason),
		entities.PriorityHigh, customer(e.CustomerID))
	n.Data["reason"] = e.Reason
	return n
}

func paymentRefundedNotification(e events.PaymentRefunded) entities.Notification {
	n := paymentNotification(e.PaymentDetails, "Payment refunded",
		fmt.Sprintf("%s has been refunded to you", e.RefundAmount.StringFixed(2)),
		entities.PriorityNormal, customer(e.CustomerID), storeOwner(e.StoreID))
	n.Data["refund_amount"] = e.RefundAmount.StringFixed(2)
	n.Data["reason"] = e.Reason
	return n
}

func paymentNotification(
	d events.PaymentDetails,
	title, message string,
	priority entities.NotificationPriority,
	recipients ...entities.Recipient,
) entities.Notification {
	return entities.Notification{
		Recipients:   recipients,
		Title:        title,
		Message:      message,
		Type:         typePayment,
		Priority:     priority,
		RelatedID:    d.PaymentID,
		RelatedModel: relatedPayment,
		Data: map[string]any{
			"order_id":       d.OrderID,
			"amount":         d.Amount.StringFixed(2),
			"payment_method": string(d.PaymentMethod),
		},
	}
}

func courierSuspendedNotification(e events.CourierSuspended) entities.Notification {
	message := "Your courier account has been suspended"
	if e.Reason != "" {
		message += ": " + e.Reason
	}

	return entities.Notification{
		Recipients:   []entities.Recipient{courier(e.CourierID)},
		Title:        "Account suspended",
		Message:      message,
		Type:         typeAccount,
		Priority:     entities.PriorityUrgent,
		Channels:     []entities.NotificationChannel{entities.ChannelInApp, entities.ChannelPush, entities.ChannelEmail},
		RelatedID:    e.CourierID,
		RelatedModel: relatedCourier,
		Data: map[string]any{
			"reason": e.Reason,
		},
	}
}

func courierUnsuspendedNotification(e events.CourierUnsuspended) entities.Notification {
	return entities.Notification{
		Recipients:   []entities.Recipient{courier(e.CourierID)},
		Title:        "Account reactivated",
		Message:      "Your courier account is active again",
		Type:         typeAccount,
		Priority:     entities.PriorityNormal,
		RelatedID:    e.CourierID,
		RelatedModel: relatedCourier,
	}
}

func humanStatus(s entities.OrderStatus) string {
	return strings.ReplaceAll(s.String(), "_", " ")
}
