package dto

import (
	"marketplace/internal/entities"
)

func (l *Location) ToDomain() *entities.Location {
	if l == nil {
		return nil
	}
	return &entities.Location{Lat: l.Lat, Lon: l.Lon}
}

func FromLocation(l *entities.Location) *Location {
	if l == nil {
		return nil
	}
	return &Location{Lat: l.Lat, Lon: l.Lon}
}

func (o OrderCreate) ToDomain() entities.NewOrder {
	items := make([]entities.OrderItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = entities.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	var method *entities.PaymentMethod
	if o.PaymentMethod != nil {
		m := entities.PaymentMethod(*o.PaymentMethod)
		method = &m
	}

	return entities.NewOrder{
		CustomerID: o.CustomerID,
		StoreID:    o.StoreID,
		Items:      items,
		DeliveryAddress: entities.DeliveryAddress{
			Street:     o.DeliveryAddress.Street,
			City:       o.DeliveryAddress.City,
			PostalCode: o.DeliveryAddress.PostalCode,
			Location:   o.DeliveryAddress.Location.ToDomain(),
		},
		DeliveryFee:   o.DeliveryFee,
		PaymentMethod: method,
		Notes:         o.Notes,
	}
}

func FromOrder(o *entities.Order) Order {
	items := make([]OrderItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	var method *string
	if o.PaymentMethod != nil {
		m := o.PaymentMethod.String()
		method = &m
	}

	return Order{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		CustomerID:  o.CustomerID,
		StoreID:     o.StoreID,
		CourierID:   o.CourierID,
		Items:       items,
		DeliveryAddress: Address{
			Street:     o.DeliveryAddress.Street,
			City:       o.DeliveryAddress.City,
			PostalCode: o.DeliveryAddress.PostalCode,
			Location:   FromLocation(o.DeliveryAddress.Location),
		},
		DeliveryFee:        o.DeliveryFee,
		Subtotal:           o.Subtotal,
		Total:              o.Total,
		Status:             o.Status.String(),
		PaymentMethod:      method,
		Notes:              o.Notes,
		CancellationReason: o.CancellationReason,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
		ConfirmedAt:        o.ConfirmedAt,
		ActualDeliveryTime: o.ActualDeliveryTime,
		CancelledAt:        o.CancelledAt,
	}
}

func FromPayment(p *entities.Payment) Payment {
	return Payment{
		ID:            p.ID,
		OrderID:       p.OrderID,
		CustomerID:    p.CustomerID,
		StoreID:       p.StoreID,
		Amount:        p.Amount,
		PaymentMethod: p.Method.String(),
		Status:        p.Status.String(),
		TransactionID: p.TransactionID,
		ConfirmedBy:   p.ConfirmedBy,
		ProcessedBy:   p.ProcessedBy,
		FailureReason: p.FailureReason,
		RefundAmount:  p.RefundAmount,
		RefundReason:  p.RefundReason,
		RefundedBy:    p.RefundedBy,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		CompletedAt:   p.CompletedAt,
		RefundedAt:    p.RefundedAt,
	}
}

func (c CourierCreate) ToDomain() entities.NewCourier {
	return entities.NewCourier{
		AccountID:       c.AccountID,
		Name:            c.Name,
		Phone:           c.Phone,
		CurrentLocation: c.Location.ToDomain(),
	}
}

func FromCourier(c *entities.Courier) Courier {
	active := c.ActiveDeliveries
	if active == nil {
		active = []string{}
	}

	return Courier{
		ID:                     c.ID,
		AccountID:              c.AccountID,
		Name:                   c.Name,
		Phone:                  c.Phone,
		Status:                 c.Status.String(),
		CurrentLocation:        FromLocation(c.CurrentLocation),
		VerificationStatus:     c.VerificationStatus.String(),
		IsAvailableForDelivery: c.IsAvailableForDelivery,
		IsSuspended:            c.IsSuspended,
		SuspendedAt:            c.SuspendedAt,
		SuspendedBy:            c.SuspendedBy,
		SuspensionReason:       c.SuspensionReason,
		CommissionRate:         c.CommissionRate,
		ActiveDeliveries:       active,
		TotalDeliveries:        c.TotalDeliveries,
		TotalEarnings:          c.TotalEarnings,
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
	}
}

func FromCourierMatches(matches []entities.CourierMatch) []CourierMatch {
	result := make([]CourierMatch, len(matches))
	for i := range matches {
		result[i] = CourierMatch{
			Courier:    FromCourier(&matches[i].Courier),
			DistanceKm: matches[i].DistanceKm,
		}
	}
	return result
}

func (a CourierAvailability) ToDomain() entities.AvailabilityChange {
	var status *entities.CourierStatus
	if a.Status != nil {
		s := entities.CourierStatus(*a.Status)
		status = &s
	}

	return entities.AvailabilityChange{
		Status:                 status,
		Location:               a.Location.ToDomain(),
		IsAvailableForDelivery: a.IsAvailableForDelivery,
	}
}
