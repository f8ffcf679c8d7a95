package order

import (
	"encoding/json"
	"fmt"

	"marketplace/internal/entities"
)

func ToDomain(o *OrderDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	var itemsDB []OrderItemDB
	if err := json.Unmarshal(o.Items, &itemsDB); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}

	items := make([]entities.OrderItem, len(itemsDB))
	for i, item := range itemsDB {
		items[i] = entities.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	var location *entities.Location
	if o.DeliveryLat != nil && o.DeliveryLon != nil {
		location = &entities.Location{Lat: *o.DeliveryLat, Lon: *o.DeliveryLon}
	}

	var method *entities.PaymentMethod
	if o.PaymentMethod != nil {
		m := entities.PaymentMethod(*o.PaymentMethod)
		method = &m
	}

	return &entities.Order{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		CustomerID:  o.CustomerID,
		StoreID:     o.StoreID,
		CourierID:   o.CourierID,
		Items:       items,
		DeliveryAddress: entities.DeliveryAddress{
			Street:     o.DeliveryStreet,
			City:       o.DeliveryCity,
			PostalCode: o.DeliveryPostalCode,
			Location:   location,
		},
		DeliveryFee:        o.DeliveryFee,
		Subtotal:           o.Subtotal,
		Total:              o.Total,
		Status:             entities.OrderStatus(o.Status),
		PaymentMethod:      method,
		Notes:              o.Notes,
		CancellationReason: o.CancellationReason,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
		ConfirmedAt:        o.ConfirmedAt,
		ActualDeliveryTime: o.ActualDeliveryTime,
		CancelledAt:        o.CancelledAt,
		Version:            o.Version,
	}, nil
}

func FromDomain(o *entities.Order) (*OrderDB, error) {
	itemsDB := make([]OrderItemDB, len(o.Items))
	for i, item := range o.Items {
		itemsDB[i] = OrderItemDB{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	items, err := json.Marshal(itemsDB)
	if err != nil {
		return nil, fmt.Errorf("encode order items: %w", err)
	}

	orderDB := &OrderDB{
		ID:                 o.ID,
		OrderNumber:        o.OrderNumber,
		CustomerID:         o.CustomerID,
		StoreID:            o.StoreID,
		CourierID:          o.CourierID,
		Items:              items,
		DeliveryStreet:     o.DeliveryAddress.Street,
		DeliveryCity:       o.DeliveryAddress.City,
		DeliveryPostalCode: o.DeliveryAddress.PostalCode,
		DeliveryFee:        o.DeliveryFee,
		Subtotal:           o.Subtotal,
		Total:              o.Total,
		Status:             o.Status.String(),
		Notes:              o.Notes,
		CancellationReason: o.CancellationReason,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
		Version:            o.Version,
	}

	if loc := o.DeliveryAddress.Location; loc != nil {
		orderDB.DeliveryLat = &loc.Lat
		orderDB.DeliveryLon = &loc.Lon
	}
	if o.PaymentMethod != nil {
		method := o.PaymentMethod.String()
		orderDB.PaymentMethod = &method
	}

	return orderDB, nil
}
