package order

import "marketplace/internal/entities"

// authorize проверяет, может ли актор перевести заказ в target.
// Допустимость самого перехода проверяется отдельно.
func authorize(actor entities.Actor, current *entities.Order, target entities.OrderStatus) error {
	switch actor.Role {
	case entities.RoleAdmin:
		return nil

	case entities.RoleCustomer:
		if actor.ID != current.CustomerID {
			return ErrForbidden
		}
		// покупатель может только отменить, и только пока магазин не начал готовить
		if target != entities.OrderCancelled ||
			(current.Status != entities.OrderPending && current.Status != entities.OrderConfirmed) {
			return ErrForbidden
		}
		return nil

	case entities.RoleStore:
		if actor.ID != current.StoreID {
			return ErrForbidden
		}
		switch target {
		case entities.OrderConfirmed, entities.OrderPreparing, entities.OrderReady:
			return nil
		case entities.OrderCancelled:
			if current.Status.IsBefore(entities.OrderPickedUp) {
				return nil
			}
			return ErrForbidden
		case entities.OrderPending, entities.OrderPickedUp, entities.OrderDelivering, entities.OrderDelivered:
			return ErrForbidden
		}
		return ErrForbidden

	case entities.RoleCourier:
		if current.CourierID == nil || actor.ID != *current.CourierID {
			return ErrForbidden
		}
		switch target {
		case entities.OrderPickedUp, entities.OrderDelivering, entities.OrderDelivered:
			return nil
		case entities.OrderPending, entities.OrderConfirmed, entities.OrderPreparing,
			entities.OrderReady, entities.OrderCancelled:
			return ErrForbidden
		}
		return ErrForbidden
	}

	return ErrInvalidActor
}
