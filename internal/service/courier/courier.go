package courier

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
	"marketplace/internal/events"
)

type MatchingOptions struct {
	RadiusKm float64
	Limit    int
}

type Courier struct {
	repository Repository
	orders     OrderStore
	publisher  EventPublisher
	txManager  TxManager
	retrier    Retrier
	matching   MatchingOptions
	now        func() time.Time
}

func New(
	repository Repository,
	orders OrderStore,
	publisher EventPublisher,
	txManager TxManager,
	retrier Retrier,
	matching MatchingOptions,
) *Courier {
	return &Courier{
		repository: repository,
		orders:     orders,
		publisher:  publisher,
		txManager:  txManager,
		retrier:    retrier,
		matching:   matching,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *Courier) RegisterCourier(ctx context.Context, newCourier entities.NewCourier) (*entities.Courier, error) {
	if err := validateNewCourier(&newCourier); err != nil {
		return nil, err
	}

	now := s.now()
	created, err := s.repository.Create(ctx, entities.Courier{
		ID:                 uuid.NewString(),
		AccountID:          newCourier.AccountID,
		Name:               strings.TrimSpace(newCourier.Name),
		Phone:              strings.TrimSpace(newCourier.Phone),
		Status:             entities.DefaultCourierStatus,
		CurrentLocation:    newCourier.CurrentLocation,
		VerificationStatus: entities.VerificationPending,
		CommissionRate:     entities.DefaultCommissionRate,
		ActiveDeliveries:   []string{},
		CreatedAt:          now,
		UpdatedAt:          now,
		Version:            1,
	})
	if err != nil {
		return nil, fmt.Errorf("create courier: %w", err)
	}

	return created, nil
}

func (s *Courier) GetCourier(ctx context.Context, id string) (*entities.Courier, error) {
	if !isValidID(id) {
		return nil, ErrInvalidCourierID
	}

	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}
	return courier, nil
}

// UpdateAvailability меняет статус, координаты и готовность брать заказы.
// Доступно самому курьеру и администратору.
func (s *Courier) UpdateAvailability(
	ctx context.Context,
	courierID string,
	change entities.AvailabilityChange,
	actor entities.Actor,
) (*entities.Courier, error) {
	if !isValidID(courierID) {
		return nil, ErrInvalidCourierID
	}
	if err := validateActor(actor); err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && (actor.Role != entities.RoleCourier || actor.ID != courierID) {
		return nil, ErrForbidden
	}
	if err := validateAvailabilityChange(&change); err != nil {
		return nil, err
	}

	return s.update(ctx, courierID, func(current *entities.Courier) (entities.CourierUpdate, error) {
		return entities.CourierUpdate{
			Status:                 change.Status,
			Location:               change.Location,
			IsAvailableForDelivery: change.IsAvailableForDelivery,
		}, nil
	})
}

func (s *Courier) SetVerificationStatus(
	ctx context.Context,
	courierID string,
	status entities.VerificationStatus,
	actor entities.Actor,
) (*entities.Courier, error) {
	if err := s.checkAdminAction(courierID, actor); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, ErrInvalidVerificationStatus
	}

	return s.update(ctx, courierID, func(current *entities.Courier) (entities.CourierUpdate, error) {
		return entities.CourierUpdate{VerificationStatus: &status}, nil
	})
}

func (s *Courier) UpdateCommissionRate(
	ctx context.Context,
	courierID string,
	rate decimal.Decimal,
	actor entities.Actor,
) (*entities.Courier, error) {
	if err := s.checkAdminAction(courierID, actor); err != nil {
		return nil, err
	}
	if !isValidCommissionRate(rate) {
		return nil, ErrInvalidCommissionRate
	}

	return s.update(ctx, courierID, func(current *entities.Courier) (entities.CourierUpdate, error) {
		return entities.CourierUpdate{CommissionRate: &rate}, nil
	})
}

func (s *Courier) SuspendCourier(
	ctx context.Context,
	courierID string,
	actor entities.Actor,
	reason string,
) (*entities.Courier, error) {
	if err := s.checkAdminAction(courierID, actor); err != nil {
		return nil, err
	}

	reason = strings.TrimSpace(reason)
	return s.update(ctx, courierID, func(current *entities.Courier) (entities.CourierUpdate, error) {
		if current.IsSuspended {
			return entities.CourierUpdate{}, ErrAlreadySuspended
		}

		at := s.now()
		return entities.CourierUpdate{
			Suspension: &entities.Suspension{
				Suspended: true,
				At:        &at,
				By:        &actor.ID,
				Reason:    &reason,
			},
		}, nil
	}, events.CourierSuspended{CourierID: courierID, SuspendedBy: actor.ID, Reason: reason})
}

func (s *Courier) UnsuspendCourier(ctx context.Context, courierID string, actor entities.Actor) (*entities.Courier, error) {
	if err := s.checkAdminAction(courierID, actor); err != nil {
		return nil, err
	}

	return s.update(ctx, courierID, func(current *entities.Courier) (entities.CourierUpdate, error) {
		if !current.IsSuspended {
			return entities.CourierUpdate{}, ErrNotSuspended
		}
		return entities.CourierUpdate{Suspension: &entities.Suspension{Suspended: false}}, nil
	}, events.CourierUnsuspended{CourierID: courierID, UnsuspendedBy: actor.ID})
}

// FindAvailableCouriersForOrder подбирает кандидатов для заказа. Если у адреса есть координаты,
// курьеры ищутся в радиусе и сортируются по расстоянию, иначе - по числу активных доставок.
func (s *Courier) FindAvailableCouriersForOrder(ctx context.Context, orderID string) ([]entities.CourierMatch, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	destination := order.DeliveryAddress.Location
	if destination == nil {
		couriers, err := s.repository.FindAvailable(ctx, entities.CourierSearch{Limit: s.matching.Limit})
		if err != nil {
			return nil, fmt.Errorf("find available couriers: %w", err)
		}

		matches := make([]entities.CourierMatch, len(couriers))
		for i, c := range couriers {
			matches[i] = entities.CourierMatch{Courier: c}
		}
		return matches, nil
	}

	bound := destination.BoundAround(s.matching.RadiusKm)
	couriers, err := s.repository.FindAvailable(ctx, entities.CourierSearch{Bound: &bound})
	if err != nil {
		return nil, fmt.Errorf("find available couriers: %w", err)
	}

	// прямоугольник шире круга, точное расстояние пересчитывается здесь
	matches := make([]entities.CourierMatch, 0, len(couriers))
	for _, c := range couriers {
		if c.CurrentLocation == nil {
			continue
		}
		distance := destination.DistanceKm(*c.CurrentLocation)
		if distance > s.matching.RadiusKm {
			continue
		}
		matches = append(matches, entities.CourierMatch{Courier: c, DistanceKm: &distance})
	}

	slices.SortStableFunc(matches, func(a, b entities.CourierMatch) int {
		return cmp.Or(
			cmp.Compare(*a.DistanceKm, *b.DistanceKm),
			cmp.Compare(a.Courier.ID, b.Courier.ID),
		)
	})

	if s.matching.Limit > 0 && len(matches) > s.matching.Limit {
		matches = matches[:s.matching.Limit]
	}
	return matches, nil
}

// AssignOrderToCourier закрепляет готовый заказ за курьером. Из двух параллельных назначений
// одного заказа выигрывает только одно.
func (s *Courier) AssignOrderToCourier(
	ctx context.Context,
	orderID, courierID string,
	actor entities.Actor,
) (*entities.Order, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidID(courierID) {
		return nil, ErrInvalidCourierID
	}
	if err := validateActor(actor); err != nil {
		return nil, err
	}

	// курьер мог обновить геопозицию между чтением и записью: версия строки
	// разойдется, и вся транзакция повторяется. Заказ при повторе уже занят
	// победителем, так что второй курьер получит ErrOrderAlreadyAssigned.
	var assigned *entities.Order
	err := s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			order, err := s.orders.GetOrder(ctx, orderID)
			if err != nil {
				return fmt.Errorf("get order: %w", err)
			}

			if !actor.IsAdmin() && (actor.Role != entities.RoleStore || actor.ID != order.StoreID) {
				return ErrForbidden
			}
			if order.Status != entities.OrderReady {
				return fmt.Errorf("%w: status is %s", ErrOrderNotReady, order.Status)
			}
			if order.CourierID != nil {
				return ErrOrderAlreadyAssigned
			}

			courier, err := s.repository.GetByID(ctx, courierID)
			if err != nil {
				return fmt.Errorf("get courier: %w", err)
			}
			if courier.VerificationStatus != entities.VerificationApproved {
				return ErrCourierNotApproved
			}
			if courier.IsSuspended {
				return ErrCourierSuspended
			}

			assigned, err = s.orders.AttachCourier(ctx, orderID, courierID)
			if err != nil {
				return fmt.Errorf("attach courier to order: %w", err)
			}

			busy := entities.CourierBusy
			active := append(slices.Clone(courier.ActiveDeliveries), orderID)
			_, err = s.repository.Update(ctx, entities.CourierUpdate{
				ID:               courier.ID,
				Version:          courier.Version,
				Status:           &busy,
				ActiveDeliveries: active,
			})
			if err != nil {
				return fmt.Errorf("mark courier busy: %w", err)
			}

			err = s.publisher.Publish(ctx, events.OrderAssignedToCourier{
				OrderID:    orderID,
				CourierID:  courierID,
				AssignedBy: actor.ID,
			})
			if err != nil {
				return fmt.Errorf("publish order assigned: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return assigned, nil
}

// ReleaseOrder убирает заказ из активных доставок курьера. Повторный вызов ничего не меняет.
// Когда активных доставок не осталось, занятый курьер снова становится доступным.
func (s *Courier) ReleaseOrder(ctx context.Context, courierID, orderID string) error {
	if !isValidID(courierID) {
		return ErrInvalidCourierID
	}
	if !isValidID(orderID) {
		return ErrInvalidOrderID
	}

	return s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			courier, err := s.repository.GetByID(ctx, courierID)
			if err != nil {
				return fmt.Errorf("get courier: %w", err)
			}

			if !courier.HasActiveDelivery(orderID) {
				return nil
			}

			remaining := slices.DeleteFunc(slices.Clone(courier.ActiveDeliveries), func(id string) bool {
				return id == orderID
			})

			update := entities.CourierUpdate{
				ID:               courier.ID,
				Version:          courier.Version,
				ActiveDeliveries: remaining,
			}
			if len(remaining) == 0 && courier.Status == entities.CourierBusy {
				available := entities.CourierAvailable
				update.Status = &available
			}

			_, err = s.repository.Update(ctx, update)
			if err != nil {
				return fmt.Errorf("release order: %w", err)
			}
			return nil
		})
	})
}

// RecomputeStatistics пересчитывает число доставок и заработок всех курьеров.
func (s *Courier) RecomputeStatistics(ctx context.Context) (int64, error) {
	updated, err := s.repository.RecomputeStatistics(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("recompute courier statistics: %w", err)
	}
	return updated, nil
}

func (s *Courier) checkAdminAction(courierID string, actor entities.Actor) error {
	if !isValidID(courierID) {
		return ErrInvalidCourierID
	}
	if err := validateActor(actor); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// update читает профиль, строит изменение и применяет его условным обновлением по версии.
func (s *Courier) update(
	ctx context.Context,
	courierID string,
	build func(current *entities.Courier) (entities.CourierUpdate, error),
	evs ...events.Event,
) (*entities.Courier, error) {
	var updated *entities.Courier
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, courierID)
		if err != nil {
			return fmt.Errorf("get courier: %w", err)
		}

		update, err := build(current)
		if err != nil {
			return err
		}
		update.ID = current.ID
		update.Version = current.Version

		updated, err = s.repository.Update(ctx, update)
		if err != nil {
			return fmt.Errorf("update courier: %w", err)
		}

		if len(evs) > 0 {
			if err := s.publisher.Publish(ctx, evs...); err != nil {
				return fmt.Errorf("publish courier events: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
