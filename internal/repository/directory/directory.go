package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/service/notification"
)

// Repository - справочник аккаунтов, только чтение.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) AccountID(ctx context.Context, role entities.RecipientRole, profileID string) (string, error) {
	var query string
	switch role {
	case entities.RecipientCustomer:
		query = `SELECT account_id FROM customer_profiles WHERE id = $1`
	case entities.RecipientStoreOwner:
		// владелец магазина - аккаунт с профилем store_owner
		query = `SELECT a.id
			FROM stores s
			JOIN accounts a ON a.profile_id = s.owner_id AND a.profile_type = 'store_owner'
			WHERE s.id = $1`
	case entities.RecipientCourier:
		query = `SELECT account_id FROM courier_profiles WHERE id = $1`
	default:
		return "", fmt.Errorf("%w: role %q", notification.ErrInvalidRecipient, role)
	}

	var accountID string
	err := r.querier.QueryRow(ctx, query, profileID).Scan(&accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", notification.ErrRecipientNotFound
		}
		return "", fmt.Errorf("unexpected directory repository account id error: %w", err)
	}

	return accountID, nil
}
