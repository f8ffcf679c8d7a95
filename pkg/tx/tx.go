package tx

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	trmcontext "github.com/avito-tech/go-transaction-manager/trm/context"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// Manager инкапсулирует логику управления транзакциями.
//
// Do работает на READ COMMITTED: конкурентные изменения одной строки разрешаются
// условием в WHERE (compare-and-swap), проигравший получает 0 затронутых строк.
type Manager struct {
	internal *manager.Manager
	settings pgxv5.Settings
}

// New создаёт новый менеджер транзакций.
func New(db pgxv5.Transactional) *Manager {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: pgx.ReadCommitted}),
	)
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		settings: txSettings,
	}
}

// Do выполняет fn в транзакции READ COMMITTED.
// Вложенный вызов переиспользует внешнюю транзакцию.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.internal.DoWithSettings(ctx, m.settings, fn)
}

// WithoutTx убирает транзакцию из контекста: Do на таком контексте откроет новую,
// а querier пойдет в пул. Нужен, когда работа продолжается в другой горутине
// и может пережить транзакцию вызывающего.
func WithoutTx(ctx context.Context) context.Context {
	return trmcontext.DefaultManager.SetDefault(ctx, nil)
}
