// Package txtest - фабрика транзакций в памяти для тестов кода поверх trm/manager.
package txtest

import (
	"context"
	"sync"

	"github.com/avito-tech/go-transaction-manager/trm"
	trmcontext "github.com/avito-tech/go-transaction-manager/trm/context"
)

// Factory открывает транзакции-пустышки и считает начатые и завершенные.
type Factory struct {
	mu         sync.Mutex
	begun      int
	committed  int
	rolledBack int
}

func NewFactory() *Factory {
	return &Factory{}
}

// Begin совместим с trm.TrFactory.
func (f *Factory) Begin(ctx context.Context, _ trm.Settings) (context.Context, trm.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.begun++
	return ctx, &Transaction{ID: f.begun, factory: f, closed: make(chan struct{})}, nil
}

func (f *Factory) Begun() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.begun
}

func (f *Factory) Committed() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.committed
}

func (f *Factory) RolledBack() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rolledBack
}

// Transaction реализует trm.Transaction без базы.
type Transaction struct {
	ID int

	factory *Factory
	mu      sync.Mutex
	done    bool
	closed  chan struct{}
}

func (t *Transaction) Transaction() any {
	return t
}

func (t *Transaction) Commit(context.Context) error {
	if t.finish() {
		t.factory.mu.Lock()
		t.factory.committed++
		t.factory.mu.Unlock()
	}
	return nil
}

func (t *Transaction) Rollback(context.Context) error {
	if t.finish() {
		t.factory.mu.Lock()
		t.factory.rolledBack++
		t.factory.mu.Unlock()
	}
	return nil
}

func (t *Transaction) IsActive() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.done
}

func (t *Transaction) Closed() <-chan struct{} {
	return t.closed
}

func (t *Transaction) finish() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	close(t.closed)
	return true
}

// Current возвращает транзакцию из контекста или nil.
func Current(ctx context.Context) *Transaction {
	tr, _ := trmcontext.DefaultManager.Default(ctx).(*Transaction)
	return tr
}
