package memtx

import (
	"context"
	"sync"
)

// TransactionManager сериализует критические секции над in-memory хранилищами.
// Последовательность "вычислить занятость - вставить бронь" является классическим
// check-then-act: без общей блокировки два конкурентных запроса могли бы оба
// пройти проверку до того, как один из них выполнит вставку
type TransactionManager struct {
	mu sync.Mutex
}

// NewTransactionManager создает новый менеджер
func NewTransactionManager() *TransactionManager {
	return &TransactionManager{}
}

// DoSerializable выполняет fn под общей блокировкой.
// Если контекст уже отменен, fn не вызывается
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(ctx)
}
