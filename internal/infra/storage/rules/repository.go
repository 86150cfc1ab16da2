package rules

import (
	"context"
	"sync"

	"github.com/astroya/consultation-service/internal/domain"
	"github.com/astroya/consultation-service/pkg/types"
)

// Repository in-memory таблица правил доступности по датам.
// Состояние живет только в памяти процесса: потеря правил при рестарте -
// осознанное ограничение прототипа, а не дефект. Все операции работают
// с копиями, чтобы вызывающий код не мог изменить внутреннее состояние
type Repository struct {
	mu    sync.RWMutex
	rules domain.RuleTable
}

// NewRepository создает пустой репозиторий правил
func NewRepository() *Repository {
	return &Repository{
		rules: make(domain.RuleTable),
	}
}

// Get возвращает правило для даты или ErrRuleNotFound
func (r *Repository) Get(_ context.Context, date types.DateString) (*domain.AvailabilityRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rule, ok := r.rules[date]
	if !ok {
		return nil, ErrRuleNotFound
	}
	return rule.Clone(), nil
}

// Upsert создает или заменяет правило для даты (идемпотентно)
func (r *Repository) Upsert(_ context.Context, rule *domain.AvailabilityRule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules[rule.Date] = rule.Clone()
}

// Delete удаляет правило для даты, ErrRuleNotFound если его не было
func (r *Repository) Delete(_ context.Context, date types.DateString) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rules[date]; !ok {
		return ErrRuleNotFound
	}
	delete(r.rules, date)
	return nil
}

// List возвращает снимок всей таблицы правил
func (r *Repository) List(_ context.Context) domain.RuleTable {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.rules.Clone()
}

// ReplaceAll заменяет всю таблицу правил копией table
func (r *Repository) ReplaceAll(_ context.Context, table domain.RuleTable) {
	cloned := table.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = cloned
}

// Count возвращает текущее количество правил (для метрик)
func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.rules)
}
