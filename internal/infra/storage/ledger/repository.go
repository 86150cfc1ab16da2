package ledger

import (
	"context"
	"sort"
	"sync"

	"github.com/astroya/consultation-service/pkg/types"
)

// Repository in-memory журнал забронированных слотов: дата -> времена.
// Журнал стартует пустым, растет только через успешные бронирования и
// обнуляется целиком. Список времен каждой даты поддерживается
// отсортированным после каждой вставки: для строк HH:MM лексикографический
// порядок совпадает с хронологическим
type Repository struct {
	mu     sync.RWMutex
	booked map[types.DateString][]types.TimeString
}

// NewRepository создает пустой журнал бронирований
func NewRepository() *Repository {
	return &Repository{
		booked: make(map[types.DateString][]types.TimeString),
	}
}

// GetTimes возвращает отсортированную копию забронированных времен даты.
// Для даты без бронирований возвращается пустой срез
func (r *Repository) GetTimes(_ context.Context, date types.DateString) []types.TimeString {
	r.mu.RLock()
	defer r.mu.RUnlock()

	times := r.booked[date]
	result := make([]types.TimeString, len(times))
	copy(result, times)
	return result
}

// Contains возвращает true, если слот (date, time) уже забронирован
func (r *Repository) Contains(_ context.Context, date types.DateString, t types.TimeString) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return contains(r.booked[date], t)
}

// Insert записывает бронирование слота (date, time).
// Если слот уже занят, возвращает ErrAlreadyBooked без мутации -
// прямая проверка здесь гарантирует, что двойная вставка невозможна,
// даже если вызывающий код разойдется с вычислением занятости
func (r *Repository) Insert(_ context.Context, date types.DateString, t types.TimeString) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	times := r.booked[date]
	if contains(times, t) {
		return ErrAlreadyBooked
	}

	times = append(times, t)
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })
	r.booked[date] = times
	return nil
}

// Reset очищает журнал целиком. Таблицу правил не затрагивает
func (r *Repository) Reset(_ context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.booked = make(map[types.DateString][]types.TimeString)
}

// Stats возвращает количество дат с бронированиями и общее число слотов (для метрик)
func (r *Repository) Stats() (dates int, slots int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, times := range r.booked {
		if len(times) > 0 {
			dates++
			slots += len(times)
		}
	}
	return dates, slots
}

func contains(times []types.TimeString, t types.TimeString) bool {
	for _, booked := range times {
		if booked == t {
			return true
		}
	}
	return false
}
