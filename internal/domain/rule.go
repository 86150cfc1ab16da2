package domain

import "github.com/astroya/consultation-service/pkg/types"

// AvailabilityRule переопределяющее правило доступности для одной даты.
// Два варианта:
//   - WholeDayUnavailable = true: на эту дату нельзя забронировать ничего
//   - WholeDayUnavailable = false: бронировать можно только времена из
//     AllowedTimes (остальные времена базового расписания закрыты правилом)
//
// Отсутствие правила для даты означает отсутствие ограничений сверх уже
// сделанных бронирований
type AvailabilityRule struct {
	Date                types.DateString
	WholeDayUnavailable bool
	AllowedTimes        []types.TimeString
}

// IsWholeDayUnavailable возвращает true для правила "весь день закрыт"
func (r *AvailabilityRule) IsWholeDayUnavailable() bool {
	return r.WholeDayUnavailable
}

// IsRestricted возвращает true для правила с явным списком разрешенных времен
func (r *AvailabilityRule) IsRestricted() bool {
	return !r.WholeDayUnavailable
}

// Allows возвращает true, если правило разрешает бронирование времени t.
// Времена вне базового расписания правило не легализует - занятость
// вычисляется только над базовым расписанием
func (r *AvailabilityRule) Allows(t types.TimeString) bool {
	if r.WholeDayUnavailable {
		return false
	}
	for _, allowed := range r.AllowedTimes {
		if allowed == t {
			return true
		}
	}
	return false
}

// Clone возвращает глубокую копию правила
func (r *AvailabilityRule) Clone() *AvailabilityRule {
	if r == nil {
		return nil
	}
	clone := &AvailabilityRule{
		Date:                r.Date,
		WholeDayUnavailable: r.WholeDayUnavailable,
	}
	if r.AllowedTimes != nil {
		clone.AllowedTimes = make([]types.TimeString, len(r.AllowedTimes))
		copy(clone.AllowedTimes, r.AllowedTimes)
	}
	return clone
}

// RuleTable таблица правил доступности по датам
type RuleTable map[types.DateString]*AvailabilityRule

// Clone возвращает глубокую копию таблицы
func (t RuleTable) Clone() RuleTable {
	clone := make(RuleTable, len(t))
	for date, rule := range t {
		clone[date] = rule.Clone()
	}
	return clone
}
