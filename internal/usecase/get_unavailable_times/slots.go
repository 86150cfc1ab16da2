package get_unavailable_times

import (
	"github.com/astroya/consultation-service/internal/domain"
	"github.com/astroya/consultation-service/pkg/types"
)

// computeUnavailableTimes вычисляет недоступные времена даты над базовым
// расписанием. Время недоступно, если выполняется хотя бы одно из условий:
//   - правило даты закрывает весь день
//   - правило даты ограничивает времена списком, и времени в списке нет
//   - время уже забронировано
//
// Правило может отсутствовать (rule == nil) - тогда недоступны только
// забронированные времена. Времена вне базового расписания не рассматриваются:
// занятость определена только над ним, поэтому разрешенные правилом времена
// вне базового расписания эффекта не имеют.
//
// Результат следует порядку базового расписания и не содержит дубликатов.
// Функция чистая: вычисляется на каждый вызов заново, без кэширования -
// таблица правил и журнал меняются между вызовами
func computeUnavailableTimes(
	rule *domain.AvailabilityRule,
	booked []types.TimeString,
) []types.TimeString {
	unavailable := make([]types.TimeString, 0, len(domain.BaseSchedule))

	for _, t := range domain.BaseSchedule {
		switch {
		case rule != nil && rule.IsWholeDayUnavailable():
			unavailable = append(unavailable, t)
		case rule != nil && !rule.Allows(t):
			unavailable = append(unavailable, t)
		case containsTime(booked, t):
			unavailable = append(unavailable, t)
		}
	}

	return unavailable
}

// containsTime проверяет наличие времени в списке
func containsTime(times []types.TimeString, t types.TimeString) bool {
	for _, candidate := range times {
		if candidate == t {
			return true
		}
	}
	return false
}
