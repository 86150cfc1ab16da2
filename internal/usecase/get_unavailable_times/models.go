package get_unavailable_times

import "github.com/astroya/consultation-service/pkg/types"

// Request модель запроса недоступных времен на дату
type Request struct {
	Date string // Дата в формате YYYY-MM-DD
}

// Response модель ответа
type Response struct {
	Date             types.DateString   // Дата, на которую запрашивались времена
	BaseSchedule     []types.TimeString // Базовое дневное расписание (для рендера формы)
	UnavailableTimes []types.TimeString // Времена, недоступные для бронирования
}
