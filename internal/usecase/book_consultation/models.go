package book_consultation

import "github.com/astroya/consultation-service/pkg/types"

// Request модель заявки на консультацию
type Request struct {
	Date types.DateString // Дата слота
	Time types.TimeString // Время слота (например, "10:00")

	CompanyName    string  // Название компании клиента
	ClientEmail    string  // Email для связи
	CompanyWebsite *string // Сайт компании (опционально)
	MainChallenge  string  // Основная задача или проблема
	TargetAudience string  // Целевая аудитория

	// Интересующие услуги (хотя бы одна должна быть выбрана)
	ServiceLandingPage bool
	ServiceSEO         bool
	ServiceMaintenance bool
}

// Response модель подтверждения бронирования
type Response struct {
	Date             types.DateString
	Time             types.TimeString
	CompanyName      string
	ClientEmail      string
	SelectedServices []string
}
