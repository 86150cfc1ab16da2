package domain

import "github.com/astroya/consultation-service/pkg/types"

// Consultation заявка на консультацию, привязанная к слоту (дата, время).
// Контактные данные и описание задачи передаются внешним коллабораторам
// (рассылка, календарь) как есть - сервис их только валидирует и логирует
type Consultation struct {
	Date           types.DateString
	Time           types.TimeString
	CompanyName    string
	ClientEmail    string
	CompanyWebsite *string
	MainChallenge  string
	TargetAudience string

	// Интересующие услуги (хотя бы одна должна быть выбрана)
	ServiceLandingPage bool
	ServiceSEO         bool
	ServiceMaintenance bool
}

// HasSelectedService возвращает true, если выбрана хотя бы одна услуга
func (c *Consultation) HasSelectedService() bool {
	return c.ServiceLandingPage || c.ServiceSEO || c.ServiceMaintenance
}

// SelectedServices возвращает список выбранных услуг для логирования и ответов
func (c *Consultation) SelectedServices() []string {
	services := make([]string, 0, 3)
	if c.ServiceLandingPage {
		services = append(services, "landing_page")
	}
	if c.ServiceSEO {
		services = append(services, "seo")
	}
	if c.ServiceMaintenance {
		services = append(services, "maintenance")
	}
	return services
}
