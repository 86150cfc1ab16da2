package set_availability_rule

import "github.com/astroya/consultation-service/internal/service/availability/models"

// SetAvailabilityRuleRequest модель HTTP запроса на установку правила.
// Дата приходит в пути, тело описывает само правило: либо весь день
// закрыт, либо явный список разрешенных времен
type SetAvailabilityRuleRequest struct {
	Unavailable bool     `json:"unavailable"`
	Times       []string `json:"times,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SetAvailabilityRuleRequest) ToServiceRequest(date string) *models.SetRuleRequest {
	return &models.SetRuleRequest{
		Date:        date,
		Unavailable: r.Unavailable,
		Times:       r.Times,
	}
}
