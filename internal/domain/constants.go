package domain

import "github.com/astroya/consultation-service/pkg/types"

// BaseSchedule фиксированное дневное расписание консультаций.
// Единственные времена, которые вообще могут быть забронированы в день без
// переопределяющего правила. Порядок значим и хронологичен
var BaseSchedule = []types.TimeString{
	"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00",
}

// Business validation constants (поля формы консультации)
const (
	MinCompanyNameLength    = 2
	MinMainChallengeLength  = 10
	MaxMainChallengeLength  = 300
	MinTargetAudienceLength = 5
	MaxTargetAudienceLength = 200
)

// InBaseSchedule проверяет, что время входит в базовое расписание
func InBaseSchedule(t types.TimeString) bool {
	for _, base := range BaseSchedule {
		if base == t {
			return true
		}
	}
	return false
}
