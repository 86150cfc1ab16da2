package book_consultation

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/astroya/consultation-service/internal/domain"
	"github.com/astroya/consultation-service/pkg/types"
)

// validateRequest валидирует заявку на консультацию.
// Ограничения полей повторяют правила формы бронирования на сайте
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	if len(strings.TrimSpace(req.CompanyName)) < domain.MinCompanyNameLength {
		return fmt.Errorf("%w: companyName must be at least %d characters",
			ErrInvalidInput, domain.MinCompanyNameLength)
	}

	if _, err := mail.ParseAddress(req.ClientEmail); err != nil {
		return fmt.Errorf("%w: clientEmail is not a valid email address", ErrInvalidInput)
	}

	challenge := len(strings.TrimSpace(req.MainChallenge))
	if challenge < domain.MinMainChallengeLength || challenge > domain.MaxMainChallengeLength {
		return fmt.Errorf("%w: mainChallenge must be %d-%d characters",
			ErrInvalidInput, domain.MinMainChallengeLength, domain.MaxMainChallengeLength)
	}

	audience := len(strings.TrimSpace(req.TargetAudience))
	if audience < domain.MinTargetAudienceLength || audience > domain.MaxTargetAudienceLength {
		return fmt.Errorf("%w: targetAudience must be %d-%d characters",
			ErrInvalidInput, domain.MinTargetAudienceLength, domain.MaxTargetAudienceLength)
	}

	if !req.toDomainConsultation().HasSelectedService() {
		return fmt.Errorf("%w: at least one service must be selected", ErrInvalidInput)
	}

	return nil
}

// toDomainConsultation конвертирует запрос в domain модель
func (r *Request) toDomainConsultation() *domain.Consultation {
	return &domain.Consultation{
		Date:               r.Date,
		Time:               r.Time,
		CompanyName:        r.CompanyName,
		ClientEmail:        r.ClientEmail,
		CompanyWebsite:     r.CompanyWebsite,
		MainChallenge:      r.MainChallenge,
		TargetAudience:     r.TargetAudience,
		ServiceLandingPage: r.ServiceLandingPage,
		ServiceSEO:         r.ServiceSEO,
		ServiceMaintenance: r.ServiceMaintenance,
	}
}

// computeUnavailableTimes вычисляет недоступные времена даты над базовым
// расписанием: весь день закрыт правилом, время вне списка разрешенных,
// либо время уже забронировано
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
