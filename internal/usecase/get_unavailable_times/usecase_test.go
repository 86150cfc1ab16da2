package get_unavailable_times

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astroya/consultation-service/internal/domain"
	ledgerRepo "github.com/astroya/consultation-service/internal/infra/storage/ledger"
	rulesRepo "github.com/astroya/consultation-service/internal/infra/storage/rules"
	"github.com/astroya/consultation-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(t *testing.T) (*UseCase, *rulesRepo.Repository, *ledgerRepo.Repository) {
	t.Helper()
	rules := rulesRepo.NewRepository()
	ledger := ledgerRepo.NewRepository()
	return NewUseCase(rules, ledger, nopLogger{}), rules, ledger
}

func TestExecute_NoRuleNoBookings(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{Date: "2026-03-15"})
	require.NoError(t, err)

	assert.Equal(t, types.DateString("2026-03-15"), resp.Date)
	assert.Equal(t, domain.BaseSchedule, resp.BaseSchedule)
	assert.Empty(t, resp.UnavailableTimes)
}

func TestExecute_WholeDayUnavailable(t *testing.T) {
	uc, rules, _ := newTestUseCase(t)
	ctx := context.Background()

	rules.Upsert(ctx, &domain.AvailabilityRule{
		Date:                "2026-03-15",
		WholeDayUnavailable: true,
	})

	resp, err := uc.Execute(ctx, &Request{Date: "2026-03-15"})
	require.NoError(t, err)
	assert.Equal(t, domain.BaseSchedule, resp.UnavailableTimes)
}

func TestExecute_RestrictedTimes(t *testing.T) {
	uc, rules, _ := newTestUseCase(t)
	ctx := context.Background()

	// Разрешены только 10:00 и 11:00 - остальные времена базового
	// расписания недоступны
	rules.Upsert(ctx, &domain.AvailabilityRule{
		Date:         "2026-03-08",
		AllowedTimes: []types.TimeString{"10:00", "11:00"},
	})

	resp, err := uc.Execute(ctx, &Request{Date: "2026-03-08"})
	require.NoError(t, err)
	assert.Equal(t,
		[]types.TimeString{"09:00", "14:00", "15:00", "16:00", "17:00"},
		resp.UnavailableTimes,
	)
}

func TestExecute_BookedTimesUnavailable(t *testing.T) {
	uc, _, ledger := newTestUseCase(t)
	ctx := context.Background()

	require.NoError(t, ledger.Insert(ctx, "2026-03-15", "14:00"))
	require.NoError(t, ledger.Insert(ctx, "2026-03-15", "09:00"))

	resp, err := uc.Execute(ctx, &Request{Date: "2026-03-15"})
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "14:00"}, resp.UnavailableTimes)
}

func TestExecute_RuleAndBookingsCombined(t *testing.T) {
	uc, rules, ledger := newTestUseCase(t)
	ctx := context.Background()

	rules.Upsert(ctx, &domain.AvailabilityRule{
		Date:         "2026-03-08",
		AllowedTimes: []types.TimeString{"10:00", "11:00"},
	})
	// Одно из разрешенных времен уже забронировано
	require.NoError(t, ledger.Insert(ctx, "2026-03-08", "10:00"))

	resp, err := uc.Execute(ctx, &Request{Date: "2026-03-08"})
	require.NoError(t, err)

	// Недоступно все, кроме 11:00; порядок следует базовому расписанию,
	// без дубликатов
	assert.Equal(t,
		[]types.TimeString{"09:00", "10:00", "14:00", "15:00", "16:00", "17:00"},
		resp.UnavailableTimes,
	)
}

func TestExecute_InvalidDate(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	for _, raw := range []string{"", "2024-13-40", "15-03-2026", "not-a-date"} {
		_, err := uc.Execute(context.Background(), &Request{Date: raw})
		assert.ErrorIs(t, err, ErrInvalidDate, "date %q", raw)
	}
}

func TestExecute_BookedTimeOutsideBaseSchedule(t *testing.T) {
	uc, _, ledger := newTestUseCase(t)
	ctx := context.Background()

	// Времена вне базового расписания занятость не определяют
	require.NoError(t, ledger.Insert(ctx, "2026-03-15", "12:00"))

	resp, err := uc.Execute(ctx, &Request{Date: "2026-03-15"})
	require.NoError(t, err)
	assert.Empty(t, resp.UnavailableTimes)
}
