package book_consultation

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astroya/consultation-service/internal/domain"
	ledgerRepo "github.com/astroya/consultation-service/internal/infra/storage/ledger"
	rulesRepo "github.com/astroya/consultation-service/internal/infra/storage/rules"
	"github.com/astroya/consultation-service/pkg/memtx"
	"github.com/astroya/consultation-service/pkg/ptr"
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
	uc := NewUseCase(rules, ledger, memtx.NewTransactionManager(), nopLogger{})
	return uc, rules, ledger
}

func validRequest() *Request {
	return &Request{
		Date:               "2026-03-15",
		Time:               "10:00",
		CompanyName:        "Horizon Labs",
		ClientEmail:        "founder@horizonlabs.io",
		MainChallenge:      "Нужен лендинг, который конвертирует трафик из рекламы",
		TargetAudience:     "Основатели стартапов ранних стадий",
		ServiceLandingPage: true,
	}
}

func TestExecute_Success(t *testing.T) {
	uc, _, ledger := newTestUseCase(t)
	ctx := context.Background()

	resp, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	assert.Equal(t, types.DateString("2026-03-15"), resp.Date)
	assert.Equal(t, types.TimeString("10:00"), resp.Time)
	assert.Equal(t, "Horizon Labs", resp.CompanyName)
	assert.Equal(t, []string{"landing_page"}, resp.SelectedServices)

	assert.True(t, ledger.Contains(ctx, "2026-03-15", "10:00"))
}

func TestExecute_SlotAlreadyBooked(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	// Повторная заявка на тот же слот отклоняется
	_, err = uc.Execute(ctx, validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_SlotClosedByRule(t *testing.T) {
	uc, rules, _ := newTestUseCase(t)
	ctx := context.Background()

	t.Run("whole day unavailable", func(t *testing.T) {
		rules.Upsert(ctx, &domain.AvailabilityRule{
			Date:                "2026-03-15",
			WholeDayUnavailable: true,
		})

		_, err := uc.Execute(ctx, validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("time outside allowed list", func(t *testing.T) {
		rules.Upsert(ctx, &domain.AvailabilityRule{
			Date:         "2026-03-15",
			AllowedTimes: []types.TimeString{"14:00"},
		})

		_, err := uc.Execute(ctx, validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("time in allowed list", func(t *testing.T) {
		req := validRequest()
		req.Time = "14:00"

		_, err := uc.Execute(ctx, req)
		assert.NoError(t, err)
	})
}

func TestExecute_TimeNotInSchedule(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	// 12:00 - валидное время, но базовое расписание его не содержит
	req := validRequest()
	req.Time = "12:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTimeNotInSchedule)
}

func TestExecute_Validation(t *testing.T) {
	uc, _, ledger := newTestUseCase(t)
	ctx := context.Background()

	mutate := map[string]struct {
		change func(*Request)
		want   error
	}{
		"empty date":          {func(r *Request) { r.Date = "" }, ErrInvalidInput},
		"malformed date":      {func(r *Request) { r.Date = "2024-13-40" }, ErrInvalidDate},
		"empty time":          {func(r *Request) { r.Time = "" }, ErrInvalidInput},
		"malformed time":      {func(r *Request) { r.Time = "25:00" }, ErrInvalidTime},
		"short company name":  {func(r *Request) { r.CompanyName = "A" }, ErrInvalidInput},
		"invalid email":       {func(r *Request) { r.ClientEmail = "not-an-email" }, ErrInvalidInput},
		"short challenge":     {func(r *Request) { r.MainChallenge = "коротко" }, ErrInvalidInput},
		"short audience":      {func(r *Request) { r.TargetAudience = "все" }, ErrInvalidInput},
		"no services":         {func(r *Request) { r.ServiceLandingPage = false }, ErrInvalidInput},
		"whitespace company":  {func(r *Request) { r.CompanyName = "  A  " }, ErrInvalidInput},
	}

	for name, tc := range mutate {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			tc.change(req)

			_, err := uc.Execute(ctx, req)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	// Ни одна отклоненная заявка не должна была попасть в журнал
	dates, slots := ledger.Stats()
	assert.Equal(t, 0, dates)
	assert.Equal(t, 0, slots)
}

func TestExecute_OptionalWebsite(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	req := validRequest()
	req.CompanyWebsite = ptr.Ptr("https://horizonlabs.io")

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_ConcurrentSameSlot(t *testing.T) {
	uc, _, ledger := newTestUseCase(t)
	ctx := context.Background()

	const attempts = 16

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(ctx, validRequest())
		}(i)
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		default:
			require.ErrorIs(t, err, ErrSlotNotAvailable)
			conflicted++
		}
	}

	// Ровно одна заявка выигрывает слот, остальные получают конфликт
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicted)

	times := ledger.GetTimes(ctx, "2026-03-15")
	assert.Equal(t, []types.TimeString{"10:00"}, times)
}
