package availability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astroya/consultation-service/internal/domain"
	rulesRepo "github.com/astroya/consultation-service/internal/infra/storage/rules"
	"github.com/astroya/consultation-service/internal/service/availability/models"
	"github.com/astroya/consultation-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubSeedLoader struct {
	table domain.RuleTable
	err   error
}

func (s *stubSeedLoader) Load() (domain.RuleTable, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.table.Clone(), nil
}

func seedTable() domain.RuleTable {
	return domain.RuleTable{
		"2026-01-01": {Date: "2026-01-01", WholeDayUnavailable: true},
		"2026-03-08": {Date: "2026-03-08", AllowedTimes: []types.TimeString{"10:00", "11:00"}},
	}
}

func newTestService(t *testing.T, loader SeedLoader) (*Service, *rulesRepo.Repository) {
	t.Helper()
	repo := rulesRepo.NewRepository()
	return NewService(repo, loader, nopLogger{}), repo
}

func TestService_SetRule(t *testing.T) {
	svc, repo := newTestService(t, &stubSeedLoader{})
	ctx := context.Background()

	t.Run("whole day rule", func(t *testing.T) {
		result, err := svc.SetRule(ctx, &models.SetRuleRequest{
			Date:        "2026-05-01",
			Unavailable: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "2026-05-01", result.Date)

		rule, err := repo.Get(ctx, "2026-05-01")
		require.NoError(t, err)
		assert.True(t, rule.WholeDayUnavailable)
	})

	t.Run("restricted times rule", func(t *testing.T) {
		_, err := svc.SetRule(ctx, &models.SetRuleRequest{
			Date:  "2026-05-02",
			Times: []string{"09:00", "14:00"},
		})
		require.NoError(t, err)

		rule, err := repo.Get(ctx, "2026-05-02")
		require.NoError(t, err)
		assert.False(t, rule.WholeDayUnavailable)
		assert.Equal(t, []types.TimeString{"09:00", "14:00"}, rule.AllowedTimes)
	})

	t.Run("upsert replaces rule", func(t *testing.T) {
		_, err := svc.SetRule(ctx, &models.SetRuleRequest{
			Date:        "2026-05-02",
			Unavailable: true,
		})
		require.NoError(t, err)

		rule, err := repo.Get(ctx, "2026-05-02")
		require.NoError(t, err)
		assert.True(t, rule.WholeDayUnavailable)
		assert.Empty(t, rule.AllowedTimes)
	})

	t.Run("invalid date rejected", func(t *testing.T) {
		_, err := svc.SetRule(ctx, &models.SetRuleRequest{
			Date:        "2024-13-40",
			Unavailable: true,
		})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("empty rule rejected", func(t *testing.T) {
		_, err := svc.SetRule(ctx, &models.SetRuleRequest{
			Date: "2026-05-03",
		})
		assert.ErrorIs(t, err, ErrEmptyRule)

		_, getErr := repo.Get(ctx, "2026-05-03")
		assert.ErrorIs(t, getErr, rulesRepo.ErrRuleNotFound)
	})

	t.Run("invalid time rejected without mutation", func(t *testing.T) {
		_, err := svc.SetRule(ctx, &models.SetRuleRequest{
			Date:  "2026-05-04",
			Times: []string{"10:00", "25:00"},
		})
		assert.ErrorIs(t, err, ErrInvalidTime)

		_, getErr := repo.Get(ctx, "2026-05-04")
		assert.ErrorIs(t, getErr, rulesRepo.ErrRuleNotFound)
	})
}

func TestService_GetRule(t *testing.T) {
	svc, _ := newTestService(t, &stubSeedLoader{table: seedTable()})
	ctx := context.Background()
	svc.ResetToSeed(ctx)

	t.Run("existing rule", func(t *testing.T) {
		rule, err := svc.GetRule(ctx, "2026-03-08")
		require.NoError(t, err)
		assert.Equal(t, "2026-03-08", rule.Date)
		assert.False(t, rule.Unavailable)
		assert.Equal(t, []string{"10:00", "11:00"}, rule.Times)
	})

	t.Run("whole day rule omits times", func(t *testing.T) {
		rule, err := svc.GetRule(ctx, "2026-01-01")
		require.NoError(t, err)
		assert.True(t, rule.Unavailable)
		assert.Empty(t, rule.Times)
	})

	t.Run("missing rule", func(t *testing.T) {
		_, err := svc.GetRule(ctx, "2026-07-07")
		assert.ErrorIs(t, err, ErrRuleNotFound)
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := svc.GetRule(ctx, "07.07.2026")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestService_ListRules_SortedByDate(t *testing.T) {
	svc, _ := newTestService(t, &stubSeedLoader{table: seedTable()})
	ctx := context.Background()
	svc.ResetToSeed(ctx)

	_, err := svc.SetRule(ctx, &models.SetRuleRequest{Date: "2026-02-02", Unavailable: true})
	require.NoError(t, err)

	list := svc.ListRules(ctx)
	require.Len(t, list.Rules, 3)
	assert.Equal(t, "2026-01-01", list.Rules[0].Date)
	assert.Equal(t, "2026-02-02", list.Rules[1].Date)
	assert.Equal(t, "2026-03-08", list.Rules[2].Date)
}

func TestService_DeleteRule(t *testing.T) {
	svc, _ := newTestService(t, &stubSeedLoader{table: seedTable()})
	ctx := context.Background()
	svc.ResetToSeed(ctx)

	t.Run("existing rule", func(t *testing.T) {
		_, err := svc.DeleteRule(ctx, "2026-01-01")
		require.NoError(t, err)

		_, err = svc.GetRule(ctx, "2026-01-01")
		assert.ErrorIs(t, err, ErrRuleNotFound)
	})

	t.Run("missing rule", func(t *testing.T) {
		_, err := svc.DeleteRule(ctx, "2026-01-01")
		assert.ErrorIs(t, err, ErrRuleNotFound)
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := svc.DeleteRule(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestService_ResetToSeed(t *testing.T) {
	t.Run("discards admin mutations", func(t *testing.T) {
		svc, repo := newTestService(t, &stubSeedLoader{table: seedTable()})
		ctx := context.Background()
		svc.ResetToSeed(ctx)

		_, err := svc.SetRule(ctx, &models.SetRuleRequest{Date: "2026-09-09", Unavailable: true})
		require.NoError(t, err)
		_, err = svc.DeleteRule(ctx, "2026-01-01")
		require.NoError(t, err)

		svc.ResetToSeed(ctx)

		assert.Equal(t, 2, repo.Count())
		_, err = svc.GetRule(ctx, "2026-01-01")
		assert.NoError(t, err)
		_, err = svc.GetRule(ctx, "2026-09-09")
		assert.ErrorIs(t, err, ErrRuleNotFound)
	})

	t.Run("reset is idempotent", func(t *testing.T) {
		svc, repo := newTestService(t, &stubSeedLoader{table: seedTable()})
		ctx := context.Background()

		svc.ResetToSeed(ctx)
		first := repo.List(ctx)

		svc.ResetToSeed(ctx)
		second := repo.List(ctx)

		assert.Equal(t, first, second)
	})

	t.Run("broken seed falls back to empty table", func(t *testing.T) {
		svc, repo := newTestService(t, &stubSeedLoader{err: errors.New("file is corrupted")})
		ctx := context.Background()

		svc.ResetToSeed(ctx)

		assert.Equal(t, 0, repo.Count())
	})
}
