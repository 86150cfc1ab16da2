package get_unavailable_times

import (
	"context"
	"errors"
	"fmt"

	"github.com/astroya/consultation-service/internal/domain"
	rulesRepo "github.com/astroya/consultation-service/internal/infra/storage/rules"
	"github.com/astroya/consultation-service/pkg/types"
)

// UseCase use case вычисления недоступных времен на дату
type UseCase struct {
	ruleRepo   RuleRepository
	ledgerRepo LedgerRepository
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	ruleRepo RuleRepository,
	ledgerRepo LedgerRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		ruleRepo:   ruleRepo,
		ledgerRepo: ledgerRepo,
		logger:     logger,
	}
}

// Execute выполняет use case получения недоступных времен
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация даты
	date, err := types.NewDateStringFromString(req.Date)
	if err != nil {
		uc.logger.Warn("GetUnavailableTimes: invalid date %q", req.Date)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	// 2. Получаем правило даты (может отсутствовать)
	rule, err := uc.ruleRepo.Get(ctx, date)
	if err != nil && !errors.Is(err, rulesRepo.ErrRuleNotFound) {
		uc.logger.Error("GetUnavailableTimes: failed to get rule for %s: %v", date, err)
		return nil, fmt.Errorf("%w: failed to get rule: %v", ErrInternal, err)
	}

	// 3. Получаем забронированные времена даты (может быть пусто)
	booked := uc.ledgerRepo.GetTimes(ctx, date)

	// 4. Сливаем правило и журнал над базовым расписанием
	unavailable := computeUnavailableTimes(rule, booked)

	uc.logger.Info("GetUnavailableTimes: date=%s, rule=%t, booked=%d, unavailable=%d",
		date, rule != nil, len(booked), len(unavailable))

	return &Response{
		Date:             date,
		BaseSchedule:     domain.BaseSchedule,
		UnavailableTimes: unavailable,
	}, nil
}
