package book_consultation

import (
	"context"
	"errors"
	"fmt"

	"github.com/astroya/consultation-service/internal/domain"
	ledgerRepo "github.com/astroya/consultation-service/internal/infra/storage/ledger"
	rulesRepo "github.com/astroya/consultation-service/internal/infra/storage/rules"
)

// UseCase use case бронирования слота под консультацию
type UseCase struct {
	ruleRepo   RuleRepository
	ledgerRepo LedgerRepository
	txManager  TransactionManager
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	ruleRepo RuleRepository,
	ledgerRepo LedgerRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		ruleRepo:   ruleRepo,
		ledgerRepo: ledgerRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute выполняет попытку бронирования.
// Последовательность "вычислить занятость - вставить" выполняется под
// сериализующей блокировкой: без нее два конкурентных запроса на один слот
// могли бы оба пройти проверку до того, как один из них выполнит вставку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookConsultation: company=%q, date=%s, time=%s",
		req.CompanyName, req.Date, req.Time)

	// 1. Валидация заявки
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookConsultation: validation failed: %v", err)
		return nil, err
	}

	// 2. Бронировать можно только времена базового расписания
	if !domain.InBaseSchedule(req.Time) {
		uc.logger.Warn("BookConsultation: time %s is not in the base schedule", req.Time)
		return nil, ErrTimeNotInSchedule
	}

	// 3. Проверка занятости и вставка под общей блокировкой
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем правило даты (может отсутствовать)
		rule, err := uc.ruleRepo.Get(txCtx, req.Date)
		if err != nil && !errors.Is(err, rulesRepo.ErrRuleNotFound) {
			uc.logger.Error("BookConsultation: failed to get rule for %s: %v", req.Date, err)
			return fmt.Errorf("%w: failed to get rule: %v", ErrInternal, err)
		}

		// 3.2. Получаем забронированные времена даты
		booked := uc.ledgerRepo.GetTimes(txCtx, req.Date)

		// 3.3. Слот должен быть доступен на момент попытки
		unavailable := computeUnavailableTimes(rule, booked)
		if containsTime(unavailable, req.Time) {
			uc.logger.Warn("BookConsultation: slot %s %s is not available", req.Date, req.Time)
			return ErrSlotNotAvailable
		}

		// 3.4. Страховочная прямая проверка журнала непосредственно перед
		// вставкой: если вычисление занятости когда-нибудь разойдется с
		// журналом, двойная вставка все равно не произойдет
		if uc.ledgerRepo.Contains(txCtx, req.Date, req.Time) {
			uc.logger.Error("BookConsultation: ledger has %s %s but unavailability computation missed it",
				req.Date, req.Time)
			return ErrSlotNotAvailable
		}

		// 3.5. Записываем бронирование
		if err := uc.ledgerRepo.Insert(txCtx, req.Date, req.Time); err != nil {
			if errors.Is(err, ledgerRepo.ErrAlreadyBooked) {
				return ErrSlotNotAvailable
			}
			uc.logger.Error("BookConsultation: failed to insert booking: %v", err)
			return fmt.Errorf("%w: failed to insert booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	consultation := req.toDomainConsultation()
	uc.logger.Info("BookConsultation: slot %s %s booked for %q (services: %v)",
		req.Date, req.Time, req.CompanyName, consultation.SelectedServices())

	return &Response{
		Date:             req.Date,
		Time:             req.Time,
		CompanyName:      req.CompanyName,
		ClientEmail:      req.ClientEmail,
		SelectedServices: consultation.SelectedServices(),
	}, nil
}
