package schedule

import (
	"context"
	"fmt"

	"github.com/astroya/consultation-service/internal/service/schedule/models"
	"github.com/astroya/consultation-service/pkg/types"
)

// Service читающие и сервисные операции над журналом бронирований
type Service struct {
	ledgerRepo LedgerRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(ledgerRepo LedgerRepository, logger Logger) *Service {
	return &Service{
		ledgerRepo: ledgerRepo,
		logger:     logger,
	}
}

// GetBookedTimes возвращает забронированные времена даты в хронологическом
// порядке. Для даты без бронирований возвращается пустой список
func (s *Service) GetBookedTimes(ctx context.Context, date string) (*models.BookedTimesResponse, error) {
	parsedDate, err := types.NewDateStringFromString(date)
	if err != nil {
		s.logger.Warn("GetBookedTimes: invalid date %q", date)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	times := s.ledgerRepo.GetTimes(ctx, parsedDate)
	s.logger.Info("GetBookedTimes: date=%s, booked=%d", date, len(times))
	return models.FromTimes(parsedDate, times), nil
}

// ResetLedger очищает журнал бронирований целиком.
// Таблицу правил не затрагивает - сбросы независимы и комбинируются
// только явным действием администратора
func (s *Service) ResetLedger(ctx context.Context) {
	s.ledgerRepo.Reset(ctx)
	s.logger.Info("ResetLedger: booking ledger cleared")
}
