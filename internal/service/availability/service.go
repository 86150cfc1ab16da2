package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/astroya/consultation-service/internal/domain"
	rulesRepo "github.com/astroya/consultation-service/internal/infra/storage/rules"
	"github.com/astroya/consultation-service/internal/service/availability/models"
	"github.com/astroya/consultation-service/pkg/types"
)

// Service сервис администрирования правил доступности.
// Владеет жизненным циклом таблицы правил: начальная загрузка из seed файла,
// точечные мутации из админки и массовый сброс к начальному состоянию
type Service struct {
	ruleRepo   RuleRepository
	seedLoader SeedLoader
	logger     Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	ruleRepo RuleRepository,
	seedLoader SeedLoader,
	logger Logger,
) *Service {
	return &Service{
		ruleRepo:   ruleRepo,
		seedLoader: seedLoader,
		logger:     logger,
	}
}

// GetRule получает правило для даты
func (s *Service) GetRule(ctx context.Context, date string) (*models.RuleResponse, error) {
	parsedDate, err := types.NewDateStringFromString(date)
	if err != nil {
		s.logger.Warn("GetRule: invalid date %q: %v", date, err)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	rule, err := s.ruleRepo.Get(ctx, parsedDate)
	if err != nil {
		if errors.Is(err, rulesRepo.ErrRuleNotFound) {
			return nil, ErrRuleNotFound
		}
		return nil, err
	}

	return models.FromDomainRule(rule), nil
}

// ListRules возвращает снимок всей таблицы правил
func (s *Service) ListRules(ctx context.Context) *models.RuleListResponse {
	table := s.ruleRepo.List(ctx)
	s.logger.Info("ListRules: %d rules in table", len(table))
	return models.FromDomainRuleTable(table)
}

// SetRule создает или заменяет правило для даты (идемпотентный upsert).
// При ошибке валидации состояние не меняется
func (s *Service) SetRule(ctx context.Context, req *models.SetRuleRequest) (*models.MutationResult, error) {
	s.logger.Info("SetRule: date=%s, unavailable=%t, times=%d", req.Date, req.Unavailable, len(req.Times))

	// 1. Валидируем формат даты
	date, err := types.NewDateStringFromString(req.Date)
	if err != nil {
		s.logger.Warn("SetRule: invalid date %q", req.Date)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	// 2. Правило должно быть непустым: либо весь день закрыт,
	// либо задан хотя бы один разрешенный слот
	if !req.Unavailable && len(req.Times) == 0 {
		s.logger.Warn("SetRule: empty rule for date %s", req.Date)
		return nil, ErrEmptyRule
	}

	// 3. Валидируем времена из списка разрешенных
	var times []types.TimeString
	if !req.Unavailable {
		times = make([]types.TimeString, 0, len(req.Times))
		for _, rawTime := range req.Times {
			t, err := types.NewTimeStringFromString(rawTime)
			if err != nil {
				s.logger.Warn("SetRule: invalid time %q for date %s", rawTime, req.Date)
				return nil, fmt.Errorf("%w: %q", ErrInvalidTime, rawTime)
			}
			times = append(times, t)
		}
	}

	// 4. Заменяем существующее правило, если оно было
	s.ruleRepo.Upsert(ctx, req.ToDomainRule(date, times))

	s.logger.Info("SetRule: successfully saved rule for date %s", req.Date)
	return &models.MutationResult{
		Date:    req.Date,
		Message: fmt.Sprintf("правило доступности для %s сохранено", req.Date),
	}, nil
}

// DeleteRule удаляет правило для даты.
// Если правила не было, возвращает ErrRuleNotFound без мутации состояния
func (s *Service) DeleteRule(ctx context.Context, date string) (*models.MutationResult, error) {
	s.logger.Info("DeleteRule: date=%s", date)

	parsedDate, err := types.NewDateStringFromString(date)
	if err != nil {
		s.logger.Warn("DeleteRule: invalid date %q", date)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	if err := s.ruleRepo.Delete(ctx, parsedDate); err != nil {
		if errors.Is(err, rulesRepo.ErrRuleNotFound) {
			s.logger.Warn("DeleteRule: no rule for date %s", date)
			return nil, ErrRuleNotFound
		}
		return nil, err
	}

	s.logger.Info("DeleteRule: successfully deleted rule for date %s", date)
	return &models.MutationResult{
		Date:    date,
		Message: fmt.Sprintf("правило доступности для %s удалено", date),
	}, nil
}

// ResetToSeed сбрасывает таблицу правил к начальному состоянию из seed файла.
// Если файл отсутствует или некорректен, устанавливается пустая таблица:
// ошибка логируется, но вызывающему не возвращается - сброс и старт процесса
// не должны падать из-за битого конфигурационного ресурса
func (s *Service) ResetToSeed(ctx context.Context) {
	table, err := s.seedLoader.Load()
	if err != nil {
		s.logger.Error("ResetToSeed: failed to load seed rules, falling back to empty table: %v", err)
		table = make(domain.RuleTable)
	}

	s.ruleRepo.ReplaceAll(ctx, table)
	s.logger.Info("ResetToSeed: rule table reset, %d rules loaded", len(table))
}
