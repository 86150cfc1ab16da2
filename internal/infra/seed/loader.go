package seed

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"github.com/astroya/consultation-service/internal/domain"
	"github.com/astroya/consultation-service/pkg/types"
)

// wholeDayMarker значение правила "весь день недоступен" в файле
const wholeDayMarker = "UNAVAILABLE"

// Loader загрузчик начальных правил доступности из JSON файла.
// Формат файла: { "YYYY-MM-DD": "UNAVAILABLE" | ["HH:MM", ...], ... }
type Loader struct {
	path string
}

// NewLoader создает загрузчик для указанного файла
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load читает и разбирает файл правил.
// Каждый вызов возвращает независимую копию - мутации таблицы правил
// не должны затрагивать исходный конфигурационный ресурс
func (l *Loader) Load() (domain.RuleTable, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrReadFile, l.path, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	table := make(domain.RuleTable, len(raw))
	for dateStr, value := range raw {
		date, err := types.NewDateStringFromString(dateStr)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date key %q", ErrMalformed, dateStr)
		}

		rule, err := parseRule(date, value)
		if err != nil {
			return nil, err
		}
		table[date] = rule
	}

	return table, nil
}

// parseRule разбирает значение правила: строка "UNAVAILABLE" или массив времен
func parseRule(date types.DateString, value json.RawMessage) (*domain.AvailabilityRule, error) {
	var marker string
	if err := json.Unmarshal(value, &marker); err == nil {
		if marker != wholeDayMarker {
			return nil, fmt.Errorf("%w: unknown rule value %q for date %s", ErrMalformed, marker, date)
		}
		return &domain.AvailabilityRule{
			Date:                date,
			WholeDayUnavailable: true,
		}, nil
	}

	var rawTimes []string
	if err := json.Unmarshal(value, &rawTimes); err != nil {
		return nil, fmt.Errorf("%w: rule for date %s must be %q or an array of times", ErrMalformed, date, wholeDayMarker)
	}

	allowed := make([]types.TimeString, 0, len(rawTimes))
	for _, rawTime := range rawTimes {
		t, err := types.NewTimeStringFromString(rawTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid time %q for date %s", ErrMalformed, rawTime, date)
		}
		allowed = append(allowed, t)
	}

	return &domain.AvailabilityRule{
		Date:         date,
		AllowedTimes: allowed,
	}, nil
}
