package types

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidDateString возвращается при некорректном формате даты
var ErrInvalidDateString = errors.New("invalid date string format")

// datePattern структурная проверка даты YYYY-MM-DD: месяц 01-12, день 01-31.
// Календарная корректность (например, 31 февраля) намеренно не проверяется -
// ключи таблицы правил сравниваются как строки, а не как календарные даты
var datePattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)

// DateString календарная дата в формате "YYYY-MM-DD" (ISO 8601)
type DateString string

// NewDateStringFromString создает DateString из строки с валидацией формата
func NewDateStringFromString(s string) (DateString, error) {
	ds := DateString(s)
	if err := ds.Validate(); err != nil {
		return "", err
	}
	return ds, nil
}

// Validate проверяет, что значение структурно соответствует формату YYYY-MM-DD
func (d DateString) Validate() error {
	if !datePattern.MatchString(string(d)) {
		return fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return nil
}

// IsZero возвращает true для пустого значения
func (d DateString) IsZero() bool {
	return d == ""
}

// String возвращает строковое представление
func (d DateString) String() string {
	return string(d)
}
