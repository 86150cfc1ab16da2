package availability

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правило для даты не найдено
	ErrRuleNotFound = errors.New("availability: rule not found")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("availability: invalid date format")

	// ErrInvalidTime возвращается при некорректном времени в списке разрешенных
	ErrInvalidTime = errors.New("availability: invalid time in allowed list")

	// ErrEmptyRule возвращается, когда правило не задано: ни флага
	// недоступности всего дня, ни хотя бы одного разрешенного времени
	ErrEmptyRule = errors.New("availability: rule must be UNAVAILABLE or list at least one time")
)
