package rules

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правило для даты отсутствует
	ErrRuleNotFound = errors.New("rules.repository: rule not found")
)
