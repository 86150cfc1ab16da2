package models

import (
	"sort"

	"github.com/astroya/consultation-service/internal/domain"
	"github.com/astroya/consultation-service/pkg/types"
)

// Request модели

// SetRuleRequest запрос на создание или замену правила для даты
type SetRuleRequest struct {
	Date        string   `json:"date"`
	Unavailable bool     `json:"unavailable"`
	Times       []string `json:"times,omitempty"`
}

// Response модели

// RuleResponse правило доступности одной даты
type RuleResponse struct {
	Date        string   `json:"date"`
	Unavailable bool     `json:"unavailable"`
	Times       []string `json:"times,omitempty"`
}

// RuleListResponse снимок таблицы правил, отсортированный по дате
type RuleListResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// MutationResult результат мутирующей операции с сообщением для администратора
type MutationResult struct {
	Date    string `json:"date"`
	Message string `json:"message"`
}

// Методы конвертации

// FromDomainRule конвертирует domain модель в DTO
func FromDomainRule(r *domain.AvailabilityRule) *RuleResponse {
	if r == nil {
		return nil
	}

	resp := &RuleResponse{
		Date:        r.Date.String(),
		Unavailable: r.WholeDayUnavailable,
	}
	if !r.WholeDayUnavailable {
		resp.Times = make([]string, len(r.AllowedTimes))
		for i, t := range r.AllowedTimes {
			resp.Times[i] = t.String()
		}
	}
	return resp
}

// FromDomainRuleTable конвертирует таблицу правил в DTO со стабильным порядком
func FromDomainRuleTable(table domain.RuleTable) *RuleListResponse {
	resp := &RuleListResponse{
		Rules: make([]RuleResponse, 0, len(table)),
	}

	for _, rule := range table {
		if ruleResp := FromDomainRule(rule); ruleResp != nil {
			resp.Rules = append(resp.Rules, *ruleResp)
		}
	}

	sort.Slice(resp.Rules, func(i, j int) bool {
		return resp.Rules[i].Date < resp.Rules[j].Date
	})

	return resp
}

// ToDomainRule конвертирует SetRuleRequest в domain модель.
// Предполагает, что дата и времена уже провалидированы сервисом
func (r *SetRuleRequest) ToDomainRule(date types.DateString, times []types.TimeString) *domain.AvailabilityRule {
	if r.Unavailable {
		return &domain.AvailabilityRule{
			Date:                date,
			WholeDayUnavailable: true,
		}
	}
	return &domain.AvailabilityRule{
		Date:         date,
		AllowedTimes: times,
	}
}
