package get_unavailable_times

import (
	getUnavailableTimes "github.com/astroya/consultation-service/internal/usecase/get_unavailable_times"
)

// UnavailableTimesResponse HTTP response model
type UnavailableTimesResponse struct {
	Date             string   `json:"date"`
	BaseSchedule     []string `json:"baseSchedule"`
	UnavailableTimes []string `json:"unavailableTimes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getUnavailableTimes.Response) *UnavailableTimesResponse {
	base := make([]string, len(resp.BaseSchedule))
	for i, t := range resp.BaseSchedule {
		base[i] = t.String()
	}

	unavailable := make([]string, len(resp.UnavailableTimes))
	for i, t := range resp.UnavailableTimes {
		unavailable[i] = t.String()
	}

	return &UnavailableTimesResponse{
		Date:             resp.Date.String(),
		BaseSchedule:     base,
		UnavailableTimes: unavailable,
	}
}
