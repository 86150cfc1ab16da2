package models

import "github.com/astroya/consultation-service/pkg/types"

// BookedTimesResponse забронированные времена одной даты в хронологическом порядке
type BookedTimesResponse struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}

// FromTimes конвертирует отсортированный список времен в DTO
func FromTimes(date types.DateString, times []types.TimeString) *BookedTimesResponse {
	resp := &BookedTimesResponse{
		Date:  date.String(),
		Times: make([]string, len(times)),
	}
	for i, t := range times {
		resp.Times[i] = t.String()
	}
	return resp
}
