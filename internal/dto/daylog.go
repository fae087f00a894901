package dto

import (
	"time"

	"github.com/tillworks/tilldesk/internal/core/domain"
)

// DayLogResponse defines the data returned for a business-day log row.
type DayLogResponse struct {
	DayLogID  string     `json:"dayLogID"`
	LogDate   string     `json:"logDate"`
	StartTime *time.Time `json:"startTime,omitempty"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	UserID    string     `json:"userID"`
}

// ToDayLogResponse converts a domain.DayLog to its response DTO.
func ToDayLogResponse(d *domain.DayLog) DayLogResponse {
	return DayLogResponse{
		DayLogID:  d.DayLogID,
		LogDate:   d.LogDate,
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
		UserID:    d.UserID,
	}
}

// ToDayLogResponses converts a slice of day logs to response DTOs.
func ToDayLogResponses(logs []domain.DayLog) []DayLogResponse {
	res := make([]DayLogResponse, len(logs))
	for i := range logs {
		res[i] = ToDayLogResponse(&logs[i])
	}
	return res
}
