package domain

import "time"

// DayLog tracks the opening and closing of one business day.
// Exactly one row exists per calendar date.
type DayLog struct {
	DayLogID  string     `json:"dayLogID"` // Primary key (UUID)
	LogDate   string     `json:"logDate"`  // ISO date, unique
	StartTime *time.Time `json:"startTime,omitempty"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	UserID    string     `json:"userID"` // Acting user
}
