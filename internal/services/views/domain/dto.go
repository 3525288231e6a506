// Package domain holds DTOs for views http and service contracts
package domain

// TimeRange defines a start and end date for queries
// Dates are ISO8601 days, end inclusive
type TimeRange struct {
	Start string `json:"start" validate:"required,datetime=2006-01-02" example:"2026-08-01"`
	End   string `json:"end" validate:"required,datetime=2006-01-02" example:"2026-08-31"`
}

// SummaryInput buckets loads by day
type SummaryInput struct {
	Range TimeRange `json:"range"`
}

// TopInput ranks posts by load count in the window
type TopInput struct {
	Range TimeRange `json:"range"`
	Limit int       `json:"limit,omitempty" validate:"omitempty,min=1,max=100" example:"20"`
}
