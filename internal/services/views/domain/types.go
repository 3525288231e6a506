// Package domain defines the types and interfaces for the views service
package domain

import "time"

// LoadWrite is one served-thread event headed for the analytics store
type LoadWrite struct {
	At       time.Time
	DID      string
	RKey     string
	Comments int
	CacheHit bool
}

// SummaryRow is one day of load traffic
type SummaryRow struct {
	Day       string `json:"day" example:"2026-08-01"`
	Loads     int64  `json:"loads" example:"1200"`
	CacheHits int64  `json:"cache_hits" example:"900"`
	Comments  int64  `json:"comments" example:"48000"`
}

// TopPostRow is one post ranked by load count
type TopPostRow struct {
	DID   string `json:"did" example:"did:plc:abc123"`
	RKey  string `json:"rkey" example:"3kxyz"`
	Loads int64  `json:"loads" example:"420"`
}
