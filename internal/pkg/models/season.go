package models

import "time"

// DefaultSeasonNumber is used for score submissions when no season is marked active
const DefaultSeasonNumber = 1

// Season is a numbered scoring period
type Season struct {
	Number    int        `json:"season_number" db:"season_number"`
	IsActive  bool       `json:"is_active" db:"is_active"`
	StartedAt *time.Time `json:"started_at,omitempty" db:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty" db:"ended_at"`
}

// ActiveSeasonResponse reports the active season number
type ActiveSeasonResponse struct {
	SeasonNumber int `json:"season_number"`
}
