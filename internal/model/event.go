package model

import "time"

// GenerationEvent records that a password was generated. It never holds the password itself.
type GenerationEvent struct {
	ID                int64
	EventID           string
	Length            int
	ExcludedCount     int
	Strength          int
	ClientFingerprint string
	CreatedAt         time.Time
}

// StatsResponse summarizes recorded generations by strength score.
type StatsResponse struct {
	Total      int64         `json:"total"`
	ByStrength map[int]int64 `json:"by_strength"`
}
