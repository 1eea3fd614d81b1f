package model

import "time"

// Preferences are the generator settings a client can save as a signed token.
type Preferences struct {
	Length  int    `json:"length"`
	Exclude string `json:"exclude"`
}

// PreferencesResponse returns the signed token for a set of preferences.
type PreferencesResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
