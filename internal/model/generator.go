package model

// GenerateRequest represents a password generation request.
// A nil Exclude distinguishes a missing field from an explicit empty exclusion set.
type GenerateRequest struct {
	Length  int     `json:"length"`
	Exclude *string `json:"exclude"`

	// ClientAddr is filled in by the HTTP layer and only ever stored as a fingerprint.
	ClientAddr string `json:"-"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
	Strength int    `json:"strength"`
	Label    string `json:"label"`
}

// ScoreRequest asks for the strength of an arbitrary password.
type ScoreRequest struct {
	Password string `json:"password"`
}

// ScoreResponse reports a strength score out of Max.
type ScoreResponse struct {
	Strength int    `json:"strength"`
	Max      int    `json:"max"`
	Label    string `json:"label"`
}
