package service

import (
	"errors"
	"time"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

var ErrSecretRequired = errors.New("preferences secret is required")

// PreferencesService signs and verifies saved generator settings.
type PreferencesService struct {
	secret string
	ttl    time.Duration
}

// NewPreferencesService creates a new PreferencesService.
func NewPreferencesService(secret string, ttl time.Duration) *PreferencesService {
	return &PreferencesService{secret: secret, ttl: ttl}
}

// Save validates prefs and returns them as a signed token.
// A zero length is stored as DefaultLength.
func (s *PreferencesService) Save(prefs model.Preferences) (model.PreferencesResponse, error) {
	if s.secret == "" {
		return model.PreferencesResponse{}, ErrSecretRequired
	}
	if prefs.Length == 0 {
		prefs.Length = DefaultLength
	}
	if err := ValidateLength(prefs.Length); err != nil {
		return model.PreferencesResponse{}, err
	}
	if crypto.Alphabet(prefs.Exclude) == "" {
		return model.PreferencesResponse{}, crypto.ErrInvalidConfiguration
	}

	token, expiresAt, err := crypto.IssuePreferencesToken(prefs.Length, prefs.Exclude, s.secret, s.ttl)
	if err != nil {
		return model.PreferencesResponse{}, err
	}

	return model.PreferencesResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// Load verifies a token and returns the preferences it carries.
func (s *PreferencesService) Load(token string) (model.Preferences, error) {
	claims, err := crypto.ParsePreferencesToken(token, s.secret)
	if err != nil {
		return model.Preferences{}, err
	}
	return model.Preferences{Length: claims.Length, Exclude: claims.Exclude}, nil
}

// ApplyPreferences fills the fields req leaves unset from prefs.
func ApplyPreferences(req model.GenerateRequest, prefs model.Preferences) model.GenerateRequest {
	if req.Length == 0 {
		req.Length = prefs.Length
	}
	if req.Exclude == nil {
		exclude := prefs.Exclude
		req.Exclude = &exclude
	}
	return req
}
