package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer   = "passgen"
	tokenAudience = "passgen-api"
)

var (
	ErrInvalidToken = errors.New("invalid or expired preferences token")
)

// PreferencesClaims carries a client's saved generator settings.
type PreferencesClaims struct {
	jwt.RegisteredClaims
	Length  int    `json:"length"`
	Exclude string `json:"exclude"`
}

// IssuePreferencesToken signs the given length and exclusion set into a JWT.
func IssuePreferencesToken(length int, exclude, secret string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := PreferencesClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Length:  length,
		Exclude: exclude,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParsePreferencesToken validates a token issued by IssuePreferencesToken.
func ParsePreferencesToken(tokenString, secret string) (*PreferencesClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &PreferencesClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithAudience(tokenAudience))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*PreferencesClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
