package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

const (
	MinLength     = 8
	MaxLength     = 32
	DefaultLength = 12
)

var (
	ErrLengthOutOfRange = fmt.Errorf("password length must be between %d and %d", MinLength, MaxLength)
	ErrStatsUnavailable = errors.New("generation statistics are unavailable")
)

// EventStore records generation events and summarizes them.
type EventStore interface {
	Record(ctx context.Context, event *model.GenerationEvent) error
	CountByStrength(ctx context.Context) (map[int]int64, error)
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	source         crypto.RandomSource
	events         EventStore
	fingerprintKey []byte
}

// NewGeneratorService creates a new GeneratorService. A nil source uses
// crypto/rand; a nil events store disables event recording and statistics.
func NewGeneratorService(source crypto.RandomSource, events EventStore, fingerprintKey []byte) *GeneratorService {
	if source == nil {
		source = crypto.CryptoSource{}
	}
	return &GeneratorService{
		source:         source,
		events:         events,
		fingerprintKey: fingerprintKey,
	}
}

// ValidateLength reports whether length is inside the selectable range.
func ValidateLength(length int) error {
	if length < MinLength || length > MaxLength {
		return ErrLengthOutOfRange
	}
	return nil
}

// Generate produces a password and its strength for the given request.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	length := req.Length
	if length == 0 {
		length = DefaultLength
	}
	if err := ValidateLength(length); err != nil {
		return model.GenerateResponse{}, err
	}
	exclude := stringOrDefault(req.Exclude, "")

	password, err := crypto.Generate(length, exclude, s.source)
	if err != nil {
		return model.GenerateResponse{}, err
	}
	strength := crypto.Score(password)

	s.record(ctx, &model.GenerationEvent{
		Length:        length,
		ExcludedCount: len(crypto.FullAlphabet) - len(crypto.Alphabet(exclude)),
		Strength:      strength,
	}, req.ClientAddr)

	return model.GenerateResponse{
		Password: password,
		Length:   length,
		Strength: strength,
		Label:    crypto.Label(strength),
	}, nil
}

// Score rates an arbitrary password.
func (s *GeneratorService) Score(req model.ScoreRequest) model.ScoreResponse {
	strength := crypto.Score(req.Password)
	return model.ScoreResponse{
		Strength: strength,
		Max:      crypto.MaxScore,
		Label:    crypto.Label(strength),
	}
}

// Stats summarizes recorded generations by strength.
func (s *GeneratorService) Stats(ctx context.Context) (model.StatsResponse, error) {
	if s.events == nil {
		return model.StatsResponse{}, ErrStatsUnavailable
	}

	counts, err := s.events.CountByStrength(ctx)
	if err != nil {
		return model.StatsResponse{}, err
	}

	var total int64
	for _, n := range counts {
		total += n
	}
	return model.StatsResponse{Total: total, ByStrength: counts}, nil
}

// record stores a generation event. Failures are logged and never reach the caller.
func (s *GeneratorService) record(ctx context.Context, event *model.GenerationEvent, clientAddr string) {
	if s.events == nil {
		return
	}

	if clientAddr != "" && len(s.fingerprintKey) > 0 {
		fp, err := crypto.Fingerprint(s.fingerprintKey, clientAddr)
		if err != nil {
			slog.Warn("fingerprinting client failed", "error", err)
		} else {
			event.ClientFingerprint = fp
		}
	}

	if err := s.events.Record(ctx, event); err != nil {
		slog.Warn("recording generation event failed", "error", err, "length", event.Length, "strength", event.Strength)
	}
}

// stringOrDefault returns the dereferenced pointer value, or the fallback if nil.
func stringOrDefault(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}
