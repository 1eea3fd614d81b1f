package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-test/deep"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

func strPtr(s string) *string { return &s }

// zeroSource always selects the first character of the alphabet.
type zeroSource struct{}

func (zeroSource) Uint32() (uint32, error) { return 0, nil }

type fakeEventStore struct {
	events    []model.GenerationEvent
	counts    map[int]int64
	recordErr error
	countErr  error
}

func (f *fakeEventStore) Record(_ context.Context, event *model.GenerationEvent) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	f.events = append(f.events, *event)
	return nil
}

func (f *fakeEventStore) CountByStrength(context.Context) (map[int]int64, error) {
	return f.counts, f.countErr
}

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService(nil, nil, nil)
	resp, err := svc.Generate(context.Background(), model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != DefaultLength {
		t.Errorf("expected length %d, got %d", DefaultLength, resp.Length)
	}
	if len(resp.Password) != DefaultLength {
		t.Errorf("expected password length %d, got %d", DefaultLength, len(resp.Password))
	}
	if resp.Strength != crypto.Score(resp.Password) {
		t.Errorf("strength %d does not match Score() of the password", resp.Strength)
	}
	if resp.Label != crypto.Label(resp.Strength) {
		t.Errorf("label %q does not match strength %d", resp.Label, resp.Strength)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	svc := NewGeneratorService(zeroSource{}, nil, nil)
	resp, err := svc.Generate(context.Background(), model.GenerateRequest{
		Length:  8,
		Exclude: strPtr("a"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := model.GenerateResponse{
		Password: "bbbbbbbb",
		Length:   8,
		Strength: 2,
		Label:    "Weak",
	}
	if diff := deep.Equal(resp, want); diff != nil {
		t.Error(diff)
	}
}

func TestGenerate_Exclusions(t *testing.T) {
	svc := NewGeneratorService(nil, nil, nil)
	for i := 0; i < 50; i++ {
		resp, err := svc.Generate(context.Background(), model.GenerateRequest{
			Length:  32,
			Exclude: strPtr("abcXYZ019!@#"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.ContainsAny(resp.Password, "abcXYZ019!@#") {
			t.Fatalf("password %q contains an excluded character", resp.Password)
		}
	}
}

func TestGenerate_LengthOutOfRange(t *testing.T) {
	svc := NewGeneratorService(nil, nil, nil)
	for _, length := range []int{-1, 7, 33, 200} {
		_, err := svc.Generate(context.Background(), model.GenerateRequest{Length: length})
		if !errors.Is(err, ErrLengthOutOfRange) {
			t.Errorf("length %d: expected ErrLengthOutOfRange, got %v", length, err)
		}
	}
}

func TestGenerate_EverythingExcluded(t *testing.T) {
	store := &fakeEventStore{}
	svc := NewGeneratorService(nil, store, nil)
	_, err := svc.Generate(context.Background(), model.GenerateRequest{
		Length:  12,
		Exclude: strPtr(crypto.FullAlphabet),
	})
	if !errors.Is(err, crypto.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
	if len(store.events) != 0 {
		t.Errorf("expected no event for a failed generation, got %d", len(store.events))
	}
}

func TestGenerate_RecordsEvent(t *testing.T) {
	store := &fakeEventStore{}
	svc := NewGeneratorService(zeroSource{}, store, []byte("fingerprint-key"))

	_, err := svc.Generate(context.Background(), model.GenerateRequest{
		Length:     16,
		Exclude:    strPtr("aab"),
		ClientAddr: "203.0.113.7",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(store.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(store.events))
	}
	fp, _ := crypto.Fingerprint([]byte("fingerprint-key"), "203.0.113.7")
	want := model.GenerationEvent{
		Length:            16,
		ExcludedCount:     2,
		Strength:          3,
		ClientFingerprint: fp,
	}
	if diff := deep.Equal(store.events[0], want); diff != nil {
		t.Error(diff)
	}
}

func TestGenerate_RecordFailureIsNotFatal(t *testing.T) {
	store := &fakeEventStore{recordErr: errors.New("db down")}
	svc := NewGeneratorService(nil, store, nil)

	resp, err := svc.Generate(context.Background(), model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Password == "" {
		t.Error("expected a password despite the event store failing")
	}
}

func TestScore(t *testing.T) {
	svc := NewGeneratorService(nil, nil, nil)
	got := svc.Score(model.ScoreRequest{Password: "Abcdefghijk1!"})
	want := model.ScoreResponse{Strength: 6, Max: 6, Label: "Very Strong"}
	if diff := deep.Equal(got, want); diff != nil {
		t.Error(diff)
	}
}

func TestStats(t *testing.T) {
	store := &fakeEventStore{counts: map[int]int64{3: 2, 6: 5}}
	svc := NewGeneratorService(nil, store, nil)

	got, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := model.StatsResponse{Total: 7, ByStrength: map[int]int64{3: 2, 6: 5}}
	if diff := deep.Equal(got, want); diff != nil {
		t.Error(diff)
	}
}

func TestStats_Unavailable(t *testing.T) {
	svc := NewGeneratorService(nil, nil, nil)
	if _, err := svc.Stats(context.Background()); err != ErrStatsUnavailable {
		t.Errorf("expected ErrStatsUnavailable, got %v", err)
	}
}
