package session

import (
	"context"
	"errors"
	"testing"

	"github.com/go-test/deep"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/service"
)

// countingSource returns 0, 1, 2, ... so consecutive passwords differ.
type countingSource struct{ n uint32 }

func (c *countingSource) Uint32() (uint32, error) {
	v := c.n
	c.n++
	return v, nil
}

// regeneratingClipboard generates a new password while the copy is in flight.
type regeneratingClipboard struct {
	s *Session
}

func (r regeneratingClipboard) WriteText(context.Context, string) error {
	return r.s.Generate()
}

func TestNewSession(t *testing.T) {
	s := New(nil, nil)
	want := State{Length: service.DefaultLength}
	if diff := deep.Equal(s.Snapshot(), want); diff != nil {
		t.Error(diff)
	}
	if got := s.Snapshot().Label(); got != "N/A" {
		t.Errorf("Label() = %q, want %q", got, "N/A")
	}
}

func TestGenerate(t *testing.T) {
	s := New(&countingSource{}, nil)
	if err := s.SetLength(8); err != nil {
		t.Fatalf("SetLength() unexpected error: %v", err)
	}

	if err := s.Generate(); err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}

	got := s.Snapshot()
	if got.Password != "abcdefgh" {
		t.Errorf("Password = %q, want %q", got.Password, "abcdefgh")
	}
	if got.Strength != 2 {
		t.Errorf("Strength = %d, want 2", got.Strength)
	}
}

func TestSetLengthOutOfRange(t *testing.T) {
	s := New(nil, nil)
	for _, length := range []int{0, 7, 33} {
		if err := s.SetLength(length); !errors.Is(err, service.ErrLengthOutOfRange) {
			t.Errorf("SetLength(%d) error = %v, want %v", length, err, service.ErrLengthOutOfRange)
		}
	}
	if got := s.Snapshot().Length; got != service.DefaultLength {
		t.Errorf("Length = %d, want unchanged %d", got, service.DefaultLength)
	}
}

func TestGenerateErrorKeepsPassword(t *testing.T) {
	s := New(nil, nil)
	if err := s.Generate(); err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	before := s.Snapshot().Password

	s.SetExcluded(crypto.FullAlphabet)
	if err := s.Generate(); !errors.Is(err, crypto.ErrInvalidConfiguration) {
		t.Fatalf("Generate() error = %v, want %v", err, crypto.ErrInvalidConfiguration)
	}
	if got := s.Snapshot().Password; got != before {
		t.Errorf("Password = %q, want previous %q kept", got, before)
	}
}

func TestCopy(t *testing.T) {
	clip := &MemoryClipboard{}
	s := New(nil, clip)

	if err := s.Copy(context.Background()); err != ErrNothingToCopy {
		t.Errorf("Copy() before generating error = %v, want %v", err, ErrNothingToCopy)
	}

	if err := s.Generate(); err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if err := s.Copy(context.Background()); err != nil {
		t.Fatalf("Copy() unexpected error: %v", err)
	}

	st := s.Snapshot()
	if clip.Text() != st.Password {
		t.Errorf("clipboard = %q, want %q", clip.Text(), st.Password)
	}
	if !st.Copied || st.CopyFailed {
		t.Errorf("Copied = %v, CopyFailed = %v, want true, false", st.Copied, st.CopyFailed)
	}

	if err := s.Generate(); err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if s.Snapshot().Copied {
		t.Error("Copied should reset on the next generation")
	}
}

func TestCopyFailure(t *testing.T) {
	clip := &MemoryClipboard{Err: errors.New("permission denied")}
	s := New(nil, clip)
	if err := s.Generate(); err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	password := s.Snapshot().Password

	err := s.Copy(context.Background())
	if !errors.Is(err, ErrClipboardUnavailable) {
		t.Fatalf("Copy() error = %v, want %v", err, ErrClipboardUnavailable)
	}

	st := s.Snapshot()
	if st.Copied || !st.CopyFailed {
		t.Errorf("Copied = %v, CopyFailed = %v, want false, true", st.Copied, st.CopyFailed)
	}
	if st.Password != password {
		t.Error("a failed copy must not change the password")
	}
}

func TestCopyWithoutClipboard(t *testing.T) {
	s := New(nil, nil)
	if err := s.Generate(); err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if err := s.Copy(context.Background()); !errors.Is(err, ErrClipboardUnavailable) {
		t.Errorf("Copy() error = %v, want %v", err, ErrClipboardUnavailable)
	}
}

func TestCopyResultDiscardedAfterRegeneration(t *testing.T) {
	s := New(nil, nil)
	s.clip = regeneratingClipboard{s: s}
	if err := s.Generate(); err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}

	if err := s.Copy(context.Background()); err != nil {
		t.Fatalf("Copy() unexpected error: %v", err)
	}
	if s.Snapshot().Copied {
		t.Error("Copied should stay false when the password changed during the copy")
	}
}

func TestMemoryClipboardCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var clip MemoryClipboard
	if err := clip.WriteText(ctx, "x"); !errors.Is(err, context.Canceled) {
		t.Errorf("WriteText() error = %v, want %v", err, context.Canceled)
	}
}
