// Package session holds the interactive generator state: the current
// password, the chosen length and exclusions, and the copy confirmation.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/service"
)

var (
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
	ErrNothingToCopy        = errors.New("no password to copy")
)

// Clipboard writes text to a clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// State is a snapshot of a Session.
type State struct {
	Password   string
	Length     int
	Excluded   string
	Strength   int
	Copied     bool
	CopyFailed bool
}

// Label names the current strength.
func (s State) Label() string {
	return crypto.Label(s.Strength)
}

// Session is safe for concurrent use so that a slow clipboard write can run
// off the UI goroutine.
type Session struct {
	mu     sync.Mutex
	state  State
	source crypto.RandomSource
	clip   Clipboard
}

// New creates a Session with the default length and no password.
// A nil source uses crypto/rand.
func New(source crypto.RandomSource, clip Clipboard) *Session {
	return &Session{
		state:  State{Length: service.DefaultLength},
		source: source,
		clip:   clip,
	}
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetLength changes the length used by the next Generate.
func (s *Session) SetLength(length int) error {
	if err := service.ValidateLength(length); err != nil {
		return err
	}
	s.mu.Lock()
	s.state.Length = length
	s.mu.Unlock()
	return nil
}

// SetExcluded changes the exclusion set used by the next Generate.
func (s *Session) SetExcluded(excluded string) {
	s.mu.Lock()
	s.state.Excluded = excluded
	s.mu.Unlock()
}

// Generate replaces the password with a new one and clears the copy state.
// On error the previous password is kept.
func (s *Session) Generate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	password, err := crypto.Generate(s.state.Length, s.state.Excluded, s.source)
	if err != nil {
		return err
	}

	s.state.Password = password
	s.state.Strength = crypto.Score(password)
	s.state.Copied = false
	s.state.CopyFailed = false
	return nil
}

// Copy writes the current password to the clipboard. The clipboard is called
// without holding the lock; if a new password was generated meanwhile the
// result is discarded.
func (s *Session) Copy(ctx context.Context) error {
	s.mu.Lock()
	password := s.state.Password
	s.mu.Unlock()

	if password == "" {
		return ErrNothingToCopy
	}

	var err error
	if s.clip == nil {
		err = ErrClipboardUnavailable
	} else if werr := s.clip.WriteText(ctx, password); werr != nil {
		err = fmt.Errorf("%w: %w", ErrClipboardUnavailable, werr)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Password == password {
		s.state.Copied = err == nil
		s.state.CopyFailed = err != nil
	}
	return err
}
