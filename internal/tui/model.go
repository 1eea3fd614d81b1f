// Package tui is the interactive terminal front end of the generator.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/service"
	"github.com/vaultpass/passgen-go/internal/session"
)

const (
	barWidth    = 30
	copyTimeout = 5 * time.Second
)

type copyDoneMsg struct {
	err error
}

// Model is the TUI model
type Model struct {
	session *session.Session
	exclude textinput.Model
	editing bool
	copying bool
	err     error
	// copyErr is shown only while the session reports the copy as failed.
	copyErr error
}

// NewModel creates a TUI model driving s.
func NewModel(s *session.Session) Model {
	ti := textinput.New()
	ti.Placeholder = "Characters to exclude"
	ti.CharLimit = 0
	ti.Width = 40
	ti.SetValue(s.Snapshot().Excluded)

	return Model{
		session: s,
		exclude: ti,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case copyDoneMsg:
		m.copying = false
		m.copyErr = msg.err
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.editing {
			return m.updateEditing(msg)
		}

		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit

		case "g", "enter":
			m.err = m.session.Generate()
			return m, nil

		case "c":
			if m.copying {
				return m, nil
			}
			m.copying = true
			return m, m.copyPassword()

		case "left", "-":
			m.err = m.adjustLength(-1)
			return m, nil

		case "right", "+", "=":
			m.err = m.adjustLength(1)
			return m, nil

		case "tab", "x":
			m.editing = true
			return m, m.exclude.Focus()
		}
	}

	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyTab, tea.KeyEsc:
		m.editing = false
		m.exclude.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.exclude, cmd = m.exclude.Update(msg)
	m.session.SetExcluded(m.exclude.Value())
	return m, cmd
}

// adjustLength moves the length by delta, staying inside the selectable range.
func (m Model) adjustLength(delta int) error {
	next := m.session.Snapshot().Length + delta
	if next < service.MinLength || next > service.MaxLength {
		return nil
	}
	return m.session.SetLength(next)
}

func (m Model) copyPassword() tea.Cmd {
	s := m.session
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), copyTimeout)
		defer cancel()
		return copyDoneMsg{err: s.Copy(ctx)}
	}
}

// View renders the UI
func (m Model) View() string {
	st := m.session.Snapshot()
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Strong Password Generator"))
	b.WriteString("\n")

	b.WriteString(LabelStyle.Render("Generated Password"))
	b.WriteString("\n")
	password := st.Password
	if password == "" {
		password = MutedStyle.Render("press g to generate")
	}
	b.WriteString(PasswordStyle.Render(password))
	b.WriteString("  ")
	b.WriteString(copyStatus(st, m.copying))
	b.WriteString("\n\n")

	b.WriteString(LabelStyle.Render(fmt.Sprintf("Password Length: %d", st.Length)))
	b.WriteString(MutedStyle.Render(fmt.Sprintf("  (%d-%d)", service.MinLength, service.MaxLength)))
	b.WriteString("\n\n")

	b.WriteString(LabelStyle.Render("Excluded Characters"))
	b.WriteString("\n")
	b.WriteString(m.exclude.View())
	b.WriteString("\n\n")

	b.WriteString(LabelStyle.Render("Password Strength"))
	b.WriteString("\n")
	b.WriteString(strengthBar(st.Strength))
	b.WriteString("\n")
	b.WriteString(MutedStyle.Render(fmt.Sprintf("Strength: %d / %d (%s)", st.Strength, crypto.MaxScore, st.Label())))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}
	if st.CopyFailed && m.copyErr != nil {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render("Copy: " + m.copyErr.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(MutedStyle.Render(m.help()))

	return BoxStyle.Render(b.String())
}

func (m Model) help() string {
	if m.editing {
		return "type to edit • enter/tab/esc: done"
	}
	return "g/enter: generate • c: copy • ←/→: length • tab: exclusions • q: quit"
}

func copyStatus(st session.State, copying bool) string {
	switch {
	case copying:
		return MutedStyle.Render("Copying...")
	case st.Copied:
		return SuccessStyle.Render("Copied!")
	case st.CopyFailed:
		return ErrorStyle.Render("Copy failed")
	case st.Password == "":
		return ""
	default:
		return MutedStyle.Render("c: Copy")
	}
}

func strengthBar(strength int) string {
	filled := barWidth * strength / crypto.MaxScore
	return barFilledStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", barWidth-filled))
}
