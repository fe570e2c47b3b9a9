// Package review is the interactive reconciliation wizard: it walks every
// entry awaiting review and records what happened.
package review

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/weeklog/pkg/entry"
	"tableflip.dev/weeklog/pkg/journal"
	"tableflip.dev/weeklog/pkg/key"
)

type phase int

const (
	phaseAsking phase = iota
	phasePleasure
	phaseMastery
	phaseReplacement
	phaseDone
)

// Model walks the pending queue one entry at a time.
type Model struct {
	j *journal.Journal

	pending []key.Activity
	idx     int
	phase   phase

	input    textinput.Model
	pleasure entry.Rating

	confirmed int
	rejected  int
	skipped   int

	status string
	width  int
}

// messages
type errMsg struct{ err error }
type pendingLoadedMsg struct{ keys []key.Activity }

// New builds the wizard over j.
func New(j *journal.Journal) Model {
	ti := textinput.New()
	ti.Placeholder = "1-10"
	ti.CharLimit = 2
	ti.Prompt = ""
	ti.Focus()

	return Model{
		j:     j,
		input: ti,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadPending()
}

func (m *Model) loadPending() tea.Cmd {
	j := m.j
	return func() tea.Msg {
		pending, err := j.Pending()
		if err != nil {
			return errMsg{err}
		}
		return pendingLoadedMsg{keys: pending}
	}
}

func (m Model) current() (key.Activity, *entry.Activity, bool) {
	if m.idx >= len(m.pending) {
		return key.Activity{}, nil, false
	}
	k := m.pending[m.idx]
	a, ok := m.j.Get(k)
	return k, a, ok
}

func (m *Model) advance() {
	m.idx++
	m.phase = phaseAsking
	m.input.SetValue("")
	if m.idx >= len(m.pending) {
		m.phase = phaseDone
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case pendingLoadedMsg:
		m.pending = msg.keys
		m.idx = 0
		if len(m.pending) == 0 {
			m.phase = phaseDone
		}
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}

		switch m.phase {
		case phaseAsking:
			switch msg.String() {
			case "q", "esc":
				return m, tea.Quit
			case "y":
				m.phase = phasePleasure
				m.input.SetValue("")
			case "n":
				k, _, ok := m.current()
				if ok {
					if _, err := m.j.Reject(k); err != nil {
						m.status = "ERR: " + err.Error()
						break
					}
					m.rejected++
				}
				m.phase = phaseReplacement
				m.input.SetValue("")
			case "s", "j":
				m.skipped++
				m.advance()
			}
		case phasePleasure, phaseMastery:
			switch msg.String() {
			case "esc":
				m.phase = phaseAsking
			case "enter":
				r, err := entry.ParseRating(m.input.Value())
				if err != nil {
					m.status = err.Error()
					break
				}
				m.status = ""
				if m.phase == phasePleasure {
					m.pleasure = r
					m.phase = phaseMastery
					m.input.SetValue("")
					break
				}
				k, _, ok := m.current()
				if ok {
					if _, err := m.j.Confirm(k, m.pleasure, r); err != nil {
						m.status = "ERR: " + err.Error()
						m.phase = phaseAsking
						break
					}
					m.confirmed++
				}
				m.advance()
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		case phaseReplacement:
			switch msg.String() {
			case "esc":
				m.advance()
			case "enter":
				text := strings.TrimSpace(m.input.Value())
				if text != "" {
					k, _, ok := m.current()
					if ok {
						if _, err := m.j.Save(k, journal.Draft{Text: text}, journal.LogReplacement); err != nil {
							m.status = "ERR: " + err.Error()
							break
						}
					}
				}
				m.advance()
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		case phaseDone:
			switch msg.String() {
			case "q", "esc", "enter":
				return m, tea.Quit
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// Run launches the wizard program.
func Run(j *journal.Journal) error {
	p := tea.NewProgram(New(j), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) progress() string {
	return fmt.Sprintf("%d/%d", m.idx+1, len(m.pending))
}

var faintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
