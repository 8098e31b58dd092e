package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gabe/scrub/internal/syncbus"
)

// LogWindowModel is the simple log-only popout. It lives on its own channel
// and is deliberately not interoperable with the cockpit.
type LogWindowModel struct {
	client *syncbus.Client

	snapshot    syncbus.StateSnapshot
	currentTime float64

	noteInput textinput.Model
	typing    bool

	selected      int
	width, height int
}

// NewLogWindowModel creates a popout over an established channel client
func NewLogWindowModel(client *syncbus.Client) LogWindowModel {
	noteInput := textinput.New()
	noteInput.Placeholder = "quick note"
	noteInput.CharLimit = 200
	return LogWindowModel{
		client:    client,
		noteInput: noteInput,
	}
}

func (m LogWindowModel) Init() tea.Cmd {
	m.client.Publish(syncbus.KindRequestState, nil)
	return cockpitListenCmd(m.client)
}

func (m LogWindowModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case syncMsg:
		if !msg.ok {
			return m, nil
		}
		switch msg.env.Type {
		case syncbus.KindSyncState:
			var snap syncbus.StateSnapshot
			if msg.env.Decode(&snap) == nil {
				m.snapshot = snap
				m.currentTime = snap.CurrentTime
			}
		case syncbus.KindTimeUpdate:
			var p syncbus.TimeUpdatePayload
			if msg.env.Decode(&p) == nil {
				m.currentTime = p.CurrentTime
			}
		}
		return m, cockpitListenCmd(m.client)

	case tea.KeyMsg:
		if m.typing {
			switch msg.String() {
			case "enter":
				if text := strings.TrimSpace(m.noteInput.Value()); text != "" {
					m.client.Publish(syncbus.KindAddNote, syncbus.AddNotePayload{Text: text, Time: m.currentTime})
				}
				m.noteInput.SetValue("")
				m.noteInput.Blur()
				m.typing = false
				return m, nil
			case "esc":
				m.noteInput.Blur()
				m.typing = false
				return m, nil
			default:
				var cmd tea.Cmd
				m.noteInput, cmd = m.noteInput.Update(msg)
				return m, cmd
			}
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up":
			if m.selected > 0 {
				m.selected--
			}
		case "down":
			m.selected++
		case "n":
			m.typing = true
			return m, m.noteInput.Focus()
		case "g":
			items := mergedFeed(m.snapshot.Events, m.snapshot.Notes)
			if m.selected < len(items) {
				m.client.Publish(syncbus.KindSeek, syncbus.SeekPayload{Time: items[m.selected].time})
			}
		}
	}
	return m, nil
}

func (m LogWindowModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("scrub event log") + "  " +
		timecodeStyle.Render(Clock(m.currentTime)) + "\n\n")

	rows := m.height - 5
	if rows < 3 {
		rows = 3
	}
	items := mergedFeed(m.snapshot.Events, m.snapshot.Notes)
	b.WriteString(renderFeed(items, m.currentTime, m.selected, rows) + "\n")

	if m.typing {
		b.WriteString(helpStyle.Render("note: ") + m.noteInput.View())
	} else {
		b.WriteString(helpStyle.Render("n note · g seek · q quit"))
	}
	return b.String()
}
