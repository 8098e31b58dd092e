package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gabe/scrub/internal/syncbus"
)

// CockpitModel is the detached cockpit window: the full log and note list
// rendered from sync traffic. It is a pure view; every mutation goes to the
// console as an intent and comes back as SYNC_STATE.
type CockpitModel struct {
	client *syncbus.Client

	snapshot    syncbus.StateSnapshot
	currentTime float64

	noteInput textinput.Model
	editInput textinput.Model
	focus     focusArea

	selected   int
	editID     string
	editIsNote bool

	width, height int
}

// NewCockpitModel creates a cockpit over an established channel client
func NewCockpitModel(client *syncbus.Client) CockpitModel {
	noteInput := textinput.New()
	noteInput.Placeholder = "quick note"
	noteInput.CharLimit = 200

	editInput := textinput.New()
	editInput.CharLimit = 200

	return CockpitModel{
		client:    client,
		noteInput: noteInput,
		editInput: editInput,
	}
}

func (m CockpitModel) Init() tea.Cmd {
	m.client.Publish(syncbus.KindRequestState, nil)
	return cockpitListenCmd(m.client)
}

func cockpitListenCmd(c *syncbus.Client) tea.Cmd {
	return func() tea.Msg {
		env, ok := <-c.Messages()
		return syncMsg{env: env, ok: ok}
	}
}

func (m CockpitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		return m.updateKey(msg)
	}
	return m, nil
}

func (m CockpitModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.focus != focusNone {
		switch msg.String() {
		case "enter":
			return m.commitInput()
		case "esc":
			m.noteInput.Blur()
			m.editInput.Blur()
			m.focus = focusNone
			return m, nil
		default:
			var cmd tea.Cmd
			if m.focus == focusNote {
				m.noteInput, cmd = m.noteInput.Update(msg)
			} else {
				m.editInput, cmd = m.editInput.Update(msg)
			}
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
		m.focus = focusNote
		return m, m.noteInput.Focus()
	case "r":
		return m.beginEdit()
	case "g":
		items := m.items()
		if m.selected < len(items) {
			m.client.Publish(syncbus.KindSeek, syncbus.SeekPayload{Time: items[m.selected].time})
		}
	case "s":
		m.client.Publish(syncbus.KindCaptureSnapshot, nil)
	case "d":
		m.client.Publish(syncbus.KindStartDictation, nil)
	}
	return m, nil
}

func (m CockpitModel) items() []feedItem {
	return mergedFeed(m.snapshot.Events, m.snapshot.Notes)
}

func (m CockpitModel) beginEdit() (tea.Model, tea.Cmd) {
	items := m.items()
	if m.selected >= len(items) {
		return m, nil
	}
	it := items[m.selected]
	m.editID = it.ID()
	m.editIsNote = it.note != nil
	if it.note != nil {
		m.editInput.SetValue(it.note.Text)
	} else {
		m.editInput.SetValue(it.event.Label)
	}
	m.focus = focusEdit
	return m, m.editInput.Focus()
}

func (m CockpitModel) commitInput() (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusNote:
		if text := strings.TrimSpace(m.noteInput.Value()); text != "" {
			m.client.Publish(syncbus.KindAddNote, syncbus.AddNotePayload{Text: text, Time: m.currentTime})
		}
		m.noteInput.SetValue("")
		m.noteInput.Blur()

	case focusEdit:
		value := strings.TrimSpace(m.editInput.Value())
		if value != "" && m.editID != "" {
			if m.editIsNote {
				m.client.Publish(syncbus.KindUpdateNote, syncbus.UpdateNotePayload{ID: m.editID, Text: value})
			} else if ev, ok := findEvent(m.snapshot.Events, m.editID); ok {
				ev.Label = value
				m.client.Publish(syncbus.KindUpdateEvent, ev)
			}
		}
		m.editInput.SetValue("")
		m.editInput.Blur()
		m.editID = ""
	}
	m.focus = focusNone
	return m, nil
}

func (m CockpitModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("scrub cockpit") + "  " +
		timecodeStyle.Render(Clock(m.currentTime)) + "\n\n")

	rows := m.height - 6
	if rows < 3 {
		rows = 3
	}
	b.WriteString(renderFeed(m.items(), m.currentTime, m.selected, rows) + "\n")

	switch m.focus {
	case focusNote:
		b.WriteString(helpStyle.Render("note: ") + m.noteInput.View())
	case focusEdit:
		b.WriteString(helpStyle.Render("edit: ") + m.editInput.View())
	default:
		b.WriteString(helpStyle.Render("n note · r edit · g seek · s snapshot · d dictation · q quit"))
	}
	return b.String()
}
