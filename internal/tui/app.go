package tui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gabe/scrub/internal/config"
	"github.com/gabe/scrub/internal/eventlog"
	"github.com/gabe/scrub/internal/export"
	"github.com/gabe/scrub/internal/history"
	"github.com/gabe/scrub/internal/notify"
	"github.com/gabe/scrub/internal/player"
	"github.com/gabe/scrub/internal/project"
	"github.com/gabe/scrub/internal/syncbus"
	"github.com/gabe/scrub/internal/timeline"
)

// doubleClickWindow is the maximum delay between two presses that still
// counts as a double press.
const doubleClickWindow = 400 * time.Millisecond

type tickMsg time.Time

// configReloadMsg carries a freshly loaded preferences file
type configReloadMsg struct {
	cfg *config.Config
}

type syncMsg struct {
	channel string
	env     syncbus.Envelope
	ok      bool
}

type focusArea int

const (
	focusNone focusArea = iota
	focusLabel
	focusNote
	focusEdit
	focusFilter
	focusMacro
)

type panelTab int

const (
	tabFeed panelTab = iota
	tabCondensed
	tabMacros
)

// Model is the main review console: playback grid, editable timeline and
// event logger in one program. It owns the project state; detached windows
// are views that send intents back here.
type Model struct {
	cfg    *config.Config
	logger *log.Logger

	hist  *history.History[project.State]
	coord *player.Coordinator
	rec   *eventlog.Recorder
	tl    TimelineView

	// in-flight drag; preview collections track the pointer and only the
	// release commits through history
	drag        *timeline.DragState
	dragPreview []timeline.Interval
	lastX       int

	width, height int

	labelInput  textinput.Model
	noteInput   textinput.Model
	editInput   textinput.Model
	filterInput textinput.Model
	macroInput  textinput.Model
	focus       focusArea

	category       eventlog.Category
	personal, team []eventlog.Macro

	tab          panelTab
	feedSelected int
	editID       string
	editIsNote   bool

	toasts   *ToastQueue
	toastAge int
	notices  *notify.ChannelNotifier
	notifier *notify.Manager

	hub     *syncbus.Hub
	cockpit *syncbus.Client
	popout  *syncbus.Client

	exports *export.Store
	audit   *export.AuditLog

	contextIV  timeline.Interval
	hasContext bool

	lastClick              time.Time
	lastClickX, lastClickY int

	showObjects bool
	showHeatmap bool
	zoomActive  bool
}

// NewModel wires the console together. hub, clients, exports and audit may be
// nil in tests; every use is guarded.
func NewModel(cfg *config.Config, logger *log.Logger, hub *syncbus.Hub, cockpit, popout *syncbus.Client, exports *export.Store, audit *export.AuditLog) Model {
	state := project.Seed()
	for _, def := range cfg.Instruments {
		state.Instruments = append(state.Instruments, timeline.NewInterval(def.Label, 0, timeline.MinDuration, def.Color))
	}

	labelInput := textinput.New()
	labelInput.Placeholder = "event label"
	labelInput.CharLimit = 80

	noteInput := textinput.New()
	noteInput.Placeholder = "quick note (say 'tag critical' to tag)"
	noteInput.CharLimit = 200

	editInput := textinput.New()
	editInput.CharLimit = 200

	filterInput := textinput.New()
	filterInput.Placeholder = "instrument label to hide/show"
	filterInput.CharLimit = 80

	macroInput := textinput.New()
	macroInput.Placeholder = "name: step one, step two, ..."
	macroInput.CharLimit = 200

	notices := notify.NewChannelNotifier(32)
	notifier := notify.NewManager(notify.NewLogNotifier(logger), notices)

	return Model{
		cfg:         cfg,
		logger:      logger,
		hist:        history.New(state),
		coord:       player.New(mockSources()),
		rec:         eventlog.NewRecorder(),
		tl:          NewTimelineView(cfg.Timeline.DefaultZoom, cfg.Timeline.ExpandedLanes),
		labelInput:  labelInput,
		noteInput:   noteInput,
		editInput:   editInput,
		filterInput: filterInput,
		macroInput:  macroInput,
		category:    eventlog.CategoryIntraOp,
		personal:    eventlog.DefaultMacros(),
		team:        eventlog.TeamMacros(),
		toasts:      NewToastQueue(),
		notices:     notices,
		notifier:    notifier,
		hub:         hub,
		cockpit:     cockpit,
		popout:      popout,
		exports:     exports,
		audit:       audit,
	}
}

// mockSources stands in for the upload flow: four feed slots, one of them an
// image so snapshots have something to capture.
func mockSources() []string {
	return []string{
		"feeds/room-view.mp4",
		"feeds/echo-monitor.png",
		"feeds/surgical-field.mp4",
		"feeds/instrument-table.mp4",
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd()}
	if m.cockpit != nil {
		cmds = append(cmds, listenCmd(m.cockpit, syncbus.ChannelCockpit))
	}
	if m.popout != nil {
		cmds = append(cmds, listenCmd(m.popout, syncbus.ChannelEventLog))
	}
	return tea.Batch(cmds...)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func listenCmd(c *syncbus.Client, channel string) tea.Cmd {
	return func() tea.Msg {
		env, ok := <-c.Messages()
		return syncMsg{channel: channel, env: env, ok: ok}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tl.Width = msg.Width - timelineGutter - 1
		m.tl.ScrollBy(0)
		return m, nil

	case tickMsg:
		m.coord.Advance(1.0)
		m.drainNotices()
		m.expireToast()
		if m.coord.Playing() {
			m.broadcastTime()
		}
		return m, tickCmd()

	case configReloadMsg:
		m.cfg = msg.cfg
		ApplyTheme(msg.cfg.Display.Theme)
		m.tl.Expanded = msg.cfg.Timeline.ExpandedLanes
		m.notifyInfo("preferences reloaded")
		return m, nil

	case syncMsg:
		if !msg.ok {
			return m, nil
		}
		m.applyEnvelope(msg.env)
		client := m.cockpit
		if msg.channel == syncbus.ChannelEventLog {
			client = m.popout
		}
		return m, listenCmd(client, msg.channel)

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

// drainNotices moves pending notices into the toast queue
func (m *Model) drainNotices() {
	for {
		select {
		case n := <-m.notices.Notices():
			level := ToastInfo
			switch n.Type {
			case notify.NoticeTypeError:
				level = ToastError
			case notify.NoticeTypeGuardrail:
				level = ToastWarn
			}
			m.toasts.Push(Toast{Message: n.Message, Level: level})
		default:
			return
		}
	}
}

// expireToast ages the front toast out after a few seconds
func (m *Model) expireToast() {
	if m.toasts.Len() == 0 {
		m.toastAge = 0
		return
	}
	m.toastAge++
	if m.toastAge >= 3 {
		m.toasts.Pop()
		m.toastAge = 0
	}
}

// ---- keyboard ----

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Text inputs swallow everything except enter and esc; global shortcuts
	// must never fire while typing.
	if m.focus != focusNone {
		switch msg.String() {
		case "enter":
			return m.commitInput()
		case "esc":
			m.blurInputs()
			return m, nil
		default:
			var cmd tea.Cmd
			switch m.focus {
			case focusLabel:
				m.labelInput, cmd = m.labelInput.Update(msg)
			case focusNote:
				m.noteInput, cmd = m.noteInput.Update(msg)
			case focusEdit:
				m.editInput, cmd = m.editInput.Update(msg)
			case focusFilter:
				m.filterInput, cmd = m.filterInput.Update(msg)
			case focusMacro:
				m.macroInput, cmd = m.macroInput.Update(msg)
			}
			return m, cmd
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	// transport
	case " ", "k":
		m.coord.TogglePlay()
	case "left":
		m.coord.Skip(-1)
		m.broadcastTime()
	case "right":
		m.coord.Skip(1)
		m.broadcastTime()
	case "j":
		m.coord.Skip(-5)
		m.broadcastTime()
	case "l":
		m.coord.Skip(5)
		m.broadcastTime()
	case "m":
		m.coord.ToggleMute()
	case "f":
		m.zoomActive = !m.zoomActive

	// surfaces and arrangements
	case "1", "2", "3", "4":
		n := int(msg.String()[0] - '1')
		if m.tab == tabMacros {
			return m.runMacro(n), nil
		}
		m.coord.ClickView(n)
	case "!":
		m.coord.SetArrangement(player.ArrangementSingle)
	case "@":
		m.coord.SetArrangement(player.ArrangementSplit)
	case "#":
		m.coord.SetArrangement(player.ArrangementTri)
	case "$":
		m.coord.SetArrangement(player.ArrangementQuad)
	case "w":
		m.coord.InitiateSwap(m.coord.Active())

	// overlays and snapshot
	case "o":
		m.showObjects = !m.showObjects
	case "h":
		m.showHeatmap = !m.showHeatmap
	case "s":
		m.captureSnapshot()

	// timeline
	case "+", "=":
		m.tl.ZoomIn()
	case "-":
		m.tl.ZoomOut()
	case "pgup":
		m.tl.ScrollBy(-m.tl.Width / 2)
	case "pgdown":
		m.tl.ScrollBy(m.tl.Width / 2)
	case "E":
		m.tl.Expanded = !m.tl.Expanded
	case ",":
		if m.hasContext {
			m.coord.SeekTime(m.contextIV.Start)
			m.broadcastTime()
		}
	case ".":
		if m.hasContext {
			m.coord.SeekTime(m.contextIV.End)
			m.broadcastTime()
		}

	// history
	case "z":
		m.hist.Undo()
		m.broadcastState()
	case "Z":
		m.hist.Redo()
		m.broadcastState()

	// recorder
	case "e":
		return m.toggleRecorder(), nil
	case "enter":
		return m.confirmPending(), nil
	case "esc":
		m.rec.Cancel()
	case "c":
		m.category = nextCategory(m.category)

	// inputs and panels
	case "i":
		m.focus = focusLabel
		return m, m.labelInput.Focus()
	case "n":
		m.focus = focusNote
		return m, m.noteInput.Focus()
	case "F":
		m.focus = focusFilter
		return m, m.filterInput.Focus()
	case "M":
		m.focus = focusMacro
		return m, m.macroInput.Focus()
	case "tab":
		m.tab = (m.tab + 1) % 3
	case "up":
		if m.feedSelected > 0 {
			m.feedSelected--
		}
	case "down":
		m.feedSelected++
	case "x":
		m.exportState()
	case "d":
		m.notifyInfo("dictation requested")
		m.publishAll(syncbus.KindStartDictation, nil)

	// feed item actions
	case "g":
		m.seekToSelected()
	case "r":
		return m.beginEditSelected()
	}
	return m, nil
}

func nextCategory(cat eventlog.Category) eventlog.Category {
	switch cat {
	case eventlog.CategoryPreOp:
		return eventlog.CategoryIntraOp
	case eventlog.CategoryIntraOp:
		return eventlog.CategoryPostOp
	default:
		return eventlog.CategoryPreOp
	}
}

func (m *Model) blurInputs() {
	m.labelInput.Blur()
	m.noteInput.Blur()
	m.editInput.Blur()
	m.filterInput.Blur()
	m.macroInput.Blur()
	m.focus = focusNone
}

// commitInput routes enter while a text input has focus
func (m Model) commitInput() (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusLabel:
		// label is read when the recorder stops; enter just leaves the field
		m.blurInputs()
	case focusNote:
		text := strings.TrimSpace(m.noteInput.Value())
		if text != "" {
			m.addNote(text, m.coord.CurrentTime())
			m.noteInput.SetValue("")
		}
		m.blurInputs()
	case focusEdit:
		m.applyEdit(strings.TrimSpace(m.editInput.Value()))
		m.editInput.SetValue("")
		m.blurInputs()
	case focusFilter:
		if label := strings.TrimSpace(m.filterInput.Value()); label != "" {
			m.tl.ToggleHidden(label)
		}
		m.filterInput.SetValue("")
		m.blurInputs()
	case focusMacro:
		m.createMacro(strings.TrimSpace(m.macroInput.Value()))
		m.macroInput.SetValue("")
		m.blurInputs()
	}
	return m, nil
}

// ---- recorder flow ----

func (m Model) toggleRecorder() Model {
	switch m.rec.Phase() {
	case eventlog.PhaseIdle:
		if err := m.rec.Start(m.coord.CurrentTime()); err == nil {
			m.focus = focusLabel
			m.labelInput.Focus()
		}
	case eventlog.PhaseRecording:
		candidate := eventlog.Event{
			Label:    strings.TrimSpace(m.labelInput.Value()),
			Type:     eventlog.TypeMilestone,
			Category: m.category,
			Staff:    m.cfg.Author.Role,
		}
		if err := m.rec.Stop(candidate, m.coord.CurrentTime(), m.hist.State().Events); err == nil {
			m.blurInputs()
			m.labelInput.SetValue("")
			if w := m.rec.Warning(); w != "" {
				m.notifier.Notify(notify.Notice{Type: notify.NoticeTypeGuardrail, Title: "guardrail", Message: w})
			}
		}
	}
	return m
}

func (m Model) confirmPending() Model {
	if m.rec.Phase() != eventlog.PhasePending {
		return m
	}
	ev, err := m.rec.Confirm()
	if err != nil {
		return m
	}
	m.commitEvent(ev)
	return m
}

// commitEvent appends a committed event, audits it and tells the windows
func (m *Model) commitEvent(ev eventlog.Event) {
	m.hist.Set(m.hist.State().WithEvent(ev))
	if m.audit != nil {
		if err := m.audit.Append(ev); err != nil {
			m.logger.Printf("audit append failed: %v", err)
		}
	}
	m.broadcastState()
}

// ---- notes, edits, macros ----

func (m *Model) addNote(text string, at float64) {
	note := project.NewNote(eventlog.AutoTag(text), m.cfg.Author.Name, at)
	m.hist.Set(m.hist.State().WithNote(note))
	m.broadcastState()
}

func (m Model) beginEditSelected() (tea.Model, tea.Cmd) {
	items := mergedFeed(m.hist.State().Events, m.hist.State().Notes)
	if m.feedSelected >= len(items) {
		return m, nil
	}
	it := items[m.feedSelected]
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

func (m *Model) applyEdit(value string) {
	if m.editID == "" || value == "" {
		return
	}
	state := m.hist.State()
	if m.editIsNote {
		m.hist.Set(state.WithUpdatedNote(m.editID, value))
	} else {
		if ev, ok := findEvent(state.Events, m.editID); ok {
			ev.Label = value
			m.hist.Set(state.WithUpdatedEvent(ev))
		}
	}
	m.editID = ""
	m.broadcastState()
}

func findEvent(events []eventlog.Event, id string) (eventlog.Event, bool) {
	for _, ev := range events {
		if ev.ID == id {
			return ev, true
		}
	}
	return eventlog.Event{}, false
}

func (m Model) runMacro(index int) Model {
	all := append(append([]eventlog.Macro{}, m.personal...), m.team...)
	if index < 0 || index >= len(all) {
		return m
	}
	macro := all[index]
	state := m.hist.State()
	for _, ev := range macro.Run(m.coord.CurrentTime(), m.category, m.cfg.Author.Role, "") {
		state = state.WithEvent(ev)
		if m.audit != nil {
			m.audit.Append(ev)
		}
	}
	m.hist.Set(state)
	m.notifyInfo(fmt.Sprintf("macro %q logged %d events", macro.Name, len(macro.Labels)))
	m.broadcastState()
	return m
}

func (m *Model) createMacro(input string) {
	name, labels, ok := strings.Cut(input, ":")
	if !ok {
		m.notifyError("macro format is name: step, step")
		return
	}
	macro, ok := eventlog.ParseMacro(strings.TrimSpace(name), labels)
	if !ok {
		m.notifyError("macro needs a name and at least one step")
		return
	}
	m.personal = append(m.personal, macro)
	m.notifyInfo(fmt.Sprintf("macro %q saved", macro.Name))
}

func (m *Model) seekToSelected() {
	items := mergedFeed(m.hist.State().Events, m.hist.State().Notes)
	if m.feedSelected < len(items) {
		m.coord.SeekTime(items[m.feedSelected].time)
		m.broadcastTime()
	}
}

// ---- snapshot and export ----

func (m *Model) captureSnapshot() {
	data, err := m.coord.CaptureSnapshot()
	if err != nil {
		m.notifier.Notify(notify.Notice{Type: notify.NoticeTypeError, Title: "snapshot", Message: "no frame to capture on the active surface"})
		return
	}
	ref := fmt.Sprintf("snapshot-%s.png", time.Now().Format("150405"))
	m.hist.Set(m.hist.State().WithSnapshot(ref))
	m.notifier.Notify(notify.Notice{Type: notify.NoticeTypeSnapshotSaved, Title: "snapshot", Message: fmt.Sprintf("captured %s (%d bytes)", ref, len(data))})
	m.broadcastState()
}

func (m *Model) exportState() {
	if m.exports == nil {
		return
	}
	path, err := m.exports.Write(m.hist.State())
	if err != nil {
		m.notifyError("export failed: " + err.Error())
		return
	}
	m.notifyInfo("exported " + path)
}

func (m *Model) notifyInfo(msg string) {
	m.notifier.Notify(notify.Notice{Type: notify.NoticeTypeInfo, Message: msg})
}

func (m *Model) notifyError(msg string) {
	m.notifier.Notify(notify.Notice{Type: notify.NoticeTypeError, Message: msg})
}

// ---- sync: owner side ----

// applyEnvelope handles traffic from detached windows. The console is the
// single writer: intents mutate here and the result is re-broadcast.
func (m *Model) applyEnvelope(env syncbus.Envelope) {
	switch env.Type {
	case syncbus.KindRequestState:
		m.broadcastState()

	case syncbus.KindLogEvent:
		var ev eventlog.Event
		if env.Decode(&ev) != nil {
			return
		}
		if ev.ID == "" {
			full := eventlog.NewEvent(ev.Label, ev.Type, ev.Category, ev.Start, ev.End)
			full.Notes = ev.Notes
			full.Staff = ev.Staff
			full.Location = ev.Location
			full.Outcome = ev.Outcome
			ev = full
		}
		m.commitEvent(ev)

	case syncbus.KindAddNote:
		var p syncbus.AddNotePayload
		if env.Decode(&p) != nil {
			return
		}
		m.addNote(p.Text, p.Time)

	case syncbus.KindUpdateEvent:
		var ev eventlog.Event
		if env.Decode(&ev) != nil {
			return
		}
		m.hist.Set(m.hist.State().WithUpdatedEvent(ev))
		m.broadcastState()

	case syncbus.KindUpdateNote:
		var p syncbus.UpdateNotePayload
		if env.Decode(&p) != nil {
			return
		}
		m.hist.Set(m.hist.State().WithUpdatedNote(p.ID, p.Text))
		m.broadcastState()

	case syncbus.KindSeek:
		var p syncbus.SeekPayload
		if env.Decode(&p) != nil {
			return
		}
		m.coord.SeekTime(p.Time)
		m.broadcastTime()

	case syncbus.KindCaptureSnapshot:
		m.captureSnapshot()

	case syncbus.KindStartDictation:
		m.notifyInfo("dictation requested from a detached window")
	}
}

func (m *Model) publishAll(kind string, payload interface{}) {
	if m.cockpit != nil {
		m.cockpit.Publish(kind, payload)
	}
	if m.popout != nil {
		m.popout.Publish(kind, payload)
	}
}

func (m *Model) broadcastState() {
	state := m.hist.State()
	m.publishAll(syncbus.KindSyncState, syncbus.StateSnapshot{
		CurrentTime: m.coord.CurrentTime(),
		Events:      state.Events,
		Notes:       state.Notes,
	})
}

func (m *Model) broadcastTime() {
	m.publishAll(syncbus.KindTimeUpdate, syncbus.TimeUpdatePayload{CurrentTime: m.coord.CurrentTime()})
}
