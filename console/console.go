package console

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	logview "github.com/NemiKardani/in-app-logview"
	"github.com/NemiKardani/in-app-logview/prefs"
)

// Local display retention; the buffer's own capacity is independent.
const defaultMaxVisible = 2000

// Option configures a Model.
type Option func(*Model)

// WithTitle sets the pane title, "Logs" by default.
func WithTitle(title string) Option {
	return func(m *Model) {
		m.title = title
	}
}

// WithSourceTag sets the tag the source filter matches, "API" by default.
func WithSourceTag(tag string) Option {
	return func(m *Model) {
		m.sourceTag = tag
	}
}

// WithMaxVisible bounds how many records the console keeps for display.
// Values below one fall back to the default of 2000.
func WithMaxVisible(n int) Option {
	return func(m *Model) {
		m.maxVisible = n
	}
}

// WithFollow sets the initial follow mode.
func WithFollow(on bool) Option {
	return func(m *Model) {
		m.follow = on
	}
}

// WithShowTimestamps sets the initial timestamp visibility.
func WithShowTimestamps(on bool) Option {
	return func(m *Model) {
		m.showTime = on
	}
}

// WithPrefsPath makes follow, timestamp, and source-tag changes persist
// to the given preferences file. Empty disables persistence.
func WithPrefsPath(path string) Option {
	return func(m *Model) {
		m.prefsPath = path
	}
}

// Model is the log console component. It renders a buffer's history and
// live stream with search, level and source filtering, follow mode, and
// clipboard copy. Embed it in a host Bubble Tea program, or use Run for
// a standalone full-screen console.
type Model struct {
	buf *logview.Buffer
	sub *logview.Subscription

	keys   keyMap
	styles styleSet

	title      string
	sourceTag  string
	maxVisible int
	prefsPath  string

	records      []logview.Record
	follow       bool
	showTime     bool
	filterLevel  *logview.Level
	sourceActive bool

	searchActive bool
	searchQuery  string
	searchInput  textinput.Model

	viewport viewport.Model
	width    int
	height   int
	ready    bool

	showHelp     bool
	notice       string
	streamClosed bool
}

// New builds a console reading buf. History and the live subscription
// are taken in one step, so the console sees every record exactly once.
func New(buf *logview.Buffer, opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = "Search logs..."
	ti.CharLimit = 100

	m := Model{
		buf:         buf,
		keys:        DefaultKeyMap(),
		styles:      defaultStyles(),
		title:       "Logs",
		sourceTag:   "API",
		maxVisible:  defaultMaxVisible,
		follow:      true,
		showTime:    true,
		searchInput: ti,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.maxVisible < 1 {
		m.maxVisible = defaultMaxVisible
	}

	history, sub := buf.Follow()
	m.records = trimRecords(history, m.maxVisible)
	m.sub = sub
	return m
}

// Close cancels the console's subscription. Hosts call it when they
// remove an embedded console; Run does it on quit.
func (m Model) Close() {
	if m.sub != nil {
		m.sub.Cancel()
	}
}

// Messages

type recordMsg logview.Record

type streamClosedMsg struct{}

// waitForRecord blocks on the subscription and re-arms per record.
func waitForRecord(sub *logview.Subscription) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-sub.Records()
		if !ok {
			return streamClosedMsg{}
		}
		return recordMsg(r)
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForRecord(m.sub)
}

// Update implements the Bubble Tea component convention: it consumes a
// message and returns the updated model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case recordMsg:
		m.ingest(logview.Record(msg))
		return m, waitForRecord(m.sub)

	case streamClosedMsg:
		m.streamClosed = true
		m.notice = "log stream closed"
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// SetSize resizes the console. Hosts embedding the component call this
// from their own WindowSizeMsg handling.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	contentHeight := height - 2 // title above, status below
	if contentHeight < 1 {
		contentHeight = 1
	}
	if !m.ready {
		m.viewport = viewport.New(width, contentHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = contentHeight
	}
	m.refreshContent()
}

// ingest folds one broadcast record into the local display history. The
// clear marker resets the history so the marker renders as a boundary.
func (m *Model) ingest(r logview.Record) {
	if r.Message == logview.ClearedMessage && r.Level == logview.LevelInfo && r.Tag == "" {
		m.records = []logview.Record{r}
	} else {
		m.records = append(m.records, r)
		m.records = trimRecords(m.records, m.maxVisible)
	}
	m.refreshContent()
}

// trimRecords trims the display history to the limit by removing oldest
// entries.
func trimRecords(records []logview.Record, limit int) []logview.Record {
	if overflow := len(records) - limit; overflow > 0 {
		return append([]logview.Record(nil), records[overflow:]...)
	}
	return records
}

func (m *Model) refreshContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderContent())
	if m.follow {
		m.viewport.GotoBottom()
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.searchActive {
		return m.handleSearchKey(msg)
	}

	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.ToggleFollow):
		m.follow = !m.follow
		if m.follow {
			m.viewport.GotoBottom()
		}
		m.persistPrefs()

	case key.Matches(msg, m.keys.Search):
		m.searchActive = true
		m.searchInput.SetValue(m.searchQuery)
		m.searchInput.Focus()

	case key.Matches(msg, m.keys.Escape):
		if m.searchQuery != "" {
			m.searchQuery = ""
			m.refreshContent()
		}

	case key.Matches(msg, m.keys.CycleLevel):
		m.cycleLevelFilter()
		m.refreshContent()

	case key.Matches(msg, m.keys.ToggleSource):
		m.sourceActive = !m.sourceActive
		m.refreshContent()

	case key.Matches(msg, m.keys.ToggleTimestamps):
		m.showTime = !m.showTime
		m.persistPrefs()
		m.refreshContent()

	case key.Matches(msg, m.keys.Copy):
		m.copyVisible()

	case key.Matches(msg, m.keys.Clear):
		m.buf.Clear()

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		m.follow = false

	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		m.follow = true

	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
		m.follow = false

	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
		m.follow = false

	case key.Matches(msg, m.keys.HalfPageDown):
		m.viewport.HalfViewDown()
		m.follow = false

	case key.Matches(msg, m.keys.HalfPageUp):
		m.viewport.HalfViewUp()
		m.follow = false

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
		m.follow = false

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
		m.follow = false
	}

	return m, nil
}

// handleSearchKey handles keyboard input while the search field is open.
func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.searchQuery = strings.TrimSpace(m.searchInput.Value())
		m.searchActive = false
		m.searchInput.Blur()
		m.refreshContent()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.searchActive = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// cycleLevelFilter advances all → debug → info → warning → error → all.
func (m *Model) cycleLevelFilter() {
	switch {
	case m.filterLevel == nil:
		l := logview.LevelDebug
		m.filterLevel = &l
	case *m.filterLevel == logview.LevelError:
		m.filterLevel = nil
	default:
		l := *m.filterLevel + 1
		m.filterLevel = &l
	}
}

// activeFilter assembles the record predicate from console state.
func (m Model) activeFilter() logview.Filter {
	f := logview.Filter{Search: m.searchQuery, Level: m.filterLevel}
	if m.sourceActive {
		f.Source = m.sourceTag
	}
	return f
}

func (m Model) filtersActive() bool {
	return m.searchQuery != "" || m.filterLevel != nil || m.sourceActive
}

// copyVisible puts the currently visible lines on the system clipboard
// as plain formatted text.
func (m *Model) copyVisible() {
	visible := m.activeFilter().Apply(m.records)
	if len(visible) == 0 {
		m.notice = "nothing to copy"
		return
	}
	lines := make([]string, 0, len(visible))
	for _, r := range visible {
		if m.showTime {
			lines = append(lines, logview.Format(r))
		} else {
			lines = append(lines, logview.FormatNoTime(r))
		}
	}
	if err := clipboard.WriteAll(strings.Join(lines, "\n")); err != nil {
		m.notice = "copy failed: " + err.Error()
		return
	}
	m.notice = fmt.Sprintf("copied %d lines", len(lines))
}

func (m Model) persistPrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Follow:         m.follow,
		ShowTimestamps: m.showTime,
		SourceTag:      m.sourceTag,
	})
}
