package console

import (
	"fmt"
	"strings"

	logview "github.com/NemiKardani/in-app-logview"
)

const levelColumnWidth = 7 // "WARNING"

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderTitle())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return b.String()
}

func (m Model) renderTitle() string {
	title := m.title
	if m.filtersActive() {
		title += " (filtered)"
	}
	return m.styles.Title.Render(title)
}

// renderContent renders the filtered record history for the viewport.
func (m Model) renderContent() string {
	visible := m.activeFilter().Apply(m.records)
	if len(visible) == 0 {
		if len(m.records) == 0 {
			return m.styles.Faint.Render("No log entries")
		}
		return m.styles.Faint.Render("No entries match the active filters")
	}

	lines := make([]string, 0, len(visible))
	for _, r := range visible {
		lines = append(lines, m.renderLine(r))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderLine(r logview.Record) string {
	var b strings.Builder
	if m.showTime {
		b.WriteString(m.styles.Timestamp.Render(r.Time.Format("15:04:05.000")))
		b.WriteString(" ")
	}
	b.WriteString(m.styles.forLevel(r.Level).Render(fmt.Sprintf("%-*s", levelColumnWidth, r.Level.Upper())))
	b.WriteString(" ")
	if r.Tag != "" {
		b.WriteString(m.styles.Tag.Render("[" + r.Tag + "]"))
		b.WriteString(" ")
	}
	b.WriteString(m.styles.Message.Render(r.Message))
	return b.String()
}

// renderStatus renders the bottom status line. While the search field is
// open it shows the input instead.
func (m Model) renderStatus() string {
	if m.searchActive {
		return m.styles.Accent.Render("search: ") + m.searchInput.View()
	}

	visible := len(m.activeFilter().Apply(m.records))

	var parts []string
	parts = append(parts, m.styles.Faint.Render(fmt.Sprintf("%d/%d records", visible, len(m.records))))

	follow := "off"
	if m.follow {
		follow = "on"
	}
	parts = append(parts, m.styles.Faint.Render("follow "+follow))

	if m.filterLevel != nil {
		parts = append(parts, m.styles.Accent.Render("level="+m.filterLevel.String()))
	}
	if m.sourceActive {
		parts = append(parts, m.styles.Accent.Render("source="+m.sourceTag))
	}
	if m.searchQuery != "" {
		parts = append(parts, m.styles.Accent.Render("/"+truncate(m.searchQuery, 24)))
	}
	if dropped := m.sub.Dropped(); dropped > 0 {
		parts = append(parts, m.styles.Notice.Render(fmt.Sprintf("%d dropped", dropped)))
	}
	if m.notice != "" {
		parts = append(parts, m.styles.Notice.Render(m.notice))
	}

	separator := " " + m.styles.Faint.Render("•") + " "
	return strings.Join(parts, separator)
}

// truncate shortens a value to the limit, appending an ellipsis when
// anything was cut.
func truncate(value string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit == 1 {
		return "…"
	}
	return string(runes[:limit-1]) + "…"
}
