package console

import (
	"github.com/charmbracelet/lipgloss"

	logview "github.com/NemiKardani/in-app-logview"
)

// Fixed palette for the console. The level colors are the only
// presentation the level enum carries; they live here so the capture
// core stays presentation-free.
const (
	colorBackground = "#282a36"
	colorText       = "#f8f8f2"
	colorMuted      = "#6272a4"
	colorAccent     = "#bd93f9"
	colorDebug      = "#8be9fd"
	colorInfo       = "#50fa7b"
	colorWarning    = "#f1fa8c"
	colorError      = "#ff5555"
)

// styleSet contains pre-built Lipgloss styles for the console.
type styleSet struct {
	Title     lipgloss.Style
	Timestamp lipgloss.Style
	Tag       lipgloss.Style
	Message   lipgloss.Style
	Faint     lipgloss.Style
	Accent    lipgloss.Style
	Notice    lipgloss.Style

	Debug   lipgloss.Style
	Info    lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

func defaultStyles() styleSet {
	return styleSet{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorAccent)).
			Bold(true),

		Timestamp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted)),

		Tag: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorAccent)),

		Message: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorText)),

		Faint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted)),

		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorAccent)),

		Notice: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorWarning)),

		Debug: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorDebug)),

		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorInfo)).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorWarning)),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorError)).
			Bold(true),
	}
}

// forLevel returns the style for a record's level token.
func (s styleSet) forLevel(l logview.Level) lipgloss.Style {
	switch l {
	case logview.LevelDebug:
		return s.Debug
	case logview.LevelInfo:
		return s.Info
	case logview.LevelWarning:
		return s.Warning
	case logview.LevelError:
		return s.Error
	default:
		return s.Message
	}
}
