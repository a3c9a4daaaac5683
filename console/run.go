package console

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	logview "github.com/NemiKardani/in-app-logview"
)

// runModel wraps the console component as a root program. The component
// never quits on its own; the wrapper owns that decision.
type runModel struct {
	console Model
}

func (m runModel) Init() tea.Cmd {
	return m.console.Init()
}

func (m runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.console.keys.Quit) {
			// Plain q is text while the search field is open, and any
			// key closes the help overlay. ctrl+c always quits.
			quits := (!m.console.searchActive && !m.console.showHelp) || keyMsg.String() == "ctrl+c"
			if quits {
				m.console.Close()
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.console, cmd = m.console.Update(msg)
	return m, cmd
}

func (m runModel) View() string {
	return m.console.View()
}

// Run displays a full-screen console for buf until the user quits or the
// context is canceled. Context cancellation counts as a clean exit.
func Run(ctx context.Context, buf *logview.Buffer, opts ...Option) error {
	m := runModel{console: New(buf, opts...)}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
