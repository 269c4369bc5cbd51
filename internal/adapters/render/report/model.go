package report

import (
	"errors"
	"io"

	"github.com/bnema/logdata/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

// layoutDoneMsg carries the finished table back into the model.
type layoutDoneMsg struct {
	output string
}

type model struct {
	layout tea.Cmd
	output string
}

func newModel(report application.Report, opts RenderOptions) model {
	s := newStyles()

	return model{
		layout: func() tea.Msg {
			return layoutDoneMsg{output: renderView(report, opts, s)}
		},
	}
}

func (m model) Init() tea.Cmd {
	return m.layout
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	done, ok := msg.(layoutDoneMsg)
	if !ok {
		return m, nil
	}

	m.output = done.output
	return m, tea.Quit
}

func (m model) View() string {
	return m.output
}

// Render lays out report as terminal text. Nothing is drawn; the program only
// sequences the layout command.
func Render(report application.Report, opts RenderOptions) (string, error) {
	finalModel, err := tea.NewProgram(
		newModel(report, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	).Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
