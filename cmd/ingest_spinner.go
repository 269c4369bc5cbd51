package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

type ingestDoneMsg struct {
	err error
}

type ingestSpinnerModel struct {
	spinner spinner.Model
	path    string
	ingest  tea.Cmd
	err     error
	done    bool
}

func newIngestSpinnerModel(path string, ingest tea.Cmd) ingestSpinnerModel {
	return ingestSpinnerModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		path:   path,
		ingest: ingest,
	}
}

func (m ingestSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.ingest)
}

func (m ingestSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(ingestDoneMsg); ok {
		m.done = true
		m.err = done.err
		return m, tea.Quit
	}

	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(tick)
		return m, cmd
	}

	return m, nil
}

func (m ingestSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s Reading %s...", m.spinner.View(), m.path)
}

// runIngestSpinner runs ingest in a bubbletea command goroutine while a
// spinner naming path is drawn on output. It returns once ingest has returned.
func runIngestSpinner(ctx context.Context, output io.Writer, path string, ingest func(context.Context) error) error {
	ingestCmd := func() tea.Msg {
		return ingestDoneMsg{err: ingest(ctx)}
	}

	finalModel, err := tea.NewProgram(
		newIngestSpinnerModel(path, ingestCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	).Run()
	if err != nil {
		return fmt.Errorf("run progress spinner: %w", err)
	}

	result, ok := finalModel.(ingestSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}

// isTerminal reports whether w is a file descriptor attached to a terminal.
// Buffers, pipes and regular files are not.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
