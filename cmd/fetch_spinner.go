package cmd

import (
	"context"
	"fmt"
	"io"

	listingadapter "github.com/bnema/dcms-cli/internal/adapters/render/listing"
	"github.com/bnema/dcms-cli/internal/application"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type fetchResultMsg struct {
	snapshot application.Snapshot
	err      error
}

// fetchSpinnerModel spins while one tab's data loads and keeps the snapshot it produced.
type fetchSpinnerModel struct {
	spinner  spinner.Model
	tab      application.Tab
	load     tea.Cmd
	snapshot application.Snapshot
	err      error
	done     bool
}

func newFetchSpinnerModel(tab application.Tab, load tea.Cmd) fetchSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return fetchSpinnerModel{
		spinner: s,
		tab:     tab,
		load:    load,
	}
}

func fetchLabel(tab application.Tab) string {
	if tab == application.TabAgenda {
		return "Loading today's meetings..."
	}
	return "Loading correspondence and stats..."
}

func (m fetchSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load)
}

func (m fetchSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case fetchResultMsg:
		m.done = true
		m.snapshot = msg.snapshot
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m fetchSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), fetchLabel(m.tab))
}

// report writes the error panel for a failed fetch. The returned error carries only the
// user-facing message. Errors raised before the fetch ran pass through unchanged.
func (m fetchSpinnerModel) report(output io.Writer) error {
	if m.err == nil {
		return nil
	}
	if m.snapshot.Err == nil {
		return m.err
	}

	_, _ = fmt.Fprintln(output, listingadapter.ErrorPanel(m.snapshot.Err))
	return &reportedError{err: m.snapshot.Err}
}

// runFetchSpinner shows a spinner on output until load returns the snapshot for tab.
func runFetchSpinner(ctx context.Context, output io.Writer, tab application.Tab, load func(context.Context) (application.Snapshot, error)) (application.Snapshot, error) {
	loadCmd := func() tea.Msg {
		snapshot, err := load(ctx)
		return fetchResultMsg{snapshot: snapshot, err: err}
	}

	p := tea.NewProgram(
		newFetchSpinnerModel(tab, loadCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return application.Snapshot{}, err
	}

	result, ok := finalModel.(fetchSpinnerModel)
	if !ok {
		return application.Snapshot{}, fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.snapshot, result.report(output)
}
