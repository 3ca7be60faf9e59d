// Package ui provides an interactive progress view for a package lookup.
package ui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// RunFunc performs the lookup, writing its report to w
type RunFunc func(ctx context.Context, w io.Writer) error

type queryDoneMsg struct {
	out []byte
	err error
}

type keyMap struct {
	Quit key.Binding
}

// QueryModel shows a spinner while a lookup runs and keeps its report
type QueryModel struct {
	label   string
	start   tea.Cmd
	cancel  context.CancelFunc
	spinner spinner.Model
	keys    keyMap

	out  []byte
	done bool
	err  error
}

// NewQueryModel creates the view. label describes what is being looked up.
// The lookup runs under a context derived from ctx that is canceled on quit.
func NewQueryModel(ctx context.Context, label string, run RunFunc) *QueryModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	ctx, cancel := context.WithCancel(ctx)
	return &QueryModel{
		label:   label,
		start:   startQuery(ctx, run),
		cancel:  cancel,
		spinner: s,
		keys: keyMap{
			Quit: key.NewBinding(
				key.WithKeys("q", "ctrl+c", "esc"),
				key.WithHelp("q", "cancel"),
			),
		},
	}
}

// startQuery runs the lookup into its own buffer; the report only reaches
// the model through queryDoneMsg.
func startQuery(ctx context.Context, run RunFunc) tea.Cmd {
	return func() tea.Msg {
		var buf bytes.Buffer
		err := run(ctx, &buf)
		return queryDoneMsg{out: buf.Bytes(), err: err}
	}
}

// Init implements tea.Model
func (m *QueryModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.start)
}

// Update implements tea.Model
func (m *QueryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.cancel()
			m.done = true
			m.err = context.Canceled
			return m, tea.Quit
		}

	case queryDoneMsg:
		if m.done {
			return m, nil
		}
		m.cancel()
		m.done = true
		m.out = msg.out
		m.err = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model
func (m *QueryModel) View() string {
	if m.done {
		if m.err != nil && !errors.Is(m.err, context.Canceled) {
			return ErrorStyle.Render("✗ "+m.label) + "\n"
		}
		return ""
	}
	return fmt.Sprintf("%s %s\n%s\n", m.spinner.View(), m.label,
		HelpStyle.Render(m.keys.Quit.Help().Key+" "+m.keys.Quit.Help().Desc))
}

// Output returns the finished report. It is empty if the user quit first.
func (m *QueryModel) Output() []byte {
	return m.out
}

// Err returns the lookup error, or context.Canceled if the user quit
func (m *QueryModel) Err() error {
	return m.err
}

// Run shows the spinner on progress while run executes, then writes the
// report to out. Nothing is written when the user quit the lookup.
func Run(ctx context.Context, label string, run RunFunc, out, progress io.Writer) error {
	return runProgram(ctx, label, run, out, tea.WithOutput(progress))
}

func runProgram(ctx context.Context, label string, run RunFunc, out io.Writer, opts ...tea.ProgramOption) error {
	m := NewQueryModel(ctx, label, run)
	defer m.cancel()

	p := tea.NewProgram(m, append(opts, tea.WithContext(ctx))...)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running interactive view: %w", err)
	}

	qm := final.(*QueryModel)
	if errors.Is(qm.Err(), context.Canceled) {
		return qm.Err()
	}
	if _, err := out.Write(qm.Output()); err != nil {
		return err
	}
	return qm.Err()
}
