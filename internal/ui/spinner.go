package ui

// spinner.go provides a blocking spinner for short side effects such as
// launching the browser.

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thesavant42/dorkcraft/internal/browser"
)

// actionDoneMsg signals the action completed
type actionDoneMsg struct {
	err error
}

// blockingSpinnerModel runs a spinner while an action executes
type blockingSpinnerModel struct {
	spinner     spinner.Model
	title       string
	action      func() error
	done        bool
	interrupted bool
	err         error
}

// RunWithSpinner executes an action while displaying a spinner on out and
// returns the action's error. Ctrl+C stops waiting and returns ErrInterrupted.
//
// Example:
//
//	err := RunWithSpinner(os.Stdout, "Opening browser...", func() error {
//	    return opener.Open(url)
//	})
func RunWithSpinner(out io.Writer, title string, action func() error) error {
	m := blockingSpinnerModel{
		spinner: NewAppSpinner(),
		title:   title,
		action:  action,
	}

	p := tea.NewProgram(m, tea.WithOutput(out))
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("spinner program error: %w", err)
	}

	final := finalModel.(blockingSpinnerModel)
	if final.interrupted {
		return ErrInterrupted
	}
	return final.err
}

func (m blockingSpinnerModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.runAction(),
	)
}

func (m blockingSpinnerModel) runAction() tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{err: m.action()}
	}
}

func (m blockingSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case actionDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.done = true
			m.interrupted = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m blockingSpinnerModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.title)
}

// SpinnerOpener shows a spinner while the wrapped opener launches the browser
type SpinnerOpener struct {
	Next browser.Opener
	Out  io.Writer
}

func (o SpinnerOpener) Open(url string) error {
	return RunWithSpinner(o.Out, "Launching browser...", func() error {
		return o.Next.Open(url)
	})
}
