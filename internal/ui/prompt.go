package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/thesavant42/dorkcraft/internal/dork"
	"github.com/thesavant42/dorkcraft/internal/models"
)

// ErrInterrupted is returned when the user aborts a prompt (Ctrl+C) or the
// run context is cancelled
var ErrInterrupted = errors.New("interrupted")

// sanitizeInput removes null bytes and other invisible control characters from input
func sanitizeInput(s string) string {
	// Remove null bytes and other control characters (except whitespace)
	result := strings.Map(func(r rune) rune {
		// Keep printable characters and normal whitespace (space, tab, newline)
		if r == 0 || (r < 32 && r != '\t' && r != '\n' && r != '\r') {
			return -1 // Remove the character
		}
		return r
	}, s)
	return result
}

// FormPrompter asks the questions with huh forms
type FormPrompter struct {
	In         io.Reader
	Out        io.Writer
	Accessible bool // plain line prompts instead of the TUI
}

// NewFormPrompter creates a prompter reading in and writing out. In accessible
// mode the input is read one line at a time so every prompt gets its own answer.
func NewFormPrompter(in io.Reader, out io.Writer, accessible bool) FormPrompter {
	if accessible && in != nil {
		in = NewLineReader(in)
	}
	return FormPrompter{In: in, Out: out, Accessible: accessible}
}

func (p FormPrompter) run(ctx context.Context, groups ...*huh.Group) error {
	form := huh.NewForm(groups...).
		WithTheme(NewAppTheme()).
		WithAccessible(p.Accessible).
		WithShowHelp(true)
	if p.In != nil {
		form = form.WithInput(p.In)
	}
	if p.Out != nil {
		form = form.WithOutput(p.Out)
	}

	err := form.RunWithContext(ctx)
	if err != nil && ctx.Err() != nil {
		return ErrInterrupted
	}
	return formError(err)
}

// formError maps user aborts and cancellation to ErrInterrupted
func formError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, huh.ErrUserAborted), errors.Is(err, tea.ErrProgramKilled), errors.Is(err, context.Canceled):
		return ErrInterrupted
	default:
		return fmt.Errorf("prompt failed: %w", err)
	}
}

// SelectEngine asks which search engine to build the URL for and returns the
// menu key of the choice
func (p FormPrompter) SelectEngine(ctx context.Context) (string, error) {
	choice := dork.DefaultEngine().Key

	options := make([]huh.Option[string], len(dork.Engines))
	for i, e := range dork.Engines {
		label := e.Label
		if e.Key == choice {
			label += " (default)"
		}
		options[i] = huh.NewOption(label, e.Key)
	}

	err := p.run(ctx, huh.NewGroup(
		huh.NewSelect[string]().
			Title("Select Search Engine").
			Options(options...).
			Value(&choice),
	))
	if err != nil {
		return "", err
	}
	return choice, nil
}

// AskQuery asks for every field in build order. Empty answers skip the field.
func (p FormPrompter) AskQuery(ctx context.Context) (models.Query, error) {
	answers := make([]string, len(dork.Fields))

	inputs := make([]huh.Field, len(dork.Fields))
	for i, f := range dork.Fields {
		inputs[i] = huh.NewInput().
			Title(f.Title).
			Description(f.Hint + "  [Enter to skip]").
			Value(&answers[i])
	}

	if err := p.run(ctx, huh.NewGroup(inputs...).
		Title("Enter your search parameters").
		Description("Use commas to separate multiple values (they'll be OR'd together)")); err != nil {
		return models.Query{}, err
	}

	var q models.Query
	for i, f := range dork.Fields {
		dork.SetFieldValue(&q, f.Key, strings.TrimSpace(sanitizeInput(answers[i])))
	}
	return q, nil
}

// SelectAction asks what to do with the finished dork
func (p FormPrompter) SelectAction(ctx context.Context) (models.Action, error) {
	choice := string(models.ActionExit)

	err := p.run(ctx, huh.NewGroup(
		huh.NewSelect[string]().
			Title("What would you like to do?").
			Options(
				huh.NewOption("Copy dork to clipboard", string(models.ActionCopy)),
				huh.NewOption("Open search in browser", string(models.ActionOpen)),
				huh.NewOption("Both", string(models.ActionBoth)),
				huh.NewOption("Exit", string(models.ActionExit)),
			).
			Value(&choice),
	))
	if err != nil {
		return "", err
	}
	return models.Action(choice), nil
}
