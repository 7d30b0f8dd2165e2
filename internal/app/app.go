// Package app sequences the interactive dork-building session.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/thesavant42/dorkcraft/internal/browser"
	"github.com/thesavant42/dorkcraft/internal/clipboard"
	"github.com/thesavant42/dorkcraft/internal/dork"
	"github.com/thesavant42/dorkcraft/internal/models"
	"github.com/thesavant42/dorkcraft/internal/ui"
)

// Prompter asks the user the three rounds of questions
type Prompter interface {
	SelectEngine(ctx context.Context) (string, error)
	AskQuery(ctx context.Context) (models.Query, error)
	SelectAction(ctx context.Context) (models.Action, error)
}

// App holds everything one session needs
type App struct {
	Prompter    Prompter
	Clipboard   clipboard.Copier
	Browser     browser.Opener
	Printer     *ui.Printer
	Logger      *log.Logger
	RootDomains bool
}

// Run walks the user through one dork. It returns ui.ErrInterrupted if the
// user aborts; a run that ends with "no parameters" is not an error.
func (a *App) Run(ctx context.Context) error {
	p := a.Printer
	if a.Logger == nil {
		a.Logger = log.Default()
	}

	p.Banner()
	p.Blank()
	p.Line("Welcome! Let's build your search dork interactively.")
	p.Hint("Tip: Use commas to separate multiple values (they'll be OR'd together)")
	p.Separator()

	choice, err := a.Prompter.SelectEngine(ctx)
	if err != nil {
		return err
	}
	engine, ok := dork.SelectEngine(choice)
	if !ok {
		p.Warning(fmt.Sprintf("Invalid choice, using %s", engine.Label))
	}
	a.Logger.Debug("engine selected", "choice", choice, "engine", engine.Name)

	p.Title("Using: " + strings.ToUpper(engine.Name))
	p.Separator()

	query, err := a.Prompter.AskQuery(ctx)
	if err != nil {
		return err
	}

	var opts []dork.Option
	if a.RootDomains {
		opts = append(opts, dork.WithRootDomains())
	}

	var result string
	if !query.IsEmpty() {
		result = dork.Build(query, opts...)
	}
	if result == "" {
		p.Blank()
		p.Error("No parameters provided. Exiting.")
		return nil
	}

	p.Separator()
	p.Title("Building your dork...")
	a.Logger.Debug("dork built", "dork", result)

	searchURL := dork.SearchURL(engine, result)

	p.Separator()
	p.Dork(result)
	p.Separator()
	p.URL(searchURL)
	p.Separator()

	action, err := a.Prompter.SelectAction(ctx)
	if err != nil {
		return err
	}
	a.Logger.Debug("action selected", "action", string(action))

	if action.Copies() {
		a.copy(result)
	}

	if action.Opens() {
		if err := a.open(engine, searchURL); err != nil {
			return err
		}
	}

	p.Blank()
	p.Success("Done! Thanks for using DorkCraft CLI.")
	p.Blank()
	return nil
}

func (a *App) copy(text string) {
	p := a.Printer

	err := a.Clipboard.Copy(text)
	if err == nil {
		p.Blank()
		p.Success("Dork copied to clipboard!")
		return
	}

	a.Logger.Debug("clipboard copy failed", "backend", a.Clipboard.Name(), "err", err)
	p.Blank()
	if errors.Is(err, clipboard.ErrUnavailable) {
		p.Warning("Clipboard not available. Install xclip, xsel or wl-clipboard, or set DORKCRAFT_CLIPBOARD=osc52")
	} else {
		p.Warning(err.Error())
	}
	p.Blank()
	p.Line("Manually copy: " + text)
}

func (a *App) open(engine models.Engine, searchURL string) error {
	p := a.Printer

	p.Blank()
	p.Line(fmt.Sprintf("Opening search in %s...", engine.Name))

	err := a.Browser.Open(searchURL)
	if err == nil {
		a.Logger.Debug("browser launched", "url", searchURL)
		return nil
	}
	if errors.Is(err, ui.ErrInterrupted) {
		return err
	}

	a.Logger.Debug("browser launch failed", "err", err)
	p.Warning(err.Error())
	p.Line("Open manually: " + searchURL)
	return nil
}
