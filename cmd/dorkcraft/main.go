package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/thesavant42/dorkcraft/internal/app"
	"github.com/thesavant42/dorkcraft/internal/browser"
	"github.com/thesavant42/dorkcraft/internal/clipboard"
	"github.com/thesavant42/dorkcraft/internal/config"
	"github.com/thesavant42/dorkcraft/internal/ui"
)

func main() {
	printer := ui.NewPrinter(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		report(printer, err)
		return
	}

	// The TUI needs a terminal; piped answers go through the line prompts
	stdinTTY := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	cfg.Accessible = useAccessible(cfg.Accessible, stdinTTY)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           cfg.LogLevel,
		ReportTimestamp: true,
		Prefix:          "dorkcraft",
	})
	logger.Debug("input mode", "tty", stdinTTY, "accessible", cfg.Accessible)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Accessible prompts block on a plain stdin read that ignores ctx, so a
	// Ctrl+C there has to end the process from here
	finished := make(chan struct{})
	if cfg.Accessible {
		go watchInterrupt(ctx, finished, func() {
			printInterrupted(printer)
			os.Exit(0)
		})
	}

	err = guard(logger, func() error {
		return run(ctx, cfg, printer, logger)
	})
	close(finished)
	report(printer, err)
}

// useAccessible forces line prompts when stdin is not a terminal
func useAccessible(configured, stdinTTY bool) bool {
	return configured || !stdinTTY
}

// watchInterrupt calls onInterrupt if ctx is cancelled while the session is
// still running. finished is closed before the deferred stop cancels ctx, so a
// normal exit never counts as an interrupt.
func watchInterrupt(ctx context.Context, finished <-chan struct{}, onInterrupt func()) {
	select {
	case <-finished:
	case <-ctx.Done():
		select {
		case <-finished:
		default:
			onInterrupt()
		}
	}
}

// guard turns a panic in fn into an error so it is reported like any other failure
func guard(logger *log.Logger, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Debug("recovered panic", "panic", r)
			err = fmt.Errorf("unexpected failure: %v", r)
		}
	}()
	return fn()
}

// report prints the outcome of a session
func report(printer *ui.Printer, err error) {
	switch {
	case err == nil:
	case errors.Is(err, ui.ErrInterrupted):
		printInterrupted(printer)
	default:
		printer.Blank()
		printer.Error(err.Error())
	}
}

func printInterrupted(printer *ui.Printer) {
	printer.Blank()
	printer.Blank()
	printer.Line("Interrupted. Exiting gracefully.")
}

// run wires the session from the config
func run(ctx context.Context, cfg config.Config, printer *ui.Printer, logger *log.Logger) error {
	copier, err := clipboard.New(cfg.Clipboard, os.Stdout)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "clipboard", copier.Name(), "accessible", cfg.Accessible, "root_domains", cfg.RootDomains)

	var opener browser.Opener = browser.System{}
	if cfg.Spinner && !cfg.Accessible {
		opener = ui.SpinnerOpener{Next: opener, Out: os.Stdout}
	}

	session := &app.App{
		Prompter:    ui.NewFormPrompter(os.Stdin, os.Stdout, cfg.Accessible),
		Clipboard:   copier,
		Browser:     opener,
		Printer:     printer,
		Logger:      logger,
		RootDomains: cfg.RootDomains,
	}
	return session.Run(ctx)
}
