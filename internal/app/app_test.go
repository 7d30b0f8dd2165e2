package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesavant42/dorkcraft/internal/clipboard"
	"github.com/thesavant42/dorkcraft/internal/models"
	"github.com/thesavant42/dorkcraft/internal/ui"
)

type fakePrompter struct {
	engine    string
	query     models.Query
	action    models.Action
	engineErr error
	queryErr  error
	actionErr error

	askedAction bool
}

func (f *fakePrompter) SelectEngine(context.Context) (string, error) {
	return f.engine, f.engineErr
}

func (f *fakePrompter) AskQuery(context.Context) (models.Query, error) {
	return f.query, f.queryErr
}

func (f *fakePrompter) SelectAction(context.Context) (models.Action, error) {
	f.askedAction = true
	return f.action, f.actionErr
}

type fakeCopier struct {
	err    error
	copied []string
}

func (c *fakeCopier) Name() string { return "fake" }

func (c *fakeCopier) Copy(text string) error {
	if c.err != nil {
		return c.err
	}
	c.copied = append(c.copied, text)
	return nil
}

type fakeOpener struct {
	err    error
	opened []string
}

func (o *fakeOpener) Open(url string) error {
	if o.err != nil {
		return o.err
	}
	o.opened = append(o.opened, url)
	return nil
}

type harness struct {
	app      *App
	out      *bytes.Buffer
	prompter *fakePrompter
	copier   *fakeCopier
	opener   *fakeOpener
}

func newHarness(p *fakePrompter) *harness {
	var out bytes.Buffer
	h := &harness{
		out:      &out,
		prompter: p,
		copier:   &fakeCopier{},
		opener:   &fakeOpener{},
	}
	h.app = &App{
		Prompter:  p,
		Clipboard: h.copier,
		Browser:   h.opener,
		Printer:   ui.NewPrinter(&out),
		Logger:    log.New(io.Discard),
	}
	return h
}

func TestRunBoth(t *testing.T) {
	h := newHarness(&fakePrompter{
		engine: "2",
		query:  models.Query{Domain: "x.com,y.com", FileType: "pdf"},
		action: models.ActionBoth,
	})

	require.NoError(t, h.app.Run(context.Background()))

	wantDork := "(site:x.com OR site:y.com) filetype:pdf"
	wantURL := "https://duckduckgo.com/?q=%28site%3Ax.com+OR+site%3Ay.com%29+filetype%3Apdf"

	assert.Equal(t, []string{wantDork}, h.copier.copied)
	assert.Equal(t, []string{wantURL}, h.opener.opened)

	out := h.out.String()
	assert.Contains(t, out, "Using: DUCKDUCKGO")
	assert.Contains(t, out, "Building your dork...")
	assert.Contains(t, out, wantDork)
	assert.Contains(t, out, wantURL)
	assert.Contains(t, out, "Dork copied to clipboard!")
	assert.Contains(t, out, "Opening search in duckduckgo...")
	assert.Contains(t, out, "Done! Thanks for using DorkCraft CLI.")
}

func TestRunActions(t *testing.T) {
	tests := []struct {
		action     models.Action
		wantCopies int
		wantOpens  int
	}{
		{models.ActionCopy, 1, 0},
		{models.ActionOpen, 0, 1},
		{models.ActionBoth, 1, 1},
		{models.ActionExit, 0, 0},
		{models.Action("9"), 0, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			h := newHarness(&fakePrompter{
				engine: "1",
				query:  models.Query{Title: "login"},
				action: tt.action,
			})

			require.NoError(t, h.app.Run(context.Background()))
			assert.Len(t, h.copier.copied, tt.wantCopies)
			assert.Len(t, h.opener.opened, tt.wantOpens)
			assert.Contains(t, h.out.String(), "Done! Thanks for using DorkCraft CLI.")
		})
	}
}

func TestRunNoParameters(t *testing.T) {
	tests := []struct {
		name  string
		query models.Query
	}{
		{"all empty", models.Query{}},
		{"whitespace", models.Query{Domain: "  ", Exact: "\t"}},
		{"only separators", models.Query{Title: ",", URL: " , ,"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(&fakePrompter{engine: "1", query: tt.query, action: models.ActionBoth})

			require.NoError(t, h.app.Run(context.Background()))

			assert.Contains(t, h.out.String(), "No parameters provided. Exiting.")
			assert.NotContains(t, h.out.String(), "Generated Dork")
			assert.False(t, h.prompter.askedAction)
			assert.Empty(t, h.copier.copied)
			assert.Empty(t, h.opener.opened)
		})
	}
}

func TestRunInvalidEngineFallsBackToGoogle(t *testing.T) {
	h := newHarness(&fakePrompter{
		engine: "7",
		query:  models.Query{Exact: "a, b"},
		action: models.ActionOpen,
	})

	require.NoError(t, h.app.Run(context.Background()))

	assert.Contains(t, h.out.String(), "Invalid choice, using Google")
	assert.Contains(t, h.out.String(), "Using: GOOGLE")
	require.Len(t, h.opener.opened, 1)
	assert.Equal(t, "https://www.google.com/search?q=%28%22a%22+OR+%22b%22%29", h.opener.opened[0])
}

func TestRunClipboardUnavailable(t *testing.T) {
	h := newHarness(&fakePrompter{
		engine: "1",
		query:  models.Query{Text: "password"},
		action: models.ActionCopy,
	})
	h.copier.err = clipboard.ErrUnavailable

	require.NoError(t, h.app.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "Warning: Clipboard not available")
	assert.Contains(t, out, `Manually copy: intext:"password"`)
	assert.Contains(t, out, "Done! Thanks for using DorkCraft CLI.")
}

func TestRunClipboardFailure(t *testing.T) {
	h := newHarness(&fakePrompter{
		engine: "1",
		query:  models.Query{URL: "admin"},
		action: models.ActionBoth,
	})
	h.copier.err = errors.New("failed to write clipboard: exit status 1")

	require.NoError(t, h.app.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "Warning: failed to write clipboard: exit status 1")
	assert.Contains(t, out, "Manually copy: inurl:admin")
	assert.Len(t, h.opener.opened, 1, "browser still opens after a clipboard failure")
}

func TestRunBrowserFailure(t *testing.T) {
	h := newHarness(&fakePrompter{
		engine: "3",
		query:  models.Query{FileType: "xls"},
		action: models.ActionOpen,
	})
	h.opener.err = errors.New("failed to launch browser: exec: \"xdg-open\": executable file not found in $PATH")

	require.NoError(t, h.app.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "Opening search in bing...")
	assert.Contains(t, out, "Open manually: https://www.bing.com/search?q=filetype%3Axls")
}

func TestRunInterrupted(t *testing.T) {
	tests := []struct {
		name     string
		prompter *fakePrompter
	}{
		{"engine prompt", &fakePrompter{engineErr: ui.ErrInterrupted}},
		{"field prompts", &fakePrompter{engine: "1", queryErr: ui.ErrInterrupted}},
		{"action prompt", &fakePrompter{engine: "1", query: models.Query{Domain: "a.com"}, actionErr: ui.ErrInterrupted}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(tt.prompter)

			err := h.app.Run(context.Background())
			assert.ErrorIs(t, err, ui.ErrInterrupted)
			assert.Empty(t, h.copier.copied)
			assert.Empty(t, h.opener.opened)
			assert.NotContains(t, h.out.String(), "Done!")
		})
	}
}

func TestRunBrowserInterrupted(t *testing.T) {
	h := newHarness(&fakePrompter{engine: "1", query: models.Query{Domain: "a.com"}, action: models.ActionOpen})
	h.opener.err = ui.ErrInterrupted

	assert.ErrorIs(t, h.app.Run(context.Background()), ui.ErrInterrupted)
}

func TestRunRootDomains(t *testing.T) {
	h := newHarness(&fakePrompter{
		engine: "1",
		query:  models.Query{Domain: "https://playground.bfl.ai/, docs.bfl.ai"},
		action: models.ActionCopy,
	})
	h.app.RootDomains = true

	require.NoError(t, h.app.Run(context.Background()))
	assert.Equal(t, []string{"site:bfl.ai"}, h.copier.copied)
}

func TestRunPromptFailure(t *testing.T) {
	failed := errors.New("prompt failed: could not open a new TTY")
	h := newHarness(&fakePrompter{engineErr: failed})

	err := h.app.Run(context.Background())
	assert.ErrorIs(t, err, failed)
	assert.NotErrorIs(t, err, ui.ErrInterrupted)
}
