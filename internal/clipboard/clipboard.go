// Package clipboard copies the finished dork to the user's clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"strings"

	atotto "github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnavailable is returned when no clipboard mechanism is usable
var ErrUnavailable = errors.New("clipboard not available")

// Backend names accepted by New
const (
	BackendSystem = "system"
	BackendOSC52  = "osc52"
	BackendNone   = "none"
)

// Copier writes text to a clipboard
type Copier interface {
	Copy(text string) error
	Name() string
}

// New returns the copier for the named backend. The OSC 52 backend writes its
// escape sequence to w, which should be the terminal.
func New(backend string, w io.Writer) (Copier, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendSystem:
		return System{}, nil
	case BackendOSC52:
		return OSC52{w: w}, nil
	case BackendNone:
		return None{}, nil
	default:
		return nil, fmt.Errorf("unknown clipboard backend %q (want system, osc52 or none)", backend)
	}
}

// System uses the OS clipboard (pbcopy, xclip/xsel/wl-copy, or the Windows API)
type System struct{}

func (System) Name() string { return BackendSystem }

func (System) Copy(text string) error {
	if atotto.Unsupported {
		return ErrUnavailable
	}
	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

// OSC52 asks the terminal emulator to set the clipboard. Works over SSH as
// long as the terminal supports the sequence; there is no way to confirm it did.
type OSC52 struct {
	w io.Writer
}

func (OSC52) Name() string { return BackendOSC52 }

func (c OSC52) Copy(text string) error {
	if c.w == nil {
		return ErrUnavailable
	}
	if _, err := osc52.New(text).WriteTo(c.w); err != nil {
		return fmt.Errorf("failed to write osc52 sequence: %w", err)
	}
	return nil
}

// None never copies; the caller falls back to printing the text
type None struct{}

func (None) Name() string { return BackendNone }

func (None) Copy(string) error { return ErrUnavailable }
