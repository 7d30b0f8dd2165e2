// Package browser opens search URLs in the system's default browser.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Opener opens a URL for the user
type Opener interface {
	Open(url string) error
}

// System launches the platform's URL handler
type System struct{}

// Open starts the browser and returns without waiting for it (cross-platform)
func (System) Open(url string) error {
	cmd := Command(runtime.GOOS, url)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch browser: %w", err)
	}
	// Reap the launcher in the background so it doesn't linger as a zombie
	go cmd.Wait()
	return nil
}

// Command returns the launcher command for the given GOOS
func Command(goos, url string) *exec.Cmd {
	switch goos {
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		return exec.Command("open", url)
	default: // linux, freebsd, etc.
		return exec.Command("xdg-open", url)
	}
}
