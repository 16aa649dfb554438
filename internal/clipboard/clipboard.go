// Package clipboard moves text through the system clipboard using the
// platform's clipboard commands.
package clipboard

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"sync"
)

// ErrNoProvider is returned when no clipboard command was found.
var ErrNoProvider = errors.New("clipboard: no clipboard command available")

// Clipboard reads and writes text.
type Clipboard interface {
	WriteText(text string) error
	ReadText() (string, error)
}

// Available reports whether c has a working provider. Clipboards that do
// not report availability are assumed to work.
func Available(c Clipboard) bool {
	a, ok := c.(interface{ Available() bool })
	return !ok || a.Available()
}

// provider caches the detected clipboard provider on first use.
var (
	providerOnce sync.Once
	copyCmd      []string
	pasteCmd     []string
)

func detectProvider() {
	providerOnce.Do(func() {
		copyCmd, pasteCmd = commandsFor(runtime.GOOS, hasCommand)
	})
}

// commandsFor picks the copy and paste commands for an OS, given a way to
// check which commands are installed.
func commandsFor(goos string, has func(string) bool) (copyArgs, pasteArgs []string) {
	switch goos {
	case "darwin":
		return []string{"pbcopy"}, []string{"pbpaste"}
	case "windows":
		return []string{"clip.exe"}, []string{"powershell.exe", "-NoProfile", "-Command", "Get-Clipboard"}
	}

	// Linux, FreeBSD, etc.
	// Prefer wl-copy/wl-paste for Wayland, fall back to xclip, then xsel.
	switch {
	case has("wl-copy"):
		return []string{"wl-copy"}, []string{"wl-paste", "--no-newline"}
	case has("xclip"):
		return []string{"xclip", "-selection", "clipboard"}, []string{"xclip", "-selection", "clipboard", "-o"}
	case has("xsel"):
		return []string{"xsel", "--clipboard", "--input"}, []string{"xsel", "--clipboard", "--output"}
	}
	return nil, nil
}

// hasCommand checks if a command is available in PATH.
func hasCommand(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// System is the clipboard of the machine the process runs on.
type System struct{}

// Available returns true if a clipboard provider was detected.
func (System) Available() bool {
	detectProvider()
	return len(copyCmd) > 0 && len(pasteCmd) > 0
}

// WriteText copies text to the system clipboard.
func (System) WriteText(text string) error {
	detectProvider()
	if len(copyCmd) == 0 {
		return ErrNoProvider
	}

	cmd := exec.Command(copyCmd[0], copyCmd[1:]...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("clipboard: copy failed: %w", err)
	}
	return nil
}

// ReadText returns text from the system clipboard, without the trailing
// newline some providers append.
func (System) ReadText() (string, error) {
	detectProvider()
	if len(pasteCmd) == 0 {
		return "", ErrNoProvider
	}

	cmd := exec.Command(pasteCmd[0], pasteCmd[1:]...)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("clipboard: paste failed: %w", err)
	}
	return strings.TrimRight(string(out), "\r\n"), nil
}
