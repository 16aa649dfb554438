// Package keys maps tcell key events to the key names used in the config.
package keys

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Normalize converts tcell key names to the config format.
// tcell outputs "Ctrl-C" (hyphen) for bare Ctrl keys but config uses "Ctrl+C" (plus).
func Normalize(name string) string {
	return strings.ReplaceAll(name, "Ctrl-", "Ctrl+")
}

// Name returns the config name of the key pressed in ev.
func Name(ev *tcell.EventKey) string {
	return Normalize(ev.Name())
}
