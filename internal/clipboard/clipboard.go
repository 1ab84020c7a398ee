// Package clipboard copies text to the system clipboard without ever failing loudly.
package clipboard

import (
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
)

// writeAll and unsupported are swapped out in tests.
var (
	writeAll    = clipboard.WriteAll
	unsupported = func() bool { return clipboard.Unsupported }
)

// Copy writes text to the system clipboard and reports whether it succeeded.
// Blank text is refused, and platform failures are logged and reported as false.
func Copy(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	if unsupported() {
		slog.Debug("clipboard unavailable on this platform")
		return false
	}
	if err := writeAll(text); err != nil {
		slog.Debug("clipboard write failed", "error", err)
		return false
	}
	return true
}
