// Package progress implements same-line terminal progress output for
// verbose mode. Reprintf repeatedly overwrites one status line; NewLine
// finishes it.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

var (
	mu      sync.Mutex
	out     io.Writer = os.Stdout
	lastLen int
)

// SetOutput redirects progress output. Mainly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	lastLen = 0
}

// Reprintf overwrites the current status line with the formatted text.
func Reprintf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	text := fmt.Sprintf(format, args...)
	// Blank out whatever the previous line left behind.
	fmt.Fprintf(out, "\r%s\r%s", strings.Repeat(" ", lastLen), text)
	lastLen = len(text)
}

// NewLine finishes the status line and moves to a fresh one.
func NewLine() {
	mu.Lock()
	defer mu.Unlock()

	fmt.Fprint(out, "\n")
	lastLen = 0
}
