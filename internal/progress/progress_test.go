package progress

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestReprintf_OverwritesLine(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	Reprintf("reading page %d...", 1)
	Reprintf("reading page %d...", 2)
	NewLine()

	out := buf.String()
	if !strings.Contains(out, "reading page 1...") {
		t.Errorf("missing first status line in %q", out)
	}
	if !strings.Contains(out, "reading page 2...") {
		t.Errorf("missing second status line in %q", out)
	}
	// The second Reprintf must return to line start before writing.
	if strings.Count(out, "\r") < 3 {
		t.Errorf("expected carriage returns between updates, got %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("expected trailing newline after NewLine, got %q", out)
	}
}
