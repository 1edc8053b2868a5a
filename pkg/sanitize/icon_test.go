package sanitize

import (
	"strings"
	"testing"
)

func TestIconRemovesScripts(t *testing.T) {
	input := `  <svg viewBox="0 0 24 24" onload="alert(1)"><script>alert('x')</script><path d="M0 0h24v24H0z" /></svg>`
	got := Icon(input)
	if got == "" {
		t.Fatalf("expected sanitized markup, got empty string")
	}
	if strings.Contains(got, "script") || strings.Contains(got, "onload") {
		t.Fatalf("expected script and handlers to be removed, got %q", got)
	}
	if !strings.Contains(got, "<svg") || !strings.Contains(got, "<path") {
		t.Fatalf("expected svg/path elements to remain, got %q", got)
	}
}

func TestIconDropsForeignMarkup(t *testing.T) {
	if got := Icon(`<iframe src="https://example.com"></iframe>`); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
	if got := Icon("   "); got != "" {
		t.Fatalf("expected empty output for blank input, got %q", got)
	}
}
