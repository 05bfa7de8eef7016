package catalog

import (
	"strings"
	"testing"
)

func TestSanitizeIconMarkupRemovesScripts(t *testing.T) {
	input := `  <svg viewBox="0 0 24 24"><script>alert('x')</script><path d="M0 0h24v24H0z" /></svg>`
	got := sanitizeIconMarkup(input)
	if got == "" {
		t.Fatalf("expected sanitized markup, got empty string")
	}
	if strings.Contains(got, "script") {
		t.Fatalf("expected script tag to be removed, got %q", got)
	}
	if !strings.Contains(got, "<svg") || !strings.Contains(got, "<path") {
		t.Fatalf("expected svg and path elements to remain, got %q", got)
	}
}

func TestSanitizeIconMarkupStripsEventHandlers(t *testing.T) {
	input := `<svg viewBox="0 0 24 24"><circle cx="12" cy="12" r="9" onclick="steal()"/></svg>`
	got := sanitizeIconMarkup(input)
	if strings.Contains(got, "onclick") {
		t.Fatalf("expected event handler to be stripped, got %q", got)
	}
	if !strings.Contains(got, "<circle") {
		t.Fatalf("expected circle element to remain, got %q", got)
	}
}

func TestSanitizeIconMarkupEmptyInput(t *testing.T) {
	if got := sanitizeIconMarkup("   "); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
}
