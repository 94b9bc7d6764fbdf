package term_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fardannozami/health-coach/internal/infra/term"
)

func TestPrompter_Prompt(t *testing.T) {
	var out bytes.Buffer
	p := term.NewPrompter(strings.NewReader("  Alice \nsecond\n"), &out)

	got, err := p.Prompt(context.Background(), "Name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Alice" {
		t.Errorf("expected trimmed 'Alice', got '%s'", got)
	}
	if out.String() != "Name: " {
		t.Errorf("unexpected prompt output %q", out.String())
	}

	got, _ = p.Prompt(context.Background(), "Next")
	if got != "second" {
		t.Errorf("expected 'second', got '%s'", got)
	}
}

func TestPrompter_PromptSecret_NonTTY(t *testing.T) {
	var out bytes.Buffer
	p := term.NewPrompter(strings.NewReader("hf_abc123"), &out)

	got, err := p.PromptSecret(context.Background(), "API key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hf_abc123" {
		t.Errorf("expected line without trailing newline to be read, got '%s'", got)
	}
	if strings.Contains(out.String(), "hf_abc123") {
		t.Error("secret must not be echoed to output")
	}
}

func TestPrompter_EOF(t *testing.T) {
	p := term.NewPrompter(strings.NewReader(""), &bytes.Buffer{})

	got, err := p.PromptSecret(context.Background(), "API key")
	if err != nil {
		t.Fatalf("EOF should read as empty answer, got %v", err)
	}
	if got != "" {
		t.Errorf("expected empty answer, got '%s'", got)
	}
}

func TestPrompter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := term.NewPrompter(strings.NewReader("x\n"), &bytes.Buffer{})
	if _, err := p.Prompt(ctx, "Name"); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestPrompter_Confirm(t *testing.T) {
	cases := map[string]bool{"y\n": true, "YES\n": true, "n\n": false, "\n": false, "maybe\n": false}
	for input, want := range cases {
		p := term.NewPrompter(strings.NewReader(input), &bytes.Buffer{})
		got, err := p.Confirm(context.Background(), "Log out?")
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", input, err)
		}
		if got != want {
			t.Errorf("Confirm(%q): expected %v, got %v", input, want, got)
		}
	}
}

func TestLinkOpener_PrintsURL(t *testing.T) {
	var out bytes.Buffer
	o := term.NewLinkOpener(&out, false)

	if err := o.Open("https://www.youtube.com/results?search_query=squat"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "https://www.youtube.com/results?search_query=squat") {
		t.Errorf("expected URL in output, got %q", out.String())
	}
}

func TestLinkOpener_QR(t *testing.T) {
	var plain, withQR bytes.Buffer
	_ = term.NewLinkOpener(&plain, false).Open("https://example.com")
	_ = term.NewLinkOpener(&withQR, true).Open("https://example.com")

	if withQR.Len() <= plain.Len() {
		t.Error("expected QR code to add output")
	}
}

func TestShowDialog(t *testing.T) {
	var out bytes.Buffer
	term.ShowDialog(&out, "Incomplete", "please fill in all required fields")
	if out.String() != "Incomplete: please fill in all required fields\n" {
		t.Errorf("unexpected dialog %q", out.String())
	}
}
