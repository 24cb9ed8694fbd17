package help

import (
	"bytes"
	"strings"
	"testing"

	"github.com/louisbranch/chrome-devtools-cli/internal/services/devtools/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func newTestPrinter() (*Printer, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewPrinter(&buf, language.AmericanEnglish), &buf
}

func TestPrintAvailableCommands(t *testing.T) {
	p, buf := newTestPrinter()
	p.PrintAvailableCommands()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if want := len(domain.Commands()) + 1; len(lines) != want {
		t.Fatalf("expected %d lines, got %d", want, len(lines))
	}
	if lines[0] != "Available commands:" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1. click - ") {
		t.Fatalf("unexpected first entry %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "2. close_page - ") {
		t.Fatalf("unexpected second entry %q", lines[2])
	}
	out := buf.String()
	if !strings.Contains(out, "navigate_page") {
		t.Fatal("expected navigate_page in listing")
	}
	if !strings.Contains(out, "Clicks on the provided element") {
		t.Fatal("expected click description in listing")
	}
}

func TestPrintCommandDetail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		listsAll bool
		snapshot bool
	}{
		{name: "known", input: "navigate_page", contains: []string{"navigate_page", "Navigates", "url"}},
		{name: "trimmed", input: "  click  ", contains: []string{"click", "Clicks on the provided element", "uid"}, snapshot: true},
		{name: "unknown", input: "unknown_command", contains: []string{"Unknown command: unknown_command"}, listsAll: true},
		{name: "empty", input: "", contains: []string{"Please provide a command name"}, listsAll: true},
		{name: "whitespace", input: "   ", contains: []string{"Please provide a command name"}, listsAll: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, buf := newTestPrinter()
			p.PrintCommandDetail(tt.input)
			out := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Fatalf("expected output to contain %q, got:\n%s", want, out)
				}
			}
			if got := strings.Contains(out, "Available commands:"); got != tt.listsAll {
				t.Fatalf("expected full list printed = %v, got:\n%s", tt.listsAll, out)
			}
			if got := strings.Contains(out, domain.SnapshotTool+" first"); got != tt.snapshot {
				t.Fatalf("expected snapshot note = %v, got:\n%s", tt.snapshot, out)
			}
		})
	}
}

func TestPrintCommandDetailForEveryCommand(t *testing.T) {
	for _, name := range domain.Names() {
		p, buf := newTestPrinter()
		p.PrintCommandDetail(name)
		if !strings.Contains(buf.String(), "Command: "+name) {
			t.Fatalf("expected detail for %s, got:\n%s", name, buf.String())
		}
	}
}

func TestResolveTag(t *testing.T) {
	if got := ResolveTag(""); got != Default() {
		t.Fatalf("expected default tag, got %v", got)
	}
	if got := ResolveTag("not a locale!"); got != Default() {
		t.Fatalf("expected default for invalid locale, got %v", got)
	}
	if got := ResolveTag(" pt-BR "); got != language.MustParse("pt-BR") {
		t.Fatalf("expected pt-BR, got %v", got)
	}
}

func TestPrinterTranslatesForPortuguese(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, ResolveTag("pt-BR"))
	p.PrintCommandDetail("unknown_command")

	out := buf.String()
	for _, want := range []string{"Comando desconhecido: unknown_command\n", "Comandos disponíveis:\n", "1. click - "} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}

	buf.Reset()
	p.PrintCommandDetail("hover")
	if !strings.Contains(buf.String(), "Executa take_snapshot antes") {
		t.Fatalf("expected translated snapshot note, got:\n%s", buf.String())
	}
}

func TestPrinterFallsBackToEnglish(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, ResolveTag("de-DE"))
	p.PrintCommandDetail("")

	if !strings.HasPrefix(buf.String(), "Please provide a command name.\nAvailable commands:\n") {
		t.Fatalf("expected English output, got:\n%s", buf.String())
	}
}

func TestCatalogCoversEnglishKeys(t *testing.T) {
	builder, err := newCatalog()
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	for key := range translations[language.Und] {
		for _, tag := range []language.Tag{language.AmericanEnglish, language.BrazilianPortuguese} {
			p := message.NewPrinter(tag, message.Catalog(builder))
			if got := p.Sprintf(key); got == key {
				t.Fatalf("%s: key %q not translated", tag, key)
			}
		}
	}
}
