// Package help prints the command catalog for humans.
package help

import (
	"fmt"
	"io"
	"strings"

	"github.com/louisbranch/chrome-devtools-cli/internal/services/devtools/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Default returns the default language tag.
func Default() language.Tag {
	return language.AmericanEnglish
}

// ResolveTag parses a locale such as "en-US", falling back to Default.
func ResolveTag(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return Default()
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return Default()
	}
	return tag
}

// Printer writes catalog listings to an output stream.
type Printer struct {
	out io.Writer
	loc *message.Printer
}

// NewPrinter returns a printer that formats for tag. Locales without a
// translation print English.
func NewPrinter(out io.Writer, tag language.Tag) *Printer {
	return &Printer{
		out: out,
		loc: message.NewPrinter(tag, message.Catalog(messages)),
	}
}

// PrintAvailableCommands writes a header and one numbered line per command.
func (p *Printer) PrintAvailableCommands() {
	p.line(keyAvailable)
	for i, cmd := range domain.Commands() {
		p.line(keyEntry, i+1, cmd.Name, cmd.Description)
	}
}

// PrintCommandDetail writes the description and parameters of one command.
// Blank or unknown names print a notice followed by the full list.
func (p *Printer) PrintCommandDetail(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		p.line(keyMissingName)
		p.PrintAvailableCommands()
		return
	}

	cmd, ok := domain.Lookup(name)
	if !ok {
		p.line(keyUnknown, name)
		p.PrintAvailableCommands()
		return
	}

	p.line(keyCommand, cmd.Name)
	p.line(keyDescription, cmd.Description)
	if domain.RequiresSnapshot(cmd.Name) {
		p.line(keyPriming, domain.SnapshotTool)
	}
	p.loc.Fprintln(p.out, cmd.Detail)
}

func (p *Printer) line(key string, args ...any) {
	fmt.Fprintln(p.out, p.loc.Sprintf(key, args...))
}
