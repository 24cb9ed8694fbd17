package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"

	apperrors "github.com/louisbranch/chrome-devtools-cli/internal/platform/errors"
)

// Invocation is one command line: a tool name, its raw JSON arguments and an
// optional flag token.
type Invocation struct {
	Command string
	Args    string
	Flag    string
}

// Echo renders the non-empty invocation tokens separated by spaces.
func (inv Invocation) Echo() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{inv.Command, inv.Args, inv.Flag} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

// Headless reports whether the flag token selects headless mode.
func (inv Invocation) Headless() bool {
	return inv.Flag == HeadlessFlag
}

// ParseArguments decodes a JSON object into tool arguments.
// Blank input and a literal null yield an empty mapping.
func ParseArguments(raw string) (map[string]any, error) {
	if strings.TrimSpace(raw) == "" {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var args map[string]any
	if err := dec.Decode(&args); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidArguments, "invalid JSON arguments", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, apperrors.New(apperrors.CodeInvalidArguments, "invalid JSON arguments: unexpected data after object")
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}

// writeResult prints v as two-space indented JSON without HTML escaping.
func writeResult(w io.Writer, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}
