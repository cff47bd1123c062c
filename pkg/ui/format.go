package ui

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/argspec/pkg/errors"
)

// Format selects one of the renderers
type Format int

const (
	// FormatAuto picks FormatTerminal or FormatText for the output writer
	FormatAuto Format = iota
	// FormatTerminal renders registries and extractions with lipgloss styles
	FormatTerminal
	// FormatText renders the same views as aligned plain text
	FormatText
	// FormatJSON renders the display views as JSON documents
	FormatJSON
)

var formatNames = map[Format]string{
	FormatAuto:     "auto",
	FormatTerminal: "term",
	FormatText:     "text",
	FormatJSON:     "json",
}

var formatAliases = map[string]Format{
	"terminal": FormatTerminal,
	"plain":    FormatText,
}

// Formats lists the names accepted by ParseFormat, in flag help order
func Formats() []string {
	return []string{"auto", "term", "text", "json"}
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFormat parses a --format value. The empty string means auto.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return FormatAuto, nil
	}
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	if f, ok := formatAliases[name]; ok {
		return f, nil
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s).
		WithDetail("valid", Formats())
}

// Options select and tune the renderer returned by New
type Options struct {
	Format Format
	// NoColor drops colours from terminal output and makes FormatAuto
	// resolve to FormatText. The NO_COLOR environment variable has the
	// same effect.
	NoColor bool
}

func (o Options) noColor() bool {
	return o.NoColor || os.Getenv("NO_COLOR") != ""
}

// Resolve returns the concrete format New uses for w. Explicit formats are
// returned unchanged; FormatAuto becomes FormatTerminal only for a colour
// capable terminal.
func Resolve(w io.Writer, opts Options) Format {
	if opts.Format != FormatAuto {
		return opts.Format
	}
	if opts.noColor() {
		return FormatText
	}

	file, ok := w.(*os.File)
	if !ok {
		return FormatText
	}
	if !isatty.IsTerminal(file.Fd()) && !isatty.IsCygwinTerminal(file.Fd()) {
		return FormatText
	}
	if termenv.NewOutput(file).EnvColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
