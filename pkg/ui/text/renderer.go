// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/argspec/pkg/ui/display"
)

// None is printed for an absent spec string
const None = "(none)"

// Renderer writes unstyled text
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders a display value as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.Registry:
		return r.renderRegistry(v)
	case *display.Entry:
		return r.renderEntry(v)
	case *display.Extraction:
		return r.renderExtraction(v)
	default:
		_, err := fmt.Fprintf(r.output, "%v\n", result)
		return err
	}
}

// RenderError renders an error
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func (r *Renderer) renderRegistry(reg *display.Registry) error {
	if len(reg.Entries) == 0 {
		_, err := fmt.Fprintf(r.output, "%s: no entries\n", reg.Category)
		return err
	}

	if _, err := fmt.Fprintf(r.output, "%s: %d %s\n", reg.Category, len(reg.Entries), plural(len(reg.Entries), "entry", "entries")); err != nil {
		return err
	}

	width := NameWidth(reg.Entries)
	for _, e := range reg.Entries {
		if _, err := fmt.Fprintf(r.output, "  %-*s  %s\n", width, e.Name, strings.Join(e.Specs, ",")); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderEntry(e *display.Entry) error {
	_, err := fmt.Fprintf(r.output, "%s [%s]\n  raw:   %s\n  flags: %s\n  specs: %s\n",
		e.Name, e.Category, e.Raw, e.Flags, strings.Join(e.Specs, ", "))
	return err
}

func (r *Renderer) renderExtraction(ex *display.Extraction) error {
	_, err := fmt.Fprintf(r.output, "argspec: %s\nretspec: %s\nstatus:  %d\n",
		orNone(ex.ArgSpec), orNone(ex.RetSpec), ex.Status)
	return err
}

// NameWidth returns the width of the longest entry name
func NameWidth(entries []display.Entry) int {
	width := 0
	for _, e := range entries {
		if len(e.Name) > width {
			width = len(e.Name)
		}
	}
	return width
}

func orNone(s string) string {
	if s == "" {
		return None
	}
	return s
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
