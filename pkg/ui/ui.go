// Package ui renders the autoargs display views (registries, entries and
// extractions) as styled terminal output, plain text or JSON.
package ui

import (
	"io"

	"github.com/arthur-debert/argspec/pkg/errors"
	"github.com/arthur-debert/argspec/pkg/ui/json"
	"github.com/arthur-debert/argspec/pkg/ui/terminal"
	"github.com/arthur-debert/argspec/pkg/ui/text"
)

// Renderer is implemented by the terminal, text and json renderers
type Renderer interface {
	// RenderResult renders a *display.Registry, *display.Entry or
	// *display.Extraction
	RenderResult(result interface{}) error

	RenderError(err error) error
	RenderMessage(msg string) error
}

// New creates the renderer opts selects for w
func New(w io.Writer, opts Options) (Renderer, error) {
	switch format := Resolve(w, opts); format {
	case FormatTerminal:
		return terminal.New(w, opts.noColor())
	case FormatText:
		return text.New(w)
	case FormatJSON:
		return json.New(w)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}

// NewRenderer is New without colour options
func NewRenderer(format Format, w io.Writer) (Renderer, error) {
	return New(w, Options{Format: format})
}
