// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/argspec/pkg/ui/display"
	"github.com/arthur-debert/argspec/pkg/ui/text"
)

// Renderer writes lipgloss-styled output
type Renderer struct {
	output io.Writer
	styles styles
}

// New creates a terminal renderer. With noColor set the layout and
// alignment are kept but no escape sequences are written.
func New(w io.Writer, noColor bool) (*Renderer, error) {
	lr := lipgloss.NewRenderer(w)
	if noColor {
		lr.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		output: w,
		styles: newStyles(lr),
	}, nil
}

// RenderResult renders a display value with styling
func (r *Renderer) RenderResult(result interface{}) error {
	var out string
	switch v := result.(type) {
	case *display.Registry:
		out = r.registry(v)
	case *display.Entry:
		out = r.entry(v)
	case *display.Extraction:
		out = r.extraction(v)
	default:
		out = fmt.Sprintf("%v", result)
	}
	_, err := fmt.Fprintln(r.output, out)
	return err
}

// RenderError renders an error
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, r.styles.err.Render("Error:")+" "+err.Error())
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, r.styles.warning.Render(msg))
	return err
}

func (r *Renderer) registry(reg *display.Registry) string {
	var sb strings.Builder
	sb.WriteString(r.styles.header.Render(reg.Category))

	if len(reg.Entries) == 0 {
		sb.WriteString(" " + r.styles.muted.Render("no entries"))
		return sb.String()
	}
	sb.WriteString(" " + r.styles.muted.Render(fmt.Sprintf("(%d)", len(reg.Entries))))

	width := text.NameWidth(reg.Entries)
	for _, e := range reg.Entries {
		sb.WriteString("\n  ")
		sb.WriteString(r.styles.name.Render(fmt.Sprintf("%-*s", width, e.Name)))
		sb.WriteString("  ")
		sb.WriteString(r.specs(e.Specs, ","))
	}
	return sb.String()
}

func (r *Renderer) entry(e *display.Entry) string {
	lines := []string{
		r.styles.name.Render(e.Name) + " " + r.styles.muted.Render("["+e.Category+"]"),
		"  " + r.styles.label.Render("raw") + e.Raw,
		"  " + r.styles.label.Render("flags") + e.Flags,
		"  " + r.styles.label.Render("specs") + r.specs(e.Specs, ", "),
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) extraction(ex *display.Extraction) string {
	lines := []string{
		r.styles.label.Render("argspec") + " " + r.specOrNone(ex.ArgSpec),
		r.styles.label.Render("retspec") + " " + r.specOrNone(ex.RetSpec),
		r.styles.label.Render("status") + " " + r.styles.header.Render(fmt.Sprint(ex.Status)),
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) specs(specs []string, sep string) string {
	styled := make([]string, len(specs))
	for i, s := range specs {
		styled[i] = r.styles.spec.Render(s)
	}
	return strings.Join(styled, sep)
}

func (r *Renderer) specOrNone(s string) string {
	if s == "" {
		return r.styles.muted.Render(text.None)
	}
	return r.styles.spec.Render(s)
}
