// Package render produces human-readable summaries of command schemas for
// the slashkit CLI, rendering markdown to the terminal with Glamour.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"slashkit/pkg/slashtypes"
)

// Renderer renders command schema summaries for terminal display.
type Renderer struct {
	renderer *glamour.TermRenderer
}

// New creates a renderer with auto-detected terminal styling.
func New() (*Renderer, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return &Renderer{renderer: r}, nil
}

// Describe renders a styled summary of the given schemas.
func (r *Renderer) Describe(schemas []*slashtypes.CommandSchema) (string, error) {
	out, err := r.renderer.Render(Markdown(schemas))
	if err != nil {
		return "", fmt.Errorf("failed to render schema summary: %w", err)
	}
	return out, nil
}

// Markdown builds the plain markdown summary of the given schemas. Exposed
// separately so tests can assert on content without terminal styling.
func Markdown(schemas []*slashtypes.CommandSchema) string {
	var sb strings.Builder
	for _, cmd := range schemas {
		fmt.Fprintf(&sb, "# /%s\n\n%s\n\n", cmd.Name, cmd.Description)
		if cmd.NSFW {
			sb.WriteString("*Age-restricted.*\n\n")
		}
		writeOptions(&sb, cmd.Options, "")
	}
	return sb.String()
}

func writeOptions(sb *strings.Builder, options []slashtypes.OptionSchema, prefix string) {
	for i := range options {
		opt := &options[i]
		switch {
		case opt.Kind.Dispatch():
			fmt.Fprintf(sb, "## %s%s\n\n%s\n\n", prefix, opt.Name, opt.Description)
			writeOptions(sb, opt.SubOptions, prefix+opt.Name+" ")
		default:
			fmt.Fprintf(sb, "- `%s` (%s%s): %s%s\n", opt.Name, opt.Kind, requiredTag(opt), opt.Description, constraintTag(opt))
		}
	}
	if !slashtypes.DispatchLevel(options) && len(options) > 0 {
		sb.WriteString("\n")
	}
}

func requiredTag(opt *slashtypes.OptionSchema) string {
	if opt.Required {
		return ", required"
	}
	return ""
}

func constraintTag(opt *slashtypes.OptionSchema) string {
	var parts []string
	if opt.MinValue != nil || opt.MaxValue != nil {
		parts = append(parts, "bounded")
	}
	if opt.MinLength != nil || opt.MaxLength != nil {
		parts = append(parts, "length-bounded")
	}
	if len(opt.Choices) > 0 {
		parts = append(parts, fmt.Sprintf("%d choices", len(opt.Choices)))
	}
	if opt.Autocomplete {
		parts = append(parts, "autocomplete")
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf(" _(%s)_", strings.Join(parts, ", "))
}
