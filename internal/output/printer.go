// Package output provides styled terminal output for the slashkit CLI.
// It supports both plain and lipgloss-styled output with thread-safe writes.
package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Printer is the CLI output handler. Styled output can be disabled for
// non-terminal destinations and deterministic test output.
type Printer struct {
	writer io.Writer
	plain  bool

	mu sync.Mutex
}

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Option configures a Printer.
type Option func(*Printer)

// WithWriter directs output to the given writer instead of stdout.
func WithWriter(w io.Writer) Option {
	return func(p *Printer) { p.writer = w }
}

// WithPlain disables styling entirely.
func WithPlain() Option {
	return func(p *Printer) { p.plain = true }
}

// NewPrinter creates a new Printer with the given options.
// By default it writes styled output to os.Stdout.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{writer: os.Stdout}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Println outputs text with a newline and no semantic styling.
func (p *Printer) Println(text string) {
	p.write(text, nil)
}

// Printf outputs formatted text with no semantic styling.
func (p *Printer) Printf(format string, args ...interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.writer, format, args...)
}

// Info outputs informational text.
func (p *Printer) Info(text string) {
	p.write(text, &infoStyle)
}

// Success outputs success text (typically green).
func (p *Printer) Success(text string) {
	p.write(text, &successStyle)
}

// Warning outputs warning text (typically yellow).
func (p *Printer) Warning(text string) {
	p.write(text, &warningStyle)
}

// Error outputs error text (typically red).
func (p *Printer) Error(text string) {
	p.write(text, &errorStyle)
}

// Detail outputs secondary text such as per-error detail lines.
func (p *Printer) Detail(text string) {
	p.write(text, &detailStyle)
}

func (p *Printer) write(text string, style *lipgloss.Style) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if style != nil && !p.plain {
		text = style.Render(text)
	}
	fmt.Fprintln(p.writer, text)
}
