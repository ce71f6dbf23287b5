package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

// HeaderWidth is the width of the rule drawn around headers.
const HeaderWidth = 60

// SeparatorWidth is the width of the rule between listed tokens.
const SeparatorWidth = 80

var (
	headerStyle  = pterm.NewStyle(pterm.FgBlue)
	successStyle = pterm.NewStyle(pterm.FgGreen)
	errorStyle   = pterm.NewStyle(pterm.FgRed)
	warningStyle = pterm.NewStyle(pterm.FgYellow)
	infoStyle    = pterm.NewStyle(pterm.FgCyan)
	promptStyle  = pterm.NewStyle(pterm.FgYellow)
)

// Glyphs prefixed to status lines.
const (
	GlyphSuccess = "✓"
	GlyphError   = "✗"
	GlyphWarning = "⚠"
	GlyphInfo    = "ℹ"
)

// Console writes operator messages to w.
type Console struct {
	w     io.Writer
	color bool
}

// NewConsole creates a console writing to w. With color false no escape
// sequences are emitted.
func NewConsole(w io.Writer, color bool) *Console {
	return &Console{w: w, color: color}
}

func (c *Console) paint(style *pterm.Style, text string) string {
	if !c.color {
		return text
	}
	return style.Sprint(text)
}

// Println writes a plain line.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.w, a...)
}

// Printf writes plain formatted text.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.w, format, a...)
}

// Header writes a title framed by blue rules.
func (c *Console) Header(title string) {
	rule := c.paint(headerStyle, strings.Repeat("=", HeaderWidth))
	fmt.Fprintf(c.w, "\n%s\n%s\n%s\n\n", rule, c.paint(headerStyle, " "+title), rule)
}

// Section writes a cyan section title preceded by a blank line.
func (c *Console) Section(title string) {
	fmt.Fprintf(c.w, "\n%s\n", c.paint(infoStyle, title))
}

// Separator writes a horizontal rule.
func (c *Console) Separator() {
	fmt.Fprintln(c.w, strings.Repeat("-", SeparatorWidth))
}

// Success reports a completed operation.
func (c *Console) Success(format string, a ...any) {
	c.status(successStyle, GlyphSuccess, format, a...)
}

// Error reports a failed operation.
func (c *Console) Error(format string, a ...any) {
	c.status(errorStyle, GlyphError, format, a...)
}

// Warning reports a non-fatal condition.
func (c *Console) Warning(format string, a ...any) {
	c.status(warningStyle, GlyphWarning, format, a...)
}

// Info reports neutral information.
func (c *Console) Info(format string, a ...any) {
	c.status(infoStyle, GlyphInfo, format, a...)
}

func (c *Console) status(style *pterm.Style, glyph, format string, a ...any) {
	msg := format
	if len(a) > 0 {
		msg = fmt.Sprintf(format, a...)
	}
	fmt.Fprintf(c.w, "%s %s\n", c.paint(style, glyph), msg)
}

// Prompt writes message in yellow without a trailing newline.
func (c *Console) Prompt(message string) {
	fmt.Fprint(c.w, c.paint(promptStyle, message))
}

// Label renders text with the style used for field labels.
func (c *Console) Label(text string) string {
	return c.paint(promptStyle, text)
}

// Highlight renders text in cyan.
func (c *Console) Highlight(text string) string {
	return c.paint(infoStyle, text)
}

// Good renders text in green.
func (c *Console) Good(text string) string {
	return c.paint(successStyle, text)
}

// Bad renders text in red.
func (c *Console) Bad(text string) string {
	return c.paint(errorStyle, text)
}
