package ui

import (
	"fmt"
	"io"
	"strings"

	"location-selector/models"

	"github.com/fatih/color"
)

// Printer writes the non-interactive command output.
type Printer struct {
	out     io.Writer
	title   *color.Color
	item    *color.Color
	err     *color.Color
	dim     *color.Color
	section *color.Color
}

// NewPrinter creates a printer. With noColor set every helper emits plain
// text, which is also what happens when out is not a terminal.
func NewPrinter(out io.Writer, noColor bool) *Printer {
	p := &Printer{
		out:     out,
		title:   color.New(color.FgCyan, color.Bold),
		item:    color.New(color.FgGreen),
		err:     color.New(color.FgRed, color.Bold),
		dim:     color.New(color.Faint),
		section: color.New(color.FgBlue, color.Bold),
	}
	if noColor {
		for _, c := range []*color.Color{p.title, p.item, p.err, p.dim, p.section} {
			c.DisableColor()
		}
	}
	return p
}

// PrintSectionHeader prints a formatted section header
func (p *Printer) PrintSectionHeader(title string) {
	headerContent := fmt.Sprintf("─ %s ", title)
	remainingWidth := 40 - len([]rune(headerContent))
	if remainingWidth < 0 {
		remainingWidth = 0
	}
	p.section.Fprintf(p.out, "┌%s%s\n", headerContent, strings.Repeat("─", remainingWidth))
}

// PrintNames prints one name per line in API order.
func (p *Printer) PrintNames(title string, names []models.LocationName) {
	p.PrintSectionHeader(title)
	if len(names) == 0 {
		p.dim.Fprintln(p.out, "  none found")
		return
	}
	for _, n := range names {
		p.item.Fprintln(p.out, "  "+n.String())
	}
	p.dim.Fprintf(p.out, "  %d total\n", len(names))
}

// PrintSelection prints the composed selection message.
func (p *Printer) PrintSelection(message string) {
	p.title.Fprintln(p.out, message)
}

// PrintError prints a user-facing error line.
func (p *Printer) PrintError(message string) {
	p.err.Fprintln(p.out, message)
}
