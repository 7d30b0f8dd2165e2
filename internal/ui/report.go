package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes the styled, line-oriented output around the prompts.
// Styles come from a renderer bound to the writer, so output to a pipe or a
// buffer carries no escape codes.
type Printer struct {
	w io.Writer

	banner  lipgloss.Style
	title   lipgloss.Style
	divider lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	warning lipgloss.Style
	accent  lipgloss.Style
	link    lipgloss.Style
	hint    lipgloss.Style
}

// NewPrinter creates a Printer writing to w
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w: w,
		banner: r.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorBorder).
			Foreground(ColorText).
			Bold(true).
			Align(lipgloss.Center).
			Width(BannerWidth - 2),
		title:   r.NewStyle().Foreground(ColorText).Bold(true),
		divider: r.NewStyle().Foreground(ColorBorder),
		success: r.NewStyle().Foreground(ColorSuccess).Bold(true),
		failure: r.NewStyle().Foreground(ColorBorder).Bold(true),
		warning: r.NewStyle().Foreground(ColorWarning).Bold(true),
		accent:  r.NewStyle().Foreground(ColorAccent).Bold(true),
		link:    r.NewStyle().Foreground(ColorLink).Underline(true),
		hint:    r.NewStyle().Foreground(ColorText).Italic(true),
	}
}

// Banner prints the boxed application banner
func (p *Printer) Banner() {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.banner.Render("DorkCraft CLI\nAdvanced OSINT Dork Builder"))
}

// Separator prints a full-width divider
func (p *Printer) Separator() {
	fmt.Fprintln(p.w, p.divider.Render(strings.Repeat("─", SeparatorWidth)))
}

// Line prints plain text
func (p *Printer) Line(text string) {
	fmt.Fprintln(p.w, text)
}

// Blank prints an empty line
func (p *Printer) Blank() {
	fmt.Fprintln(p.w)
}

// Title prints a bold section title preceded by a blank line
func (p *Printer) Title(text string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.title.Render(text))
}

// Hint prints italic helper text
func (p *Printer) Hint(text string) {
	fmt.Fprintln(p.w, p.hint.Render(text))
}

// Success prints a success message
func (p *Printer) Success(message string) {
	fmt.Fprintln(p.w, p.success.Render(message))
}

// Error prints an error message
func (p *Printer) Error(message string) {
	fmt.Fprintln(p.w, p.failure.Render("Error: "+message))
}

// Warning prints a non-fatal problem
func (p *Printer) Warning(message string) {
	fmt.Fprintln(p.w, p.warning.Render("Warning: "+message))
}

// Dork prints the generated query under a heading
func (p *Printer) Dork(dork string) {
	p.Title("Generated Dork:")
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, "  "+p.accent.Render(dork))
	fmt.Fprintln(p.w)
}

// URL prints the search URL under a heading
func (p *Printer) URL(url string) {
	p.Title("Search URL:")
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, "  "+p.link.Render(url))
	fmt.Fprintln(p.w)
}
