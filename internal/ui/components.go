package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const demoCards = 9

// renderPage draws the demo content the bubble floats above.
func renderPage(width int) string {
	if width < 20 {
		width = 20
	}
	header := lipgloss.PlaceHorizontal(width, lipgloss.Center, headerStyle.Render("Mini Arcade"))

	cols := width / 32
	if cols < 1 {
		cols = 1
	}
	if cols > 3 {
		cols = 3
	}
	cardWidth := width/cols - 2
	if cardWidth < 12 {
		cardWidth = 12
	}

	var rows []string
	for i := 0; i < demoCards; i += cols {
		var cards []string
		for j := i; j < i+cols && j < demoCards; j++ {
			cards = append(cards, renderCard(j+1, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return "\n" + header + "\n\n" + lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCard(n, width int) string {
	title := cardTitleStyle.Render(fmt.Sprintf("Demo Content %d", n))
	text := cardTextStyle.Width(width - 2).Render(
		"This is demo content to show how the chat head floats above the page content. Try dragging the floating bubble around!")
	return cardStyle.Width(width).Render(title + "\n" + text)
}

// fitLines cuts or pads s to exactly height lines of exactly width cells.
func fitLines(s string, width, height int) []string {
	src := strings.Split(s, "\n")
	out := make([]string, height)
	for i := range out {
		var line string
		if i < len(src) {
			line = src[i]
		}
		out[i] = fitWidth(line, width)
	}
	return out
}

func fitWidth(line string, width int) string {
	w := ansi.StringWidth(line)
	switch {
	case w > width:
		return ansi.Truncate(line, width, "")
	case w < width:
		return line + strings.Repeat(" ", width-w)
	}
	return line
}

// overlay paints block onto dst with its top-left cell at (col, row),
// clipping at every screen edge. dst lines must be exactly width cells.
func overlay(dst []string, block string, col, row, width int) {
	for i, line := range strings.Split(block, "\n") {
		r := row + i
		if r < 0 || r >= len(dst) {
			continue
		}
		w := ansi.StringWidth(line)
		start := col
		if start < 0 {
			line = ansi.TruncateLeft(line, -start, "")
			w += start
			start = 0
		}
		if w <= 0 || start >= width {
			continue
		}
		if start+w > width {
			line = ansi.Truncate(line, width-start, "")
			w = width - start
		}
		base := dst[r]
		left := ansi.Truncate(base, start, "")
		right := ansi.TruncateLeft(base, start+w, "")
		dst[r] = left + ansi.ResetStyle + line + ansi.ResetStyle + right
	}
}
