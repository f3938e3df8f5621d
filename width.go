package repline

import (
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
)

// Width returns the display width of text, not counting ANSI escape
// sequences. Styling a line never changes its Width.
func Width(text string) int {
	return ansi.PrintableRuneWidth(text)
}

// TruncateCandidate shortens a completion candidate to limit cells for
// list display, marking the cut with an ellipsis. Text that fits is
// returned unchanged.
func TruncateCandidate(text string, limit int) string {
	if Width(text) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	if limit == 1 {
		return "…"
	}
	var out []rune
	w := 0
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if w+rw > limit-1 {
			break
		}
		out = append(out, r)
		w += rw
	}
	return string(out) + "…"
}
