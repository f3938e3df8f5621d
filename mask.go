package repline

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// MaskingHighlighter hides the edited line behind a run of mask
// characters, for password-style input. The mask has the same display
// width as the hidden text, so cursor positioning in the editor stays
// correct even for wide runes.
//
// Masking can be toggled between reads, e.g. off for a username prompt
// and on for the password that follows.
type MaskingHighlighter struct {
	NopHighlighter
	// Masking enables the mask. When false the line passes through.
	Masking bool
	// Mask is the replacement character. Zero means ' '.
	Mask rune
}

var _ Highlighter = (*MaskingHighlighter)(nil)

// NewMaskingHighlighter returns an enabled highlighter masking with mask.
func NewMaskingHighlighter(mask rune) *MaskingHighlighter {
	return &MaskingHighlighter{Masking: true, Mask: mask}
}

// Highlight returns a width-equal mask for line, or line itself when
// masking is off.
func (h *MaskingHighlighter) Highlight(line string, pos int) StyledText {
	if !h.Masking {
		return Plain(line)
	}
	mask := h.Mask
	if mask == 0 {
		mask = ' '
	}
	return Plain(strings.Repeat(string(mask), runewidth.StringWidth(line)))
}

// HighlightChar reports true while masking: every edit changes the
// rendition, so every edit repaints.
func (h *MaskingHighlighter) HighlightChar(line string, pos int, forced bool) bool {
	return h.Masking
}
