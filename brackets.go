package repline

import "strings"

// Bold blue, the classic blink-matching-paren rendition.
const defaultBracketPrefix = "\x1b[1;34m"

// MatchingBracketHighlighter decorates the counterpart of the bracket
// under or just before the cursor. Matching is a byte-level convenience
// over the ASCII set ()[]{}; those bytes never occur inside multi-byte
// UTF-8 sequences, so scanning raw bytes is safe. It is not a parser:
// brackets inside string literals or comments count like any other.
//
// HighlightChar memorizes the bracket adjacent to the cursor and
// Highlight reads that memo, so the two calls must be made in that order
// for a given edit.
type MatchingBracketHighlighter struct {
	NopHighlighter
	style   Style
	bracket byte
	pos     int
	cached  bool
}

var _ Highlighter = (*MatchingBracketHighlighter)(nil)

// MatchingBracketOption configures a MatchingBracketHighlighter.
type MatchingBracketOption func(*MatchingBracketHighlighter)

// WithBracketStyle overrides the style applied to the matched bracket.
func WithBracketStyle(style Style) MatchingBracketOption {
	return func(h *MatchingBracketHighlighter) {
		if style != nil {
			h.style = style
		}
	}
}

// NewMatchingBracketHighlighter returns a highlighter that renders the
// matching bracket in bold blue unless configured otherwise.
func NewMatchingBracketHighlighter(opts ...MatchingBracketOption) *MatchingBracketHighlighter {
	h := &MatchingBracketHighlighter{style: SGR{Prefix: defaultBracketPrefix}}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

// Highlight returns line with the counterpart of the memorized bracket
// decorated. Lines of one byte or less, an empty memo, or unbalanced
// brackets all fall back to the unchanged line.
func (h *MatchingBracketHighlighter) Highlight(line string, pos int) StyledText {
	if len(line) <= 1 || !h.cached {
		return Plain(line)
	}
	matching, idx, ok := findMatchingBracket(line, h.pos, h.bracket)
	if !ok {
		return Plain(line)
	}
	start, end := h.style.Start(), h.style.End()
	var b strings.Builder
	b.Grow(len(line) + len(start) + len(end))
	b.WriteString(line[:idx])
	b.WriteString(start)
	b.WriteByte(matching)
	b.WriteString(end)
	b.WriteString(line[idx+1:])
	return Plain(b.String())
}

// HighlightChar memorizes the bracket adjacent to pos and reports whether
// one was found. A forced render clears the memo and reports false so the
// final render shows plain text.
func (h *MatchingBracketHighlighter) HighlightChar(line string, pos int, forced bool) bool {
	if forced {
		h.cached = false
		return false
	}
	h.bracket, h.pos, h.cached = checkBracket(line, pos)
	return h.cached
}

// checkBracket looks for a bracket under the cursor, then one position
// before it. At most two bytes are ever inspected. A closing bracket at
// index 0 and an opening bracket at the last index have no room for a
// counterpart and report no bracket.
func checkBracket(line string, pos int) (byte, int, bool) {
	if line == "" {
		return 0, 0, false
	}
	if pos < 0 {
		pos = 0
	}
	if pos >= len(line) {
		// Past the end only the previous byte is visible, and only a
		// closing bracket can have its counterpart behind it.
		pos = len(line) - 1
		if b := line[pos]; isCloseBracket(b) {
			return b, pos, true
		}
		return 0, 0, false
	}
	underCursor := true
	for {
		b := line[pos]
		switch {
		case isCloseBracket(b):
			if pos == 0 {
				return 0, 0, false
			}
			return b, pos, true
		case isOpenBracket(b):
			if pos+1 == len(line) {
				return 0, 0, false
			}
			return b, pos, true
		default:
			if underCursor && pos > 0 {
				underCursor = false
				pos--
				continue
			}
			return 0, 0, false
		}
	}
}

// findMatchingBracket locates the counterpart of bracket at pos, keeping
// a count of unmatched same-direction brackets: forward from an opener,
// backward from a closer. Running off either end means the line is
// unbalanced and there is no counterpart.
func findMatchingBracket(line string, pos int, bracket byte) (byte, int, bool) {
	matching := matchingBracket(bracket)
	unmatched := 1
	if isOpenBracket(bracket) {
		for idx := pos + 1; idx < len(line); idx++ {
			switch line[idx] {
			case matching:
				unmatched--
				if unmatched == 0 {
					return matching, idx, true
				}
			case bracket:
				unmatched++
			}
		}
	} else {
		if pos > len(line) {
			pos = len(line)
		}
		for idx := pos - 1; idx >= 0; idx-- {
			switch line[idx] {
			case matching:
				unmatched--
				if unmatched == 0 {
					return matching, idx, true
				}
			case bracket:
				unmatched++
			}
		}
	}
	return 0, 0, false
}

func matchingBracket(bracket byte) byte {
	switch bracket {
	case '{':
		return '}'
	case '}':
		return '{'
	case '[':
		return ']'
	case ']':
		return '['
	case '(':
		return ')'
	case ')':
		return '('
	default:
		return bracket
	}
}

func isOpenBracket(b byte) bool {
	return b == '{' || b == '[' || b == '('
}

func isCloseBracket(b byte) bool {
	return b == '}' || b == ']' || b == ')'
}
