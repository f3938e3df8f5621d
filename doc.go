// Package repline provides interactive syntax highlighting for terminal
// line editors.
//
// The package is built around a single capability: a Highlighter takes the
// text a user is editing (the line, the prompt, a hint, or a completion
// candidate) and returns a styled version with ANSI escape sequences
// embedded. Styled output is a one-shot value: it is rendered to an
// io.Writer exactly once, which lets trivial highlighters hand back the
// original string without copying while span-based highlighters stream
// their segments without building the full string first.
//
// Core properties:
//   - Zero-copy pass-through for unstyled text
//   - Styling never changes display width; styles are invisible-width
//     ANSI SGR sequences only
//   - A cheap per-keystroke predicate (HighlightChar) gates repaints
//   - Theme-driven styling via ANSI prefixes
//
// Example:
//
//	h := repline.NewMatchingBracketHighlighter()
//	if h.HighlightChar(line, pos, false) {
//		out := h.Highlight(line, pos)
//		if _, err := out.WriteTo(os.Stdout); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// MatchingBracketHighlighter decorates the counterpart of the bracket
// under (or just before) the cursor, MaskingHighlighter hides secret
// input behind a width-equal mask, and ThemeHighlighter applies a named
// color theme to prompts, hints and completion candidates.
package repline
