package repline

// CompletionKind distinguishes the context a completion candidate is
// rendered in.
type CompletionKind uint8

const (
	// CompletionList renders the candidate in a list below the line.
	CompletionList CompletionKind = iota
	// CompletionInline renders the candidate inline at the cursor.
	CompletionInline
)

// Highlighter decorates the text surfaces of a line editor. Every
// operation is total: implementations degrade to returning their input
// unstyled rather than failing.
//
// The editor calls HighlightChar on each edit to decide whether a repaint
// is worth it, then Highlight (and siblings) to produce the repaint. A
// highlighted version must keep the display width of the original text;
// styles are invisible-width escape sequences only.
//
// NopHighlighter provides pass-through defaults suitable for embedding,
// so implementations override only the operations they care about.
type Highlighter interface {
	// Highlight returns the styled line. pos is the cursor byte offset.
	Highlight(line string, pos int) StyledText
	// HighlightPrompt returns the styled prompt. isDefault is false for
	// alternate prompts such as continuation or search prompts.
	HighlightPrompt(prompt string, isDefault bool) StyledText
	// HighlightHint returns the styled hint.
	HighlightHint(hint string) StyledText
	// HighlightCandidate returns the styled completion candidate.
	HighlightCandidate(candidate string, kind CompletionKind) StyledText
	// HighlightChar reports whether the line needs re-highlighting after
	// a character was typed or the cursor moved to pos. forced is true
	// on submission (transient vs final render). Returning false only
	// skips a repaint; it never changes content.
	HighlightChar(line string, pos int, forced bool) bool
}

// NopHighlighter is the default highlighter: everything passes through
// unstyled and nothing triggers a repaint.
type NopHighlighter struct{}

var _ Highlighter = NopHighlighter{}

// Highlight returns line unchanged.
func (NopHighlighter) Highlight(line string, pos int) StyledText {
	return Plain(line)
}

// HighlightPrompt returns prompt unchanged.
func (NopHighlighter) HighlightPrompt(prompt string, isDefault bool) StyledText {
	return Plain(prompt)
}

// HighlightHint returns hint unchanged.
func (NopHighlighter) HighlightHint(hint string) StyledText {
	return Plain(hint)
}

// HighlightCandidate returns candidate unchanged.
func (NopHighlighter) HighlightCandidate(candidate string, kind CompletionKind) StyledText {
	return Plain(candidate)
}

// HighlightChar reports false: unstyled content never needs a repaint.
func (NopHighlighter) HighlightChar(line string, pos int, forced bool) bool {
	return false
}

// Delegate forwards every operation to H, so generic code can hold a
// temporary handle to a highlighter it does not own. A nil H behaves like
// NopHighlighter.
type Delegate struct {
	H Highlighter
}

var _ Highlighter = Delegate{}

func (d Delegate) Highlight(line string, pos int) StyledText {
	if d.H == nil {
		return Plain(line)
	}
	return d.H.Highlight(line, pos)
}

func (d Delegate) HighlightPrompt(prompt string, isDefault bool) StyledText {
	if d.H == nil {
		return Plain(prompt)
	}
	return d.H.HighlightPrompt(prompt, isDefault)
}

func (d Delegate) HighlightHint(hint string) StyledText {
	if d.H == nil {
		return Plain(hint)
	}
	return d.H.HighlightHint(hint)
}

func (d Delegate) HighlightCandidate(candidate string, kind CompletionKind) StyledText {
	if d.H == nil {
		return Plain(candidate)
	}
	return d.H.HighlightCandidate(candidate, kind)
}

func (d Delegate) HighlightChar(line string, pos int, forced bool) bool {
	if d.H == nil {
		return false
	}
	return d.H.HighlightChar(line, pos, forced)
}
