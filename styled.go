package repline

import (
	"errors"
	"io"
	"iter"
	"strings"
)

// ErrConsumed is returned when a StyledText is rendered a second time.
var ErrConsumed = errors.New("repline: styled text already rendered")

// Span is a run of text with one style applied.
type Span struct {
	Style Style
	Text  string
}

type styledKind uint8

const (
	styledPlain styledKind = iota
	styledSpans
	styledSeq
)

// StyledText is a one-shot renderable produced by a Highlighter. It holds
// either a single pre-composed string (possibly already containing escape
// sequences) or a finite forward-only sequence of spans. It is consumed by
// a single WriteTo call; rendering it again returns ErrConsumed.
//
// StyledText values are not safe for concurrent use.
type StyledText struct {
	text     string
	spans    []Span
	seq      iter.Seq[Span]
	kind     styledKind
	consumed bool
}

// Plain wraps an already-composed string without copying it. The string
// is written to the sink verbatim, so it may contain its own escape
// sequences.
func Plain(text string) StyledText {
	return StyledText{text: text}
}

// Spans builds styled output from a fixed list of spans.
func Spans(spans ...Span) StyledText {
	return StyledText{spans: spans, kind: styledSpans}
}

// SpanSeq builds styled output from a lazy, finite span sequence. The
// sequence is iterated exactly once, during WriteTo.
func SpanSeq(seq iter.Seq[Span]) StyledText {
	return StyledText{seq: seq, kind: styledSeq}
}

// WriteTo renders the styled text to w, emitting start token, text and
// end token for every span. It consumes the value.
func (st *StyledText) WriteTo(w io.Writer) (int64, error) {
	if st.consumed {
		return 0, ErrConsumed
	}
	st.consumed = true
	switch st.kind {
	case styledPlain:
		n, err := io.WriteString(w, st.text)
		return int64(n), err
	case styledSpans:
		var total int64
		for _, span := range st.spans {
			n, err := writeSpan(w, span)
			total += n
			if err != nil {
				return total, err
			}
		}
		return total, nil
	default:
		var total int64
		var err error
		if st.seq != nil {
			for span := range st.seq {
				var n int64
				n, err = writeSpan(w, span)
				total += n
				if err != nil {
					break
				}
			}
		}
		return total, err
	}
}

// Render consumes the styled text into a string.
func (st *StyledText) Render() (string, error) {
	if st.kind == styledPlain && !st.consumed {
		st.consumed = true
		return st.text, nil
	}
	var b strings.Builder
	if _, err := st.WriteTo(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeSpan(w io.Writer, span Span) (int64, error) {
	var total int64
	style := span.Style
	if style == nil {
		style = Unstyled{}
	}
	if start := style.Start(); start != "" {
		n, err := io.WriteString(w, start)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	n, err := io.WriteString(w, span.Text)
	total += int64(n)
	if err != nil {
		return total, err
	}
	if end := style.End(); end != "" {
		n, err := io.WriteString(w, end)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
