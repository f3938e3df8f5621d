package repline

import (
	"regexp"
	"strings"
	"testing"
)

var sgrPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripSGR(s string) string {
	return sgrPattern.ReplaceAllString(s, "")
}

func render(t *testing.T, st StyledText) string {
	t.Helper()
	s, err := st.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return s
}

func TestFindMatchingBracket(t *testing.T) {
	tests := []struct {
		line    string
		pos     int
		bracket byte
		want    byte
		wantIdx int
		wantOK  bool
	}{
		{"(...", 0, '(', 0, 0, false},
		{"...)", 3, ')', 0, 0, false},
		{"()..", 0, '(', ')', 1, true},
		{"(..)", 0, '(', ')', 3, true},
		{"..()", 3, ')', '(', 2, true},
		{"(..)", 3, ')', '(', 0, true},
		{"(())", 0, '(', ')', 3, true},
		{"(())", 3, ')', '(', 0, true},
		{"{[()]}", 0, '{', '}', 5, true},
		{"{[()]}", 5, '}', '{', 0, true},
		{"((((", 0, '(', 0, 0, false},
		{"))))", 3, ')', 0, 0, false},
	}
	for _, tt := range tests {
		got, idx, ok := findMatchingBracket(tt.line, tt.pos, tt.bracket)
		if ok != tt.wantOK || got != tt.want || idx != tt.wantIdx {
			t.Errorf("findMatchingBracket(%q, %d, %q) = (%q, %d, %v), want (%q, %d, %v)",
				tt.line, tt.pos, tt.bracket, got, idx, ok, tt.want, tt.wantIdx, tt.wantOK)
		}
	}
}

func TestCheckBracket(t *testing.T) {
	tests := []struct {
		line    string
		pos     int
		want    byte
		wantIdx int
		wantOK  bool
	}{
		{"", 0, 0, 0, false},
		{")...", 0, 0, 0, false}, // closing bracket at start has no opener before it
		{"(...", 2, 0, 0, false},
		{"...(", 3, 0, 0, false}, // opening bracket at the end has nothing to close it
		{"...(", 4, 0, 0, false},
		{"..).", 4, 0, 0, false},
		{"(...", 0, '(', 0, true},
		{"(...", 1, '(', 0, true}, // one step back from the cursor
		{"...)", 3, ')', 3, true},
		{"...)", 4, ')', 3, true}, // cursor past the end sees the previous byte
		{"...)", 42, ')', 3, true},
		{"(...", -1, '(', 0, true}, // out-of-range offsets are clamped
	}
	for _, tt := range tests {
		got, idx, ok := checkBracket(tt.line, tt.pos)
		if ok != tt.wantOK || got != tt.want || idx != tt.wantIdx {
			t.Errorf("checkBracket(%q, %d) = (%q, %d, %v), want (%q, %d, %v)",
				tt.line, tt.pos, got, idx, ok, tt.want, tt.wantIdx, tt.wantOK)
		}
	}
}

func TestMatchingBracket(t *testing.T) {
	pairs := map[byte]byte{
		'(': ')', ')': '(',
		'[': ']', ']': '[',
		'{': '}', '}': '{',
	}
	for b, want := range pairs {
		if got := matchingBracket(b); got != want {
			t.Errorf("matchingBracket(%q) = %q, want %q", b, got, want)
		}
	}
	if got := matchingBracket('x'); got != 'x' {
		t.Errorf("matchingBracket('x') = %q, want 'x'", got)
	}
}

func TestBracketPredicates(t *testing.T) {
	for _, b := range []byte("([{") {
		if !isOpenBracket(b) || isCloseBracket(b) {
			t.Errorf("%q should be an open bracket only", b)
		}
	}
	for _, b := range []byte(")]}") {
		if !isCloseBracket(b) || isOpenBracket(b) {
			t.Errorf("%q should be a close bracket only", b)
		}
	}
}

func TestHighlightCharSeedsCache(t *testing.T) {
	h := NewMatchingBracketHighlighter()
	if !h.HighlightChar("(a)", 0, false) {
		t.Fatal("HighlightChar on an opening bracket should report true")
	}
	if !h.cached || h.bracket != '(' || h.pos != 0 {
		t.Fatalf("cache = (%q, %d, %v), want ('(', 0, true)", h.bracket, h.pos, h.cached)
	}
	if h.HighlightChar("abc", 1, false) {
		t.Fatal("HighlightChar with no adjacent bracket should report false")
	}
	if h.cached {
		t.Fatal("cache should be cleared when no bracket is found")
	}
}

func TestHighlightCharForcedClearsCache(t *testing.T) {
	h := NewMatchingBracketHighlighter()
	h.HighlightChar("(a)", 0, false)
	if h.HighlightChar("(a)", 0, true) {
		t.Fatal("forced HighlightChar should report false")
	}
	if h.cached {
		t.Fatal("forced HighlightChar should clear the cache")
	}
	if got := render(t, h.Highlight("(a)", 0)); got != "(a)" {
		t.Errorf("Highlight after forced refresh = %q, want plain line", got)
	}
}

func TestHighlightShortLine(t *testing.T) {
	h := NewMatchingBracketHighlighter()
	h.HighlightChar("()", 0, false) // seed the cache
	for _, line := range []string{"", "(", ")"} {
		for _, pos := range []int{0, 1, 5} {
			if got := render(t, h.Highlight(line, pos)); got != line {
				t.Errorf("Highlight(%q, %d) = %q, want unchanged", line, pos, got)
			}
		}
	}
}

func TestHighlightUnbalanced(t *testing.T) {
	h := NewMatchingBracketHighlighter()
	if !h.HighlightChar("(((", 0, false) {
		t.Fatal("HighlightChar should still report true for an unbalanced opener")
	}
	if got := render(t, h.Highlight("(((", 0)); got != "(((" {
		t.Errorf("Highlight of unbalanced line = %q, want unchanged", got)
	}
}

func TestHighlightMatch(t *testing.T) {
	h := NewMatchingBracketHighlighter()
	line := "(a (b) c)"
	if !h.HighlightChar(line, 0, false) {
		t.Fatal("HighlightChar should find the opening bracket")
	}
	got := render(t, h.Highlight(line, 0))
	want := "(a (b) c\x1b[1;34m)\x1b[0m"
	if got != want {
		t.Errorf("Highlight = %q, want %q", got, want)
	}
	if stripped := stripSGR(got); stripped != line {
		t.Errorf("stripped = %q, want %q", stripped, line)
	}
	if Width(got) != Width(line) {
		t.Errorf("Width(styled) = %d, want %d", Width(got), Width(line))
	}
}

func TestHighlightBackwardMatch(t *testing.T) {
	h := NewMatchingBracketHighlighter()
	line := "(a (b) c)"
	if !h.HighlightChar(line, len(line), false) {
		t.Fatal("HighlightChar past the end should see the closing bracket")
	}
	got := render(t, h.Highlight(line, len(line)))
	want := "\x1b[1;34m(\x1b[0ma (b) c)"
	if got != want {
		t.Errorf("Highlight = %q, want %q", got, want)
	}
}

func TestHighlightIdempotent(t *testing.T) {
	h := NewMatchingBracketHighlighter()
	line := "{[()]}"
	h.HighlightChar(line, 0, false)
	first := render(t, h.Highlight(line, 0))
	h.HighlightChar(line, 0, false)
	second := render(t, h.Highlight(line, 0))
	if first != second {
		t.Errorf("repeated refresh+render differ: %q vs %q", first, second)
	}
}

func TestWithBracketStyle(t *testing.T) {
	h := NewMatchingBracketHighlighter(WithBracketStyle(SGR{Prefix: "\x1b[7m"}))
	h.HighlightChar("()x", 0, false)
	got := render(t, h.Highlight("()x", 0))
	if want := "(\x1b[7m)\x1b[0mx"; got != want {
		t.Errorf("Highlight = %q, want %q", got, want)
	}
	// nil style keeps the default
	h = NewMatchingBracketHighlighter(WithBracketStyle(nil))
	h.HighlightChar("()x", 0, false)
	if got := render(t, h.Highlight("()x", 0)); !strings.Contains(got, defaultBracketPrefix) {
		t.Errorf("Highlight = %q, want default style", got)
	}
}

func TestHighlightPassThroughSurfaces(t *testing.T) {
	h := NewMatchingBracketHighlighter()
	if got := render(t, h.HighlightPrompt(">> ", true)); got != ">> " {
		t.Errorf("HighlightPrompt = %q, want pass-through", got)
	}
	if got := render(t, h.HighlightHint("hint")); got != "hint" {
		t.Errorf("HighlightHint = %q, want pass-through", got)
	}
	if got := render(t, h.HighlightCandidate("cand", CompletionList)); got != "cand" {
		t.Errorf("HighlightCandidate = %q, want pass-through", got)
	}
}
