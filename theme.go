package repline

import (
	"sort"
	"strings"

	"pkt.systems/repline/internal/palette"
)

// Styles groups the semantic styles a theme assigns to the editor
// surfaces.
type Styles struct {
	Prompt            SGR
	Hint              SGR
	Candidate         SGR
	SelectedCandidate SGR
	BracketMatch      SGR
}

// Theme provides named styles for line-editor highlighting.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) SGR {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return SGR{Prefix: b.String()}
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Prompt:            style(palette.Bold, palette.Fg(p.Prompt)),
		Hint:              style(palette.Faint, palette.Fg(p.Hint)),
		Candidate:         style(palette.Fg(p.Candidate)),
		SelectedCandidate: style(palette.Reverse, palette.Fg(p.SelectedCandidate)),
		BracketMatch:      style(palette.Bold, palette.Fg(p.BracketMatch)),
	}
}

var builtinThemes = map[string]Theme{
	"default":        theme{name: "default", styles: stylesFromPalette(palette.PaletteDefault)},
	"one-dark":       theme{name: "one-dark", styles: stylesFromPalette(palette.PaletteOneDark)},
	"solarized-dark": theme{name: "solarized-dark", styles: stylesFromPalette(palette.PaletteSolarizedDark)},
	"gruvbox":        theme{name: "gruvbox", styles: stylesFromPalette(palette.PaletteGruvbox)},
	"nord":           theme{name: "nord", styles: stylesFromPalette(palette.PaletteNord)},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// ThemeHighlighter applies a theme across the editor surfaces and embeds
// matching-bracket highlighting using the theme's bracket style.
type ThemeHighlighter struct {
	theme    Theme
	brackets *MatchingBracketHighlighter
}

var _ Highlighter = (*ThemeHighlighter)(nil)

// NewThemeHighlighter returns a highlighter for the given theme. A nil
// theme selects the default theme.
func NewThemeHighlighter(t Theme) *ThemeHighlighter {
	if t == nil {
		t = DefaultTheme()
	}
	return &ThemeHighlighter{
		theme:    t,
		brackets: NewMatchingBracketHighlighter(WithBracketStyle(t.Styles().BracketMatch)),
	}
}

// Theme returns the theme in use.
func (h *ThemeHighlighter) Theme() Theme { return h.theme }

func (h *ThemeHighlighter) Highlight(line string, pos int) StyledText {
	return h.brackets.Highlight(line, pos)
}

// HighlightPrompt styles the default prompt with the theme's prompt
// style. Alternate prompts (continuation, search) render with the hint
// style so they read as secondary.
func (h *ThemeHighlighter) HighlightPrompt(prompt string, isDefault bool) StyledText {
	s := h.theme.Styles().Prompt
	if !isDefault {
		s = h.theme.Styles().Hint
	}
	if s.IsZero() || prompt == "" {
		return Plain(prompt)
	}
	return Spans(Span{Style: s, Text: prompt})
}

func (h *ThemeHighlighter) HighlightHint(hint string) StyledText {
	s := h.theme.Styles().Hint
	if s.IsZero() || hint == "" {
		return Plain(hint)
	}
	return Spans(Span{Style: s, Text: hint})
}

// HighlightCandidate styles list candidates with the candidate style and
// inline insertions with the hint style, so an inline preview is visually
// distinct from committed input.
func (h *ThemeHighlighter) HighlightCandidate(candidate string, kind CompletionKind) StyledText {
	s := h.theme.Styles().Candidate
	if kind == CompletionInline {
		s = h.theme.Styles().Hint
	}
	if s.IsZero() || candidate == "" {
		return Plain(candidate)
	}
	return Spans(Span{Style: s, Text: candidate})
}

func (h *ThemeHighlighter) HighlightChar(line string, pos int, forced bool) bool {
	return h.brackets.HighlightChar(line, pos, forced)
}
