// Command repline is a demo line editor for the repline highlighters.
//
// It reads lines interactively when stdin is a terminal, re-highlighting
// on every keystroke, and otherwise highlights each line read from
// stdin. Tab lists completion candidates; a unique candidate shows up as
// an inline hint and Tab accepts it.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/repline"
	"pkt.systems/version"
)

const defaultPrompt = "> "

var demoCandidates = []string{
	"append(", "cap(", "copy(", "delete(", "len(", "make(", "new(", "panic(", "println(",
}

func init() {
	version.SetDefaultModule("pkt.systems/repline")
}

func main() {
	var (
		themeName  string
		listThemes bool
		maskInput  bool
		boring     bool
		prompt     string
	)

	flags := pflag.NewFlagSet("repline", pflag.ExitOnError)
	flags.StringVarP(&themeName, "theme", "t", "default", "Theme name")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.BoolVar(&maskInput, "mask", false, "Mask input like a password prompt")
	flags.BoolVarP(&boring, "boring", "b", false, "Disable highlighting")
	flags.StringVarP(&prompt, "prompt", "p", defaultPrompt, "Prompt text")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: repline [flags]\n")
		fmt.Fprintln(os.Stderr, "\nReads from stdin; Ctrl-D on an empty line exits.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if listThemes {
		printThemes()
		return
	}

	theme, ok := repline.ThemeByName(themeName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown theme %q\n\n", themeName)
		printThemes()
		os.Exit(2)
	}

	var inner repline.Highlighter
	switch {
	case maskInput:
		inner = repline.NewMaskingHighlighter('*')
	case boring:
		inner = nil // Delegate falls back to pass-through
	default:
		inner = repline.NewThemeHighlighter(theme)
	}
	h := repline.Delegate{H: inner}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		if err := highlightStream(os.Stdin, os.Stdout, h); err != nil {
			fmt.Fprintf(os.Stderr, "highlight: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ed := &editor{h: h, prompt: prompt, in: bufio.NewReader(os.Stdin), out: bufio.NewWriter(os.Stdout)}
	if err := ed.run(fd); err != nil {
		fmt.Fprintf(os.Stderr, "repline: %v\n", err)
		os.Exit(1)
	}
}

func printThemes() {
	fmt.Fprintln(os.Stderr, "Available themes:")
	for _, name := range repline.AvailableThemes() {
		fmt.Fprintf(os.Stderr, "  %s\n", name)
	}
}

// highlightStream highlights whole lines read from r, cursor at the end
// of each line, the way a final keystroke would see them.
func highlightStream(r io.Reader, w io.Writer, h repline.Highlighter) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		st := repline.Plain(line)
		if h.HighlightChar(line, len(line), false) {
			st = h.Highlight(line, len(line))
		}
		if _, err := st.WriteTo(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// editor is the minimal interactive collaborator: it owns the line
// buffer and cursor and asks the highlighter what to repaint.
type editor struct {
	h      repline.Highlighter
	prompt string
	in     *bufio.Reader
	out    *bufio.Writer

	line []rune
	pos  int // rune index into line
}

func (ed *editor) run(fd int) error {
	old, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, old) }()

	if err := ed.redraw(); err != nil {
		return err
	}
	for {
		r, _, err := ed.in.ReadRune()
		if err != nil {
			return err
		}
		switch r {
		case 0x03: // Ctrl-C
			ed.line = ed.line[:0]
			ed.pos = 0
			if _, err := ed.out.WriteString("^C\r\n"); err != nil {
				return err
			}
		case 0x04: // Ctrl-D
			if len(ed.line) == 0 {
				_, err := ed.out.WriteString("\r\n")
				if err == nil {
					err = ed.out.Flush()
				}
				return err
			}
		case '\r', '\n':
			if err := ed.submit(); err != nil {
				return err
			}
		case 0x7f, 0x08: // backspace
			if ed.pos > 0 {
				ed.line = append(ed.line[:ed.pos-1], ed.line[ed.pos:]...)
				ed.pos--
			}
		case '\t':
			if err := ed.complete(); err != nil {
				return err
			}
		case 0x1b:
			if err := ed.escape(); err != nil {
				return err
			}
		default:
			if r >= 0x20 || r == utf8.RuneError {
				ed.line = append(ed.line[:ed.pos], append([]rune{r}, ed.line[ed.pos:]...)...)
				ed.pos++
			}
		}
		if err := ed.redraw(); err != nil {
			return err
		}
	}
}

func (ed *editor) escape() error {
	b, err := ed.in.ReadByte()
	if err != nil || b != '[' {
		return err
	}
	b, err = ed.in.ReadByte()
	if err != nil {
		return err
	}
	switch b {
	case 'C':
		if ed.pos < len(ed.line) {
			ed.pos++
		}
	case 'D':
		if ed.pos > 0 {
			ed.pos--
		}
	case 'H':
		ed.pos = 0
	case 'F':
		ed.pos = len(ed.line)
	}
	return nil
}

// submit runs the forced refresh cycle and prints the final line
// unstyled, the way a real editor renders the transient result.
func (ed *editor) submit() error {
	line := string(ed.line)
	_ = ed.h.HighlightChar(line, ed.byteCursor(), true)
	if _, err := ed.out.WriteString("\r\x1b[K"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(ed.out, "%s%s\r\n", ed.prompt, line); err != nil {
		return err
	}
	if line != "" {
		if _, err := fmt.Fprintf(ed.out, "input: %s\r\n", line); err != nil {
			return err
		}
	}
	ed.line = ed.line[:0]
	ed.pos = 0
	return nil
}

func (ed *editor) complete() error {
	matches := ed.matches()
	switch len(matches) {
	case 0:
		return nil
	case 1:
		ed.accept(matches[0])
		return nil
	}
	width, _, err := term.GetSize(int(os.Stdin.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}
	if _, err := ed.out.WriteString("\r\n"); err != nil {
		return err
	}
	for _, c := range matches {
		st := ed.h.HighlightCandidate(repline.TruncateCandidate(c, width-2), repline.CompletionList)
		if _, err := st.WriteTo(ed.out); err != nil {
			return err
		}
		if _, err := ed.out.WriteString("\r\n"); err != nil {
			return err
		}
	}
	return nil
}

// matches returns the demo candidates completing the word at the cursor.
func (ed *editor) matches() []string {
	word := currentWord(string(ed.line[:ed.pos]))
	if word == "" {
		return nil
	}
	var out []string
	for _, c := range demoCandidates {
		if strings.HasPrefix(c, word) && c != word {
			out = append(out, c)
		}
	}
	return out
}

func (ed *editor) accept(candidate string) {
	word := currentWord(string(ed.line[:ed.pos]))
	rest := []rune(strings.TrimPrefix(candidate, word))
	ed.line = append(ed.line[:ed.pos], append(rest, ed.line[ed.pos:]...)...)
	ed.pos += len(rest)
}

func (ed *editor) byteCursor() int {
	return len(string(ed.line[:ed.pos]))
}

func (ed *editor) redraw() error {
	if _, err := ed.out.WriteString("\r\x1b[K"); err != nil {
		return err
	}
	p := ed.h.HighlightPrompt(ed.prompt, true)
	if _, err := p.WriteTo(ed.out); err != nil {
		return err
	}
	line := string(ed.line)
	st := repline.Plain(line)
	if ed.h.HighlightChar(line, ed.byteCursor(), false) {
		st = ed.h.Highlight(line, ed.byteCursor())
	}
	if _, err := st.WriteTo(ed.out); err != nil {
		return err
	}
	back := repline.Width(string(ed.line[ed.pos:]))
	if hint := ed.hint(); hint != "" {
		sh := ed.h.HighlightHint(hint)
		if _, err := sh.WriteTo(ed.out); err != nil {
			return err
		}
		back += repline.Width(hint)
	}
	if back > 0 {
		if _, err := fmt.Fprintf(ed.out, "\x1b[%dD", back); err != nil {
			return err
		}
	}
	return ed.out.Flush()
}

// hint returns the remainder of a unique candidate match, shown after
// the cursor fish-style.
func (ed *editor) hint() string {
	if ed.pos != len(ed.line) {
		return ""
	}
	matches := ed.matches()
	if len(matches) != 1 {
		return ""
	}
	return strings.TrimPrefix(matches[0], currentWord(string(ed.line)))
}

func currentWord(s string) string {
	if idx := strings.LastIndexAny(s, " \t("); idx >= 0 {
		return s[idx+1:]
	}
	return s
}
