package repline

const ansiReset = "\x1b[0m"

// Style produces the escape sequences that start and end a text
// decoration. Start and End must have zero display width so that styling
// a span never changes the width of the rendered line.
type Style interface {
	// Start returns the sequence that enables the decoration.
	Start() string
	// End returns the sequence that disables it again.
	End() string
}

// Unstyled is the unit style: both tokens are empty and wrapping text in
// it is a no-op.
type Unstyled struct{}

func (Unstyled) Start() string { return "" }
func (Unstyled) End() string   { return "" }

// SGR is a style backed by a raw ANSI SGR prefix, for example
// "\x1b[1;34m" for bold blue. An empty prefix behaves like Unstyled.
type SGR struct {
	Prefix string
}

func (s SGR) Start() string { return s.Prefix }

func (s SGR) End() string {
	if s.Prefix == "" {
		return ""
	}
	return ansiReset
}

// IsZero reports whether the style carries no decoration.
func (s SGR) IsZero() bool { return s.Prefix == "" }
