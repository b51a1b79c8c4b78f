package highlight

import (
	"bytes"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/reflow/wrap"
)

// DefaultStyle is used when no style name is given.
const DefaultStyle = "solarized-dark"

var (
	lexerOnce sync.Once
	argsLexer chroma.Lexer
)

// NewArgsLexer creates a Chroma lexer for rendered argument lists such as
// `(some_str, 12, k = (inner = "v"))`.
func NewArgsLexer() chroma.Lexer {
	return chroma.MustNewLexer(
		&chroma.Config{
			Name:      "ArgList",
			Aliases:   []string{"args", "arglist"},
			MimeTypes: []string{"text/x-arglist"},
		},
		func() chroma.Rules {
			return chroma.Rules{
				"root": {
					{Pattern: `\s+`, Type: chroma.Text, Mutator: nil},

					// Literals
					{Pattern: `"(?:[^"\\]|\\.)*"`, Type: chroma.LiteralString, Mutator: nil},
					{Pattern: `'(?:[^'\\]|\\.)*'`, Type: chroma.LiteralStringChar, Mutator: nil},
					{Pattern: `\b(true|false|nil|<nil>)\b`, Type: chroma.KeywordConstant, Mutator: nil},
					{Pattern: `-?\b0x[0-9A-Fa-f]+\b`, Type: chroma.LiteralNumberHex, Mutator: nil},
					{Pattern: `-?\b[0-9]+\.[0-9]+([eE][+-]?[0-9]+)?\b`, Type: chroma.LiteralNumberFloat, Mutator: nil},
					{Pattern: `-?\b[0-9]+\b`, Type: chroma.LiteralNumberInteger, Mutator: nil},

					// Describable objects print as TypeName(...)
					{Pattern: `\b[A-Za-z_][A-Za-z0-9_.]*(?=\()`, Type: chroma.NameClass, Mutator: nil},

					// Argument names sit right before " = "
					{Pattern: `\b[A-Za-z_][A-Za-z0-9_]*(?=\s*=)`, Type: chroma.NameAttribute, Mutator: nil},
					{Pattern: `\b[A-Za-z_][A-Za-z0-9_]*\b`, Type: chroma.Name, Mutator: nil},

					{Pattern: `=`, Type: chroma.Operator, Mutator: nil},
					{Pattern: `[(){}\[\],]`, Type: chroma.Punctuation, Mutator: nil},

					// Anything else is plain text
					{Pattern: `.`, Type: chroma.Text, Mutator: nil},
				},
			}
		},
	)
}

func lexer() chroma.Lexer {
	lexerOnce.Do(func() {
		argsLexer = NewArgsLexer()
	})
	return argsLexer
}

// Args returns s with ANSI syntax highlighting.
// Available styles: "monokai", "solarized-dark", "solarized-light", "github", "vim", etc.
// maxWidth: maximum line width in visible characters (0 = no wrapping). Wrapping happens AFTER highlighting to preserve ANSI codes.
// Returns s unchanged if highlighting fails.
func Args(s, styleName string, maxWidth int) string {
	if styleName == "" {
		styleName = DefaultStyle
	}

	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer().Tokenise(nil, s)
	if err != nil {
		return s
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return s
	}

	highlighted := buf.String()

	if maxWidth > 0 {
		highlighted = wrap.String(highlighted, maxWidth)
	}

	return highlighted
}
