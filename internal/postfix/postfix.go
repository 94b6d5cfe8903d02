// Package postfix tokenizes regular expressions written in postfix
// (operator-after-operands) notation.
//
// Every character is a token of its own. Three characters are operators
// (by default '.' for concatenation, '|' for union and '*' for Kleene star);
// every other character, including blanks, is a literal symbol.
package postfix

import (
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("automata.postfix")
}

// Kind is the category of a token.
type Kind int

const (
	Symbol Kind = iota // literal alphabet symbol
	Concat
	Union
	Star
)

func (k Kind) String() string {
	switch k {
	case Symbol:
		return "symbol"
	case Concat:
		return "concat"
	case Union:
		return "union"
	case Star:
		return "star"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Arity is the number of operands an operator consumes. Symbols have
// arity 0.
func (k Kind) Arity() int {
	switch k {
	case Concat, Union:
		return 2
	case Star:
		return 1
	}
	return 0
}

// Token is a single element of a postfix expression.
type Token struct {
	Kind   Kind
	Symbol rune // valid if Kind == Symbol
	Pos    lexer.Position
}

func (t Token) String() string {
	if t.Kind == Symbol {
		return fmt.Sprintf("%q@%d", t.Symbol, t.Pos.Offset)
	}
	return fmt.Sprintf("%s@%d", t.Kind, t.Pos.Offset)
}

// Operators selects the spelling of the three operators.
type Operators struct {
	Concat rune
	Union  rune
	Star   rune
}

// DefaultOperators are '.', '|' and '*'.
var DefaultOperators = Operators{Concat: '.', Union: '|', Star: '*'}

// ErrOperators flags an unusable operator set.
var ErrOperators = errors.New("invalid operator set")

func (o Operators) validate() error {
	for _, r := range []rune{o.Concat, o.Union, o.Star} {
		if r < 0 || r == utf8.RuneError || !utf8.ValidRune(r) {
			return fmt.Errorf("%w: %q is not a valid character", ErrOperators, r)
		}
	}
	if o.Concat == o.Union || o.Concat == o.Star || o.Union == o.Star {
		return fmt.Errorf("%w: operators %q, %q, %q are not distinct", ErrOperators,
			o.Concat, o.Union, o.Star)
	}
	return nil
}

// --- Grammar ---------------------------------------------------------------

type expression struct {
	Items []*item `parser:"@@*"`
}

type item struct {
	Pos    lexer.Position
	Concat bool   `parser:"  @Concat"`
	Union  bool   `parser:"| @Union"`
	Star   bool   `parser:"| @Star"`
	Symbol string `parser:"| @Symbol"`
}

// Parser tokenizes postfix expressions for one operator set.
type Parser struct {
	ops    Operators
	parser *participle.Parser[expression]
}

// New creates a Parser for the given operator spelling.
func New(ops Operators) (*Parser, error) {
	if err := ops.validate(); err != nil {
		return nil, err
	}
	def, err := lexer.NewSimple([]lexer.SimpleRule{
		{Name: "Concat", Pattern: regexp.QuoteMeta(string(ops.Concat))},
		{Name: "Union", Pattern: regexp.QuoteMeta(string(ops.Union))},
		{Name: "Star", Pattern: regexp.QuoteMeta(string(ops.Star))},
		{Name: "Symbol", Pattern: `(?s:.)`},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOperators, err)
	}
	p, err := participle.Build[expression](participle.Lexer(def))
	if err != nil {
		return nil, err
	}
	return &Parser{ops: ops, parser: p}, nil
}

// Operators returns the operator set the parser recognizes.
func (p *Parser) Operators() Operators {
	return p.ops
}

// Parse splits expr into tokens. An empty expression yields no tokens;
// whether that is acceptable is up to the consumer.
func (p *Parser) Parse(expr string) ([]Token, error) {
	if expr == "" {
		return nil, nil
	}
	if !utf8.ValidString(expr) {
		return nil, fmt.Errorf("postfix expression %q is not valid UTF-8", expr)
	}
	ast, err := p.parser.ParseString("expr", expr)
	if err != nil {
		return nil, fmt.Errorf("postfix expression %q: %w", expr, err)
	}
	tokens := make([]Token, 0, len(ast.Items))
	for _, it := range ast.Items {
		tok := Token{Pos: it.Pos}
		switch {
		case it.Concat:
			tok.Kind = Concat
		case it.Union:
			tok.Kind = Union
		case it.Star:
			tok.Kind = Star
		default:
			tok.Kind = Symbol
			tok.Symbol, _ = utf8.DecodeRuneInString(it.Symbol)
		}
		tokens = append(tokens, tok)
	}
	tracer().Debugf("postfix %q: %d tokens", expr, len(tokens))
	return tokens, nil
}

var defaultParser = mustNew(DefaultOperators)

func mustNew(ops Operators) *Parser {
	p, err := New(ops)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse tokenizes expr with the default operators.
func Parse(expr string) ([]Token, error) {
	return defaultParser.Parse(expr)
}
