// Package wordlist scans lists of words to be classified by an automaton.
//
// Words are separated by blanks, newlines or commas. A '#' starts a
// comment which runs to the end of the line. The token "" stands for the
// empty word.
package wordlist

import (
	"fmt"
	"io"

	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

func tracer() tracing.Trace {
	return tracing.Select("automata.wordlist")
}

// Word is a single entry of a word list with its source position.
type Word struct {
	Text   string
	Line   int
	Column int
}

func (w Word) String() string {
	return fmt.Sprintf("%q (%d:%d)", w.Text, w.Line, w.Column)
}

// Scanner splits a word list into Words.
type Scanner struct {
	scanner *lexmachine.Scanner
}

// New creates a Scanner over input.
func New(input []byte) (*Scanner, error) {
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(`[ \t\r\n,]+`), skip)
	lexer.Add([]byte(`#[^\n]*`), skip)
	lexer.Add([]byte(`""`), word(true))
	lexer.Add([]byte(`[^ \t\r\n,#"]+`), word(false))
	if err := lexer.Compile(); err != nil {
		return nil, err
	}
	scanner, err := lexer.Scanner(input)
	if err != nil {
		return nil, err
	}
	return &Scanner{scanner: scanner}, nil
}

// Next returns the next word, or io.EOF once the input is exhausted.
func (s *Scanner) Next() (Word, error) {
	tok, err, eof := s.scanner.Next()
	if eof {
		return Word{}, io.EOF
	}
	if err != nil {
		if ui, ok := err.(*machines.UnconsumedInput); ok {
			return Word{}, fmt.Errorf("word list %d:%d: %w", ui.StartLine, ui.StartColumn, err)
		}
		return Word{}, fmt.Errorf("word list: %w", err)
	}
	return tok.(Word), nil
}

// ReadAll scans every word from r.
func ReadAll(r io.Reader) ([]Word, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	s, err := New(input)
	if err != nil {
		return nil, err
	}
	var words []Word
	for {
		w, err := s.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	tracer().Debugf("read %d words", len(words))
	return words, nil
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func word(empty bool) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		w := Word{Line: m.StartLine, Column: m.StartColumn}
		if !empty {
			w.Text = string(m.Bytes)
		}
		return w, nil
	}
}
