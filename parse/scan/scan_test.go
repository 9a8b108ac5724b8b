package scan

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"slices"
	"testing"
)

func TestScanner(t *testing.T) {
	tests := []struct {
		input  string
		tokens []Token
	}{
		{
			input: `x[1]^2 + 2*x[1]*x[2] - x[2]^2`,
			tokens: []Token{
				{Type: X, Text: "x", Location: Location{Line: 0, Column: 0}},
				{Type: LBracket, Text: "[", Location: Location{Line: 0, Column: 1}},
				{Type: Int, Text: "1", Location: Location{Line: 0, Column: 2}},
				{Type: RBracket, Text: "]", Location: Location{Line: 0, Column: 3}},
				{Type: Caret, Text: "^", Location: Location{Line: 0, Column: 4}},
				{Type: Int, Text: "2", Location: Location{Line: 0, Column: 5}},
				{Type: Plus, Text: "+", Location: Location{Line: 0, Column: 7}},
				{Type: Int, Text: "2", Location: Location{Line: 0, Column: 9}},
				{Type: Star, Text: "*", Location: Location{Line: 0, Column: 10}},
				{Type: X, Text: "x", Location: Location{Line: 0, Column: 11}},
				{Type: LBracket, Text: "[", Location: Location{Line: 0, Column: 12}},
				{Type: Int, Text: "1", Location: Location{Line: 0, Column: 13}},
				{Type: RBracket, Text: "]", Location: Location{Line: 0, Column: 14}},
				{Type: Star, Text: "*", Location: Location{Line: 0, Column: 15}},
				{Type: X, Text: "x", Location: Location{Line: 0, Column: 16}},
				{Type: LBracket, Text: "[", Location: Location{Line: 0, Column: 17}},
				{Type: Int, Text: "2", Location: Location{Line: 0, Column: 18}},
				{Type: RBracket, Text: "]", Location: Location{Line: 0, Column: 19}},
				{Type: Minus, Text: "-", Location: Location{Line: 0, Column: 21}},
				{Type: X, Text: "x", Location: Location{Line: 0, Column: 23}},
				{Type: LBracket, Text: "[", Location: Location{Line: 0, Column: 24}},
				{Type: Int, Text: "2", Location: Location{Line: 0, Column: 25}},
				{Type: RBracket, Text: "]", Location: Location{Line: 0, Column: 26}},
				{Type: Caret, Text: "^", Location: Location{Line: 0, Column: 27}},
				{Type: Int, Text: "2", Location: Location{Line: 0, Column: 28}},
			},
		},
		{
			input: `x[0], x[1]`,
			tokens: []Token{
				{Type: X, Text: "x", Location: Location{Line: 0, Column: 0}},
				{Type: LBracket, Text: "[", Location: Location{Line: 0, Column: 1}},
				{Type: Int, Text: "0", Location: Location{Line: 0, Column: 2}},
				{Type: RBracket, Text: "]", Location: Location{Line: 0, Column: 3}},
				{Type: Comma, Text: ",", Location: Location{Line: 0, Column: 4}},
				{Type: X, Text: "x", Location: Location{Line: 0, Column: 6}},
				{Type: LBracket, Text: "[", Location: Location{Line: 0, Column: 7}},
				{Type: Int, Text: "1", Location: Location{Line: 0, Column: 8}},
				{Type: RBracket, Text: "]", Location: Location{Line: 0, Column: 9}},
			},
		},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			t.Parallel()
			l := NewScanner(bytes.NewBufferString(test.input))
			var tokens []Token
			for i := l.Next(); i.Type != EOF; i = l.Next() {
				tokens = append(tokens, i)
			}
			if !slices.Equal(tokens, test.tokens) {
				t.Errorf("%+v", tokens)
			}
		})
	}
}

func TestScannerUnknownIndeterminate(t *testing.T) {
	l := NewScanner(bytes.NewBufferString(`y[0]`))
	tok := l.Next()
	if tok.Type != Error {
		t.Fatalf("got %+v, want an Error token", tok)
	}
}

func TestMain(m *testing.M) {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds | log.Llongfile | log.LstdFlags)

	m.Run()
}
