package lexer

import "testing"

func tokenize(t *testing.T, input string) []Token {
	t.Helper()
	l := New([]byte(input))
	var toks []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("unexpected lexer error: %v", err)
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks
		}
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	toks := tokenize(t, "DEBUT x FINFONCTION foo123")
	want := []Kind{DEBUT, IDENT, FINFONCTION, IDENT, EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
	if toks[1].Text != "x" {
		t.Errorf("identifier text = %q, want x", toks[1].Text)
	}
	if toks[3].Text != "foo123" {
		t.Errorf("identifier text = %q, want foo123", toks[3].Text)
	}
}

func TestNumbers(t *testing.T) {
	toks := tokenize(t, "42 3.14 0")
	if toks[0].Kind != INT || toks[0].Text != "42" {
		t.Errorf("got %v, want INT 42", toks[0])
	}
	if toks[1].Kind != REAL || toks[1].Text != "3.14" {
		t.Errorf("got %v, want REAL 3.14", toks[1])
	}
	if toks[2].Kind != INT || toks[2].Text != "0" {
		t.Errorf("got %v, want INT 0", toks[2])
	}
}

func TestCharAndStringLiterals(t *testing.T) {
	toks := tokenize(t, `'a' "hello"`)
	if toks[0].Kind != CHAR || toks[0].Text != "a" {
		t.Errorf("got %v, want CHAR a", toks[0])
	}
	if toks[1].Kind != STRING || toks[1].Text != "hello" {
		t.Errorf("got %v, want STRING hello", toks[1])
	}
}

func TestOperators(t *testing.T) {
	toks := tokenize(t, "~ = == != < > <= >= + - * / ( ) [ ] ,")
	want := []Kind{ASSIGN, ASSIGN, EQ, NEQ, LT, GT, LE, GE, PLUS, MINUS, STAR, SLASH,
		LPAREN, RPAREN, LBRACKET, RBRACKET, COMMA, EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestPositions(t *testing.T) {
	l := New([]byte("x\ny"))
	tok, err := l.NextToken()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Pos.Line != 1 || tok.Pos.Column != 1 {
		t.Errorf("pos = %v, want 1:1", tok.Pos)
	}
	tok, err = l.NextToken()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Pos.Line != 2 || tok.Pos.Column != 1 {
		t.Errorf("pos = %v, want 2:1", tok.Pos)
	}
}

func TestLexicalErrors(t *testing.T) {
	cases := []string{"@", "!x", "'ab'", "\"unterminated"}
	for _, in := range cases {
		l := New([]byte(in))
		var lastErr error
		for {
			tok, err := l.NextToken()
			if err != nil {
				lastErr = err
				break
			}
			if tok.Kind == EOF {
				break
			}
		}
		if lastErr == nil {
			t.Errorf("input %q: expected lexical error, got none", in)
		}
	}
}

func TestIdentifierTruncation(t *testing.T) {
	long := ""
	for i := 0; i < 100; i++ {
		long += "a"
	}
	toks := tokenize(t, long)
	if len(toks[0].Text) != maxTokenText {
		t.Errorf("identifier length = %d, want %d", len(toks[0].Text), maxTokenText)
	}
}
