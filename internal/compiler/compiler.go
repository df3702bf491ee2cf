// Package compiler is the fused parser, symbol resolver, type checker and
// C emitter: a recursive-descent pass over SL source with a single token
// of lookahead, where every production simultaneously recognizes
// grammar, consults/updates the symbol table, infers and checks
// expression types, and writes the corresponding C text. There is no
// intermediate syntax tree.
package compiler

import (
	"fmt"
	"io"

	"github.com/ibraexe/slc/internal/diag"
	"github.com/ibraexe/slc/internal/emitter"
	"github.com/ibraexe/slc/internal/lexer"
	"github.com/ibraexe/slc/internal/symtab"
)

// Compiler holds the single piece of mutable state the whole pass shares:
// the lexer (and its current lookahead token), the symbol table, and the
// emitter. Nothing here survives past one call to Compile.
type Compiler struct {
	lex *lexer.Lexer
	cur lexer.Token

	tab *symtab.Table
	em  *emitter.Emitter
}

// New creates a Compiler that reads SL source from input and writes
// translated C to out.
func New(input []byte, out io.Writer) *Compiler {
	return &Compiler{
		lex: lexer.New(input),
		tab: symtab.New(),
		em:  emitter.New(out),
	}
}

// Compile runs the whole pipeline: prime the lookahead token, then parse
// the top-level program. The first error of any kind aborts immediately
// and is returned to the caller; no output past the error point should
// be trusted.
func (c *Compiler) Compile() error {
	if err := c.advance(); err != nil {
		return err
	}
	return c.program()
}

// advance fetches the next lookahead token from the lexer. A lexical
// error here is fatal and propagates as-is (its Error() method already
// renders the "ERREUR LEXICALE [l:c] msg -> 'tok'" format).
func (c *Compiler) advance() error {
	tok, err := c.lex.NextToken()
	if err != nil {
		return err
	}
	c.cur = tok
	return nil
}

// eat verifies the current token has the expected kind, then advances.
// A mismatch is a syntax error reported at the current (unexpected)
// token.
func (c *Compiler) eat(kind lexer.Kind) error {
	if c.cur.Kind != kind {
		return c.syntaxErrorf("Token inattendu")
	}
	return c.advance()
}

func (c *Compiler) syntaxErrorf(format string, args ...any) error {
	return diag.Syn(c.cur.Pos, fmt.Sprintf(format, args...), c.cur.Text)
}

func (c *Compiler) semanticErrorf(format string, args ...any) error {
	return diag.Sem(c.cur.Pos, fmt.Sprintf(format, args...), c.cur.Text)
}
