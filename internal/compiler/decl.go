package compiler

import (
	"github.com/ibraexe/slc/internal/lexer"
	"github.com/ibraexe/slc/internal/symtab"
)

// isTypeKeyword reports whether kind starts a declaration: a scalar type
// keyword, or TABLE.
func isTypeKeyword(kind lexer.Kind) bool {
	switch kind {
	case lexer.KwINT, lexer.KwCHAR, lexer.KwFLOAT, lexer.TABLE:
		return true
	}
	return false
}

// declarations parses a sequence of declarations:
//
//	INT|CHAR|FLOAT name
//	INT|CHAR|FLOAT name '[' N ']'
//	TABLE INT|CHAR|FLOAT name '[' N ']'
//
// This single implementation is shared by both call sites: the top of a
// function body, and the top of the main block. Both run the identical
// loop.
func (c *Compiler) declarations() error {
	for isTypeKeyword(c.cur.Kind) {
		if err := c.declaration(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Compiler) declaration() error {
	isTable := false
	var vtype symtab.ValueType

	if c.cur.Kind == lexer.TABLE {
		isTable = true
		if err := c.advance(); err != nil {
			return err
		}
	}

	switch c.cur.Kind {
	case lexer.KwINT:
		vtype = symtab.INT
	case lexer.KwCHAR:
		vtype = symtab.CHAR
	case lexer.KwFLOAT:
		vtype = symtab.FLOAT
	default:
		if isTable {
			return c.syntaxErrorf("Type de tableau attendu (INT, FLOAT, CHAR) apres TABLE")
		}
		return c.syntaxErrorf("Type de declaration attendu")
	}
	if err := c.advance(); err != nil {
		return err
	}

	if c.cur.Kind != lexer.IDENT {
		return c.syntaxErrorf("Identifiant attendu")
	}
	name := c.cur.Text
	if err := c.advance(); err != nil {
		return err
	}

	arrSize := 0
	switch {
	case c.cur.Kind == lexer.LBRACKET:
		if err := c.advance(); err != nil {
			return err
		}
		if c.cur.Kind != lexer.INT {
			return c.syntaxErrorf("Taille de tableau doit etre une constante")
		}
		arrSize = atoiSafe(c.cur.Text)
		if err := c.advance(); err != nil {
			return err
		}
		if err := c.eat(lexer.RBRACKET); err != nil {
			return err
		}
	case isTable:
		return c.syntaxErrorf("Crochets attendus pour declaration de tableau")
	}

	if err := c.tab.AddVariable(name, vtype, arrSize); err != nil {
		return c.semanticErrorf("%s", err.Error())
	}

	c.em.PrintIndent()
	c.em.Writef("%s %s", vtype.CType(), name)
	if arrSize > 0 {
		c.em.Writef("[%d]", arrSize)
	}
	c.em.Write(";\n")
	return nil
}

// atoiSafe parses an already-lexed INT token's text. The lexer guarantees
// text is all digits, so the only possible failure (overflow of a
// pathologically long literal) is not a concern for a pedagogical
// language's array sizes.
func atoiSafe(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
