package compiler

import (
	"github.com/ibraexe/slc/internal/lexer"
	"github.com/ibraexe/slc/internal/symtab"
)

// instruction dispatches on the current token's kind to one of the eight
// statement productions. Any other kind is a syntax error.
func (c *Compiler) instruction() error {
	switch c.cur.Kind {
	case lexer.IDENT:
		return c.assignment()
	case lexer.RETOURNER:
		return c.retourner()
	case lexer.ECRIRE:
		return c.ecrire()
	case lexer.LIRE:
		return c.lire()
	case lexer.TANTQUE:
		return c.tantque()
	case lexer.REPETER:
		return c.repeter()
	case lexer.POUR:
		return c.pour()
	case lexer.SI:
		return c.si()
	}
	return c.syntaxErrorf("Instruction inconnue")
}

// assignment implements "v ~ expr" and "v[i] ~ expr".
func (c *Compiler) assignment() error {
	name := c.cur.Text
	sym, ok := c.tab.Find(name, symtab.Variable)
	if !ok {
		return c.semanticErrorf("Variable non declaree")
	}

	if err := c.advance(); err != nil {
		return err
	}

	c.em.PrintIndent()

	var lhsType symtab.ValueType
	if c.cur.Kind == lexer.LBRACKET {
		if !sym.IsArray() {
			return c.semanticErrorf("Acces tableau sur variable scalaire")
		}
		if err := c.advance(); err != nil {
			return err
		}
		c.em.Writef("%s[", name)

		idxType, err := c.exprComplete()
		if err != nil {
			return err
		}
		if idxType != symtab.INT {
			return c.semanticErrorf("Indice de tableau doit etre de type INT")
		}
		if err := c.eat(lexer.RBRACKET); err != nil {
			return err
		}
		c.em.Write("] = ")
		lhsType = sym.ValueType
	} else {
		lhsType = sym.ValueType
		c.em.Writef("%s = ", name)
	}

	if err := c.eatAssignOp(); err != nil {
		return err
	}

	rhsType, err := c.exprComplete()
	if err != nil {
		return err
	}
	if lhsType != rhsType {
		return c.semanticErrorf("Affectation: types incompatibles")
	}

	c.em.Write(";\n")
	return nil
}

// eatAssignOp consumes the assignment token, which is spelled either '~'
// or '='; both lex to ASSIGN.
func (c *Compiler) eatAssignOp() error {
	return c.eat(lexer.ASSIGN)
}

// retourner implements "RETOURNER expr". Valid only inside a function body.
func (c *Compiler) retourner() error {
	if !c.em.InFunction {
		return c.semanticErrorf("RETOURNER hors fonction")
	}

	if err := c.advance(); err != nil {
		return err
	}
	c.em.PrintIndent()
	c.em.Write("return ")

	if _, err := c.exprComplete(); err != nil {
		return err
	}
	c.em.Write(";\n")
	return nil
}

// ecrire implements ECRIRE's two forms: a bare string literal becomes a
// literal printf, otherwise the expression is captured so its inferred
// type can select the format specifier before the capture text is
// replayed as the printf argument.
func (c *Compiler) ecrire() error {
	if err := c.advance(); err != nil {
		return err
	}
	c.em.PrintIndent()

	if c.cur.Kind == lexer.STRING {
		c.em.Writef("printf(\"%s\\n\");\n", c.cur.Text)
		return c.advance()
	}

	var exprType symtab.ValueType
	text, err := c.em.Capture(func() error {
		var exprErr error
		exprType, exprErr = c.exprComplete()
		return exprErr
	})
	if err != nil {
		return err
	}

	c.em.Writef("printf(\"%s\\n\", %s);\n", formatSpecifier(exprType), text)
	return nil
}

// lire implements "LIRE(v)" and "LIRE(v[i])".
func (c *Compiler) lire() error {
	if err := c.advance(); err != nil {
		return err
	}
	if err := c.eat(lexer.LPAREN); err != nil {
		return err
	}

	if c.cur.Kind != lexer.IDENT {
		return c.syntaxErrorf("Identifiant attendu")
	}
	name := c.cur.Text
	sym, ok := c.tab.Find(name, symtab.Variable)
	if !ok {
		return c.semanticErrorf("Variable non declaree")
	}
	if err := c.advance(); err != nil {
		return err
	}

	c.em.PrintIndent()

	if c.cur.Kind == lexer.LBRACKET {
		if !sym.IsArray() {
			return c.semanticErrorf("Acces tableau sur variable scalaire")
		}
		if err := c.advance(); err != nil {
			return err
		}
		c.em.Writef("scanf(\"%%d\", &%s[", name)
		idxType, err := c.exprComplete()
		if err != nil {
			return err
		}
		if idxType != symtab.INT {
			return c.semanticErrorf("Indice de tableau doit etre de type INT")
		}
		if err := c.eat(lexer.RBRACKET); err != nil {
			return err
		}
		c.em.Write("]);\n")
	} else {
		c.em.Writef("scanf(\"%s\", &%s);\n", scanFormatSpecifier(sym.ValueType), name)
	}

	return c.eat(lexer.RPAREN)
}

// formatSpecifier returns the printf conversion for a ValueType.
func formatSpecifier(vt symtab.ValueType) string {
	switch vt {
	case symtab.FLOAT:
		return "%f"
	case symtab.CHAR:
		return "%c"
	default:
		return "%d"
	}
}

// scanFormatSpecifier returns the scanf conversion for a scalar
// ValueType. CHAR uses a leading space to skip pending whitespace left
// by a prior numeric scanf call.
func scanFormatSpecifier(vt symtab.ValueType) string {
	switch vt {
	case symtab.FLOAT:
		return "%f"
	case symtab.CHAR:
		return " %c"
	default:
		return "%d"
	}
}
