package compiler

import (
	"github.com/ibraexe/slc/internal/lexer"
	"github.com/ibraexe/slc/internal/symtab"
)

// pour implements "POUR v DE e1 A e2 ... FINPOUR", emitting a C for-loop
// with a post-increment step.
func (c *Compiler) pour() error {
	if err := c.advance(); err != nil {
		return err
	}

	if c.cur.Kind != lexer.IDENT {
		return c.syntaxErrorf("Identifiant attendu apres POUR")
	}
	name := c.cur.Text
	sym, ok := c.tab.Find(name, symtab.Variable)
	if !ok {
		return c.semanticErrorf("Variable de boucle non declaree")
	}
	if sym.ValueType != symtab.INT {
		return c.semanticErrorf("Variable de boucle POUR doit etre de type INT")
	}
	if err := c.advance(); err != nil {
		return err
	}

	if err := c.eat(lexer.DE); err != nil {
		return err
	}

	c.em.PrintIndent()
	c.em.Writef("for(%s = ", name)

	startType, err := c.exprComplete()
	if err != nil {
		return err
	}
	if startType != symtab.INT {
		return c.semanticErrorf("Borne de debut POUR doit etre de type INT")
	}

	c.em.Writef("; %s <= ", name)
	if err := c.eat(lexer.A); err != nil {
		return err
	}

	endType, err := c.exprComplete()
	if err != nil {
		return err
	}
	if endType != symtab.INT {
		return c.semanticErrorf("Borne de fin POUR doit etre de type INT")
	}

	c.em.Writef("; %s++){\n", name)
	c.em.Indent()

	for c.cur.Kind != lexer.FINPOUR {
		if err := c.instruction(); err != nil {
			return err
		}
	}
	if err := c.eat(lexer.FINPOUR); err != nil {
		return err
	}

	c.em.Dedent()
	c.em.PrintIndent()
	c.em.Write("}\n")
	return nil
}

// tantque implements "TANTQUE e ... FINTANTQUE".
func (c *Compiler) tantque() error {
	if err := c.advance(); err != nil {
		return err
	}

	c.em.PrintIndent()
	c.em.Write("while(")
	if _, err := c.exprComplete(); err != nil {
		return err
	}
	c.em.Write("){\n")
	c.em.Indent()

	for c.cur.Kind != lexer.FINTANTQUE {
		if err := c.instruction(); err != nil {
			return err
		}
	}
	if err := c.eat(lexer.FINTANTQUE); err != nil {
		return err
	}

	c.em.Dedent()
	c.em.PrintIndent()
	c.em.Write("}\n")
	return nil
}

// repeter implements "REPETER ... TANTQUE e". Note the terminating
// TANTQUE has no FINTANTQUE; the loop body reads instructions until it
// sees TANTQUE.
func (c *Compiler) repeter() error {
	if err := c.advance(); err != nil {
		return err
	}

	c.em.PrintIndent()
	c.em.Write("do{\n")
	c.em.Indent()

	for c.cur.Kind != lexer.TANTQUE {
		if err := c.instruction(); err != nil {
			return err
		}
	}
	if err := c.eat(lexer.TANTQUE); err != nil {
		return err
	}

	c.em.Dedent()
	c.em.PrintIndent()
	c.em.Write("} while(")
	if _, err := c.exprComplete(); err != nil {
		return err
	}
	c.em.Write(");\n")
	return nil
}
