package compiler

import "github.com/ibraexe/slc/internal/lexer"

// si implements "SI e ALORS ... (SINON ...)? FINSI". An
// "SINON SI ..." is emitted as a C "else if(...){ ... }" by recursively
// re-entering ifChain, which prints no indentation of its own — the
// indented "} else " already precedes it.
func (c *Compiler) si() error {
	c.em.PrintIndent()
	return c.ifChain()
}

func (c *Compiler) ifChain() error {
	if err := c.advance(); err != nil {
		return err
	}

	c.em.Write("if(")
	if _, err := c.exprComplete(); err != nil {
		return err
	}

	if err := c.eat(lexer.ALORS); err != nil {
		return err
	}
	c.em.Write("){\n")
	c.em.Indent()

	for c.cur.Kind != lexer.SINON && c.cur.Kind != lexer.FINSI {
		if err := c.instruction(); err != nil {
			return err
		}
	}

	if c.cur.Kind == lexer.SINON {
		if err := c.advance(); err != nil {
			return err
		}
		c.em.Dedent()
		c.em.PrintIndent()
		c.em.Write("} else ")

		if c.cur.Kind == lexer.SI {
			return c.ifChain()
		}

		c.em.Write("{\n")
		c.em.Indent()
		for c.cur.Kind != lexer.FINSI {
			if err := c.instruction(); err != nil {
				return err
			}
		}
		if err := c.eat(lexer.FINSI); err != nil {
			return err
		}
		c.em.Dedent()
		c.em.PrintIndent()
		c.em.Write("}\n")
		return nil
	}

	if err := c.eat(lexer.FINSI); err != nil {
		return err
	}
	c.em.Dedent()
	c.em.PrintIndent()
	c.em.Write("}\n")
	return nil
}
