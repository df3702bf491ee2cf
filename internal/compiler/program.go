package compiler

import "github.com/ibraexe/slc/internal/lexer"

// program implements:
//
//	PROGRAM := (FONCTION_DECL)* DEBUT (decl)* (stmt)* FIN
//
// emitting the prelude, every function, then main().
func (c *Compiler) program() error {
	c.em.Write("#include <stdio.h>\n\n")

	for c.cur.Kind == lexer.FONCTION {
		if err := c.fonctionDecl(); err != nil {
			return err
		}
	}

	c.em.Write("int main(){\n")
	c.em.Indent()

	if err := c.eat(lexer.DEBUT); err != nil {
		return err
	}

	// Main-block variables are locals too (scope 1), so redeclaring one
	// is rejected just as inside a function body.
	c.tab.EnterFunction()
	if err := c.declarations(); err != nil {
		return err
	}

	for c.cur.Kind != lexer.FIN {
		if err := c.instruction(); err != nil {
			return err
		}
	}
	if err := c.eat(lexer.FIN); err != nil {
		return err
	}

	c.em.Write("    return 0;\n}\n")
	return nil
}
