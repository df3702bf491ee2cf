package compiler

import (
	"github.com/ibraexe/slc/internal/lexer"
	"github.com/ibraexe/slc/internal/symtab"
)

// fonctionDecl implements:
//
//	FONCTION name '(' (type id (',' type id)*)? ')' ... FINFONCTION
//
// Parameters are inserted as scope-1 variables before the function
// symbol itself is inserted into the table.
func (c *Compiler) fonctionDecl() error {
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

	if err := c.eat(lexer.LPAREN); err != nil {
		return err
	}

	c.tab.EnterFunction()

	var paramTypes []symtab.ValueType
	var paramNames []string

	if isParamType(c.cur.Kind) {
		for {
			vtype, err := c.paramType()
			if err != nil {
				return err
			}
			if c.cur.Kind != lexer.IDENT {
				return c.syntaxErrorf("Identifiant attendu")
			}
			pname := c.cur.Text
			if err := c.tab.AddVariable(pname, vtype, 0); err != nil {
				return c.semanticErrorf("%s", err.Error())
			}
			paramTypes = append(paramTypes, vtype)
			paramNames = append(paramNames, pname)
			if err := c.advance(); err != nil {
				return err
			}

			if c.cur.Kind != lexer.COMMA {
				break
			}
			if err := c.advance(); err != nil {
				return err
			}
			if !isParamType(c.cur.Kind) {
				return c.syntaxErrorf("Type de parametre attendu")
			}
		}
	}

	if err := c.eat(lexer.RPAREN); err != nil {
		return err
	}

	c.tab.LeaveFunction()
	if err := c.tab.AddFunction(name, paramTypes); err != nil {
		return c.semanticErrorf("%s", err.Error())
	}
	c.tab.EnterFunction()

	c.em.Writef("int %s(", name)
	for i, pt := range paramTypes {
		if i > 0 {
			c.em.Write(", ")
		}
		c.em.Writef("%s %s", pt.CType(), paramNames[i])
	}
	c.em.Write("){\n")

	c.em.InFunction = true
	c.em.Indent()

	if err := c.declarations(); err != nil {
		return err
	}

	for c.cur.Kind != lexer.FINFONCTION {
		if err := c.instruction(); err != nil {
			return err
		}
	}
	if err := c.eat(lexer.FINFONCTION); err != nil {
		return err
	}

	c.em.Dedent()
	c.em.Write("}\n\n")

	c.em.InFunction = false
	c.tab.LeaveFunction()
	return nil
}

func isParamType(kind lexer.Kind) bool {
	switch kind {
	case lexer.KwINT, lexer.KwCHAR, lexer.KwFLOAT:
		return true
	}
	return false
}

func (c *Compiler) paramType() (symtab.ValueType, error) {
	var vt symtab.ValueType
	switch c.cur.Kind {
	case lexer.KwINT:
		vt = symtab.INT
	case lexer.KwCHAR:
		vt = symtab.CHAR
	case lexer.KwFLOAT:
		vt = symtab.FLOAT
	default:
		return 0, c.syntaxErrorf("Type de parametre attendu")
	}
	return vt, c.advance()
}
