package compiler

import (
	"github.com/ibraexe/slc/internal/lexer"
	"github.com/ibraexe/slc/internal/symtab"
)

// relOp maps a relational token kind to its (identical) C spelling.
var relOp = map[lexer.Kind]string{
	lexer.EQ:  "==",
	lexer.NEQ: "!=",
	lexer.LT:  "<",
	lexer.GT:  ">",
	lexer.LE:  "<=",
	lexer.GE:  ">=",
}

// exprComplete implements EXPR_COMPLETE := EXPR ( REL_OP EXPR )?. At
// most one relational operator is allowed at the top level — there is
// no chaining like a < b < c.
func (c *Compiler) exprComplete() (symtab.ValueType, error) {
	lhs, err := c.expr()
	if err != nil {
		return 0, err
	}

	opStr, isRel := relOp[c.cur.Kind]
	if !isRel {
		return lhs, nil
	}

	c.em.Writef(" %s ", opStr)
	if err := c.advance(); err != nil {
		return 0, err
	}

	rhs, err := c.expr()
	if err != nil {
		return 0, err
	}
	if lhs != rhs {
		return 0, c.semanticErrorf("Comparaison entre types differents")
	}
	return symtab.INT, nil
}

// expr implements EXPR := TERM ( (+|-) TERM )*.
func (c *Compiler) expr() (symtab.ValueType, error) {
	t1, err := c.term()
	if err != nil {
		return 0, err
	}

	for c.cur.Kind == lexer.PLUS || c.cur.Kind == lexer.MINUS {
		op := "+"
		if c.cur.Kind == lexer.MINUS {
			op = "-"
		}
		c.em.Writef(" %s ", op)
		if err := c.advance(); err != nil {
			return 0, err
		}

		t2, err := c.term()
		if err != nil {
			return 0, err
		}
		if t1 != t2 {
			return 0, c.semanticErrorf("Operation entre types differents (add/sub)")
		}
		t1 = t2
	}
	return t1, nil
}

// term implements TERM := FACT ( (*|/) FACT )*.
func (c *Compiler) term() (symtab.ValueType, error) {
	t1, err := c.fact()
	if err != nil {
		return 0, err
	}

	for c.cur.Kind == lexer.STAR || c.cur.Kind == lexer.SLASH {
		op := "*"
		if c.cur.Kind == lexer.SLASH {
			op = "/"
		}
		c.em.Writef(" %s ", op)
		if err := c.advance(); err != nil {
			return 0, err
		}

		t2, err := c.fact()
		if err != nil {
			return 0, err
		}
		if t1 != t2 {
			return 0, c.semanticErrorf("Operation entre types differents (mul/div)")
		}
		t1 = t2
	}
	return t1, nil
}

// fact implements FACT:
//
//	FACT := '(' EXPR_COMPLETE ')' | identifier | identifier '(' args ')'
//	      | identifier '[' EXPR_COMPLETE ']' | integer | real | character
func (c *Compiler) fact() (symtab.ValueType, error) {
	switch c.cur.Kind {
	case lexer.LPAREN:
		c.em.Write("(")
		if err := c.advance(); err != nil {
			return 0, err
		}
		t, err := c.exprComplete()
		if err != nil {
			return 0, err
		}
		if err := c.eat(lexer.RPAREN); err != nil {
			return 0, err
		}
		c.em.Write(")")
		return t, nil

	case lexer.IDENT:
		return c.identFactor()

	case lexer.INT:
		c.em.Write(c.cur.Text)
		if err := c.advance(); err != nil {
			return 0, err
		}
		return symtab.INT, nil

	case lexer.REAL:
		c.em.Write(c.cur.Text)
		if err := c.advance(); err != nil {
			return 0, err
		}
		return symtab.FLOAT, nil

	case lexer.CHAR:
		c.em.Writef("'%s'", c.cur.Text)
		if err := c.advance(); err != nil {
			return 0, err
		}
		return symtab.CHAR, nil
	}

	return 0, c.syntaxErrorf("Facteur invalide")
}

// identFactor handles the three identifier-led alternatives of FACT:
// a bare variable reference, a function call, or an array index.
func (c *Compiler) identFactor() (symtab.ValueType, error) {
	name := c.cur.Text
	if err := c.advance(); err != nil {
		return 0, err
	}

	switch c.cur.Kind {
	case lexer.LPAREN:
		return c.callExpr(name)
	case lexer.LBRACKET:
		return c.indexExpr(name)
	default:
		sym, ok := c.tab.Find(name, symtab.Variable)
		if !ok {
			return 0, c.semanticErrorf("Variable non declaree")
		}
		c.em.Write(name)
		return sym.ValueType, nil
	}
}

// callExpr parses the "(args)" tail of a function call, checking arity
// and per-argument types against the function's declared signature.
// Argument-count and argument-type mismatches are reported at whatever
// token is current when the mismatch is detected, not at the offending
// argument — here that is, respectively, the closing parenthesis and
// the token following the mismatched argument.
func (c *Compiler) callExpr(name string) (symtab.ValueType, error) {
	fn, ok := c.tab.Find(name, symtab.Function)
	if !ok {
		return 0, c.semanticErrorf("Fonction non declaree")
	}

	c.em.Writef("%s(", name)
	if err := c.advance(); err != nil {
		return 0, err
	}

	argCount := 0
	if c.cur.Kind != lexer.RPAREN {
		for {
			argType, err := c.exprComplete()
			if err != nil {
				return 0, err
			}
			if argCount < fn.ParamCount && argType != fn.ParamTypes[argCount] {
				return 0, c.semanticErrorf("Type de parametre incorrect")
			}
			argCount++

			if c.cur.Kind != lexer.COMMA {
				break
			}
			c.em.Write(", ")
			if err := c.advance(); err != nil {
				return 0, err
			}
		}
	}

	if c.cur.Kind == lexer.RPAREN && argCount != fn.ParamCount {
		return 0, c.semanticErrorf("Nombre de parametres incorrect")
	}
	if err := c.eat(lexer.RPAREN); err != nil {
		return 0, err
	}
	c.em.Write(")")
	return fn.ValueType, nil
}

// indexExpr parses the "[index]" tail of an array reference.
func (c *Compiler) indexExpr(name string) (symtab.ValueType, error) {
	sym, ok := c.tab.Find(name, symtab.Variable)
	if !ok {
		return 0, c.semanticErrorf("Variable non declaree")
	}
	if !sym.IsArray() {
		return 0, c.semanticErrorf("Acces tableau sur variable scalaire")
	}

	if err := c.advance(); err != nil {
		return 0, err
	}
	c.em.Writef("%s[", name)

	idxType, err := c.exprComplete()
	if err != nil {
		return 0, err
	}
	if idxType != symtab.INT {
		return 0, c.semanticErrorf("Indice de tableau doit etre de type INT")
	}

	if err := c.eat(lexer.RBRACKET); err != nil {
		return 0, err
	}
	c.em.Write("]")
	return sym.ValueType, nil
}
