// Package diag implements the compiler's three positioned diagnostic
// kinds: lexical, syntax, and semantic. Each diagnostic is fatal and
// aborts compilation the moment it is raised, so there is no accumulated
// list and no source-context carets, just a single rendered line.
package diag

import (
	"fmt"

	"github.com/ibraexe/slc/internal/lexer"
)

// Category is one of the three diagnostic prefixes.
type Category string

const (
	Lexical  Category = "ERREUR LEXICALE"
	Syntax   Category = "ERREUR SYNTAXIQUE"
	Semantic Category = "ERREUR SEMANTIQUE"
)

// Error is a single positioned compiler diagnostic. It implements the
// error interface so it can flow through ordinary Go error handling up to
// cmd/slc, which is responsible for printing it to stderr and exiting 1.
type Error struct {
	Category Category
	Pos      lexer.Position
	Message  string
	Token    string
}

// New creates a diagnostic of the given category.
func New(category Category, pos lexer.Position, message, token string) *Error {
	return &Error{Category: category, Pos: pos, Message: message, Token: token}
}

// Syn is a convenience constructor for a syntax error at tok's position.
func Syn(pos lexer.Position, message, token string) *Error {
	return New(Syntax, pos, message, token)
}

// Sem is a convenience constructor for a semantic error at tok's position.
func Sem(pos lexer.Position, message, token string) *Error {
	return New(Semantic, pos, message, token)
}

// Error implements the error interface, rendering
// "<CATEGORY> [l:c] <msg> -> '<tok>'".
func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s] %s -> '%s'", e.Category, e.Pos, e.Message, e.Token)
}
