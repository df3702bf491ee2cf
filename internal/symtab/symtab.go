// Package symtab implements the flat, append-only symbol table shared by
// the parser/analyzer. It deliberately does not pop scopes on function
// exit — names from a finished function remain visible to later ones.
package symtab

import "errors"

// Kind distinguishes a variable symbol from a function symbol.
type Kind int

const (
	Variable Kind = iota
	Function
)

// ValueType is the element type of a variable or the return type of a
// function. TABLE is vestigial: arrays are represented by a non-array
// base ValueType together with ArraySize > 0.
type ValueType int

const (
	INT ValueType = iota
	CHAR
	FLOAT
	TABLE
)

func (v ValueType) String() string {
	switch v {
	case INT:
		return "INT"
	case CHAR:
		return "CHAR"
	case FLOAT:
		return "FLOAT"
	case TABLE:
		return "TABLE"
	default:
		return "?"
	}
}

// CType returns the C spelling of a ValueType.
func (v ValueType) CType() string {
	switch v {
	case CHAR:
		return "char"
	case FLOAT:
		return "float"
	default:
		return "int"
	}
}

// maxParams is the maximum number of parameters a function may declare.
const maxParams = 10

// MaxSymbols is the symbol-table capacity. The table does not check it:
// inserts past this count are accepted.
const MaxSymbols = 256

// Scope tags. Scope 0 holds function names (the source has no scope-0
// variables); scope 1 holds everything declared inside a function body,
// including its parameters, and in the main block.
const (
	ScopeGlobal = 0
	ScopeLocal  = 1
)

// Symbol is one entry in the table: either a variable or a function.
type Symbol struct {
	Name       string
	Kind       Kind
	ValueType  ValueType
	ArraySize  int // 0 for scalars
	ParamCount int
	ParamTypes [maxParams]ValueType
	Scope      int
}

// IsArray reports whether the symbol denotes a fixed-size one-dimensional
// array rather than a scalar.
func (s *Symbol) IsArray() bool {
	return s.ArraySize > 0
}

// Table is the ordered, append-only sequence of declared symbols.
type Table struct {
	syms  []Symbol
	scope int
}

// New returns an empty Table in scope 0.
func New() *Table {
	return &Table{}
}

// Scope returns the table's current scope tag.
func (t *Table) Scope() int {
	return t.scope
}

// EnterFunction switches the table into scope 1, the scope used for
// parameters and locals of the function currently being parsed.
func (t *Table) EnterFunction() {
	t.scope = ScopeLocal
}

// LeaveFunction switches the table back to scope 0. Symbols already
// inserted are never removed.
func (t *Table) LeaveFunction() {
	t.scope = ScopeGlobal
}

// Find scans from the most recently inserted symbol to the oldest and
// returns the first one matching name and kind. It reports a miss via the
// second return value.
func (t *Table) Find(name string, kind Kind) (*Symbol, bool) {
	for i := len(t.syms) - 1; i >= 0; i-- {
		if t.syms[i].Name == name && t.syms[i].Kind == kind {
			return &t.syms[i], true
		}
	}
	return nil, false
}

// AddVariable appends a variable symbol. It fails if the current scope is
// 1 and a variable of the same name already exists; redeclaration is not
// checked in scope 0.
func (t *Table) AddVariable(name string, vtype ValueType, arraySize int) error {
	if t.scope == ScopeLocal {
		if _, found := t.Find(name, Variable); found {
			return errDoubleDeclaration("variable")
		}
	}
	t.syms = append(t.syms, Symbol{
		Name:      name,
		Kind:      Variable,
		ValueType: vtype,
		ArraySize: arraySize,
		Scope:     t.scope,
	})
	return nil
}

// AddFunction appends a function symbol. Function names must be unique
// across the whole table, and at most maxParams parameters are allowed.
// The function's own value type is always INT.
func (t *Table) AddFunction(name string, paramTypes []ValueType) error {
	if _, found := t.Find(name, Function); found {
		return errDoubleDeclaration("fonction")
	}
	if len(paramTypes) > maxParams {
		return errors.New("trop de parametres")
	}

	sym := Symbol{
		Name:       name,
		Kind:       Function,
		ValueType:  INT,
		ParamCount: len(paramTypes),
		Scope:      t.scope,
	}
	copy(sym.ParamTypes[:], paramTypes)
	t.syms = append(t.syms, sym)
	return nil
}

type doubleDeclarationError struct {
	what string
}

func (e *doubleDeclarationError) Error() string {
	return "double declaration de " + e.what
}

func errDoubleDeclaration(what string) error {
	return &doubleDeclarationError{what: what}
}
