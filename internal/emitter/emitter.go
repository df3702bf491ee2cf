// Package emitter is the thin formatting layer over the C output sink:
// indentation tracking, printIndent, and the scoped-redirection capture
// mechanism ECRIRE uses to buffer a non-string expression before it knows
// the printf format specifier to prefix it with.
package emitter

import (
	"bytes"
	"fmt"
	"io"
)

// Emitter wraps the current output sink together with the small amount
// of state the C emission needs: indentation depth and whether the
// statement currently being emitted is inside a function body (used to
// validate RETOURNER).
type Emitter struct {
	sink       io.Writer
	indent     int
	InFunction bool
}

// New wraps w as the initial (normally file-backed) output sink.
func New(w io.Writer) *Emitter {
	return &Emitter{sink: w}
}

// Indent increases the indentation level by one, used when entering a
// control construct or function body.
func (e *Emitter) Indent() {
	e.indent++
}

// Dedent decreases the indentation level by one.
func (e *Emitter) Dedent() {
	e.indent--
}

// PrintIndent writes four spaces per indentation level to the current
// sink.
func (e *Emitter) PrintIndent() {
	for i := 0; i < e.indent; i++ {
		fmt.Fprint(e.sink, "    ")
	}
}

// Write emits s verbatim to the current sink.
func (e *Emitter) Write(s string) {
	fmt.Fprint(e.sink, s)
}

// Writef is a convenience formatting wrapper over Write.
func (e *Emitter) Writef(format string, args ...any) {
	fmt.Fprintf(e.sink, format, args...)
}

// Capture redirects the sink to a transient in-memory buffer for the
// duration of fn, then restores the previous sink. The buffer's contents
// are returned so the caller (ECRIRE) can embed them, already fully
// formatted, inside a printf argument list. The previous sink is restored
// via defer, so it is released even if fn returns an error partway
// through emitting the captured expression.
func (e *Emitter) Capture(fn func() error) (string, error) {
	var buf bytes.Buffer
	prev := e.sink
	e.sink = &buf
	defer func() { e.sink = prev }()

	err := fn()
	return buf.String(), err
}
