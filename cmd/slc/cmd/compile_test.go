package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ibraexe/slc/internal/compiler"
)

// compileFile runs the core compiler directly against a temp source file
// and returns the emitted C text. This exercises the same path as
// runCompile without spawning a subprocess.
func compileFile(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	inPath := filepath.Join(dir, "prog.sl")
	outPath := filepath.Join(dir, "out.c")

	if err := os.WriteFile(inPath, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	in, err := os.ReadFile(inPath)
	if err != nil {
		t.Fatal(err)
	}
	out, err := os.Create(outPath)
	if err != nil {
		t.Fatal(err)
	}
	defer out.Close()

	if err := compiler.New(in, out).Compile(); err != nil {
		t.Fatalf("compile error: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestDefaultOutputFileName(t *testing.T) {
	if outputFile == "" {
		t.Fatal("outputFile flag default should be non-empty")
	}
}

func TestCompileWritesValidCOutline(t *testing.T) {
	out := compileFile(t, `DEBUT INT x x ~ 1 ECRIRE x FIN`)
	if !strings.HasPrefix(out, "#include <stdio.h>") {
		t.Errorf("output should start with the C prelude, got:\n%s", out)
	}
	if !strings.Contains(out, "int main(){") {
		t.Errorf("output missing main(), got:\n%s", out)
	}
	if !strings.Contains(out, "return 0;\n}") {
		t.Errorf("output missing closing return/brace, got:\n%s", out)
	}
}
