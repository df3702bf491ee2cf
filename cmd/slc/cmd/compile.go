package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ibraexe/slc/internal/compiler"
)

var outputFile string

// runCompile is the default action of slc: compile a single SL file to C.
// File opening/closing and terminal progress messages live here; they do
// not participate in translation decisions, which happen entirely inside
// internal/compiler.
func runCompile(cmd *cobra.Command, args []string) error {
	inputFile := args[0]
	verbose, _ := cmd.Flags().GetBool("verbose")

	source, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", inputFile, err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Compilation du fichier %s\n", inputFile)
	}

	out, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", outputFile, err)
	}
	defer out.Close()

	comp := compiler.New(source, out)
	if err := comp.Compile(); err != nil {
		return err
	}

	if verbose {
		fmt.Fprintln(os.Stderr, "Compilation reussie")
		fmt.Fprintf(os.Stderr, "Fichier compile: %s\n", outputFile)
	} else {
		fmt.Printf("Compiled %s -> %s\n", inputFile, outputFile)
	}

	return nil
}
