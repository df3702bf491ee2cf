package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ibraexe/slc/internal/lexer"
)

var (
	showPos  bool
	showKind bool
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize an SL file and print the resulting tokens",
	Long: `Tokenize (lex) an SL program and print the resulting tokens.

This command is useful for debugging the lexer and understanding how SL
source code is tokenized, independent of the parser.`,
	Args: cobra.ExactArgs(1),
	RunE: lexFile,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showKind, "show-kind", false, "show token kind names")
}

func lexFile(cmd *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	l := lexer.New(content)
	for {
		tok, err := l.NextToken()
		if err != nil {
			return err
		}
		printToken(tok)
		if tok.Kind == lexer.EOF {
			break
		}
	}
	return nil
}

func printToken(tok lexer.Token) {
	var output string
	if showKind {
		output = fmt.Sprintf("[%-12s]", tok.Kind)
	}
	if tok.Text == "" {
		output += fmt.Sprintf(" %s", tok.Kind)
	} else {
		output += fmt.Sprintf(" %q", tok.Text)
	}
	if showPos {
		output += fmt.Sprintf(" @%s", tok.Pos)
	}
	fmt.Println(output)
}
