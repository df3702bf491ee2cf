// Command slc compiles SL, a small French-keyword imperative language,
// to C.
package main

import (
	"os"

	"github.com/ibraexe/slc/cmd/slc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
