// Command glam runs the Glam language interpreter.
package main

import (
	"fmt"
	"os"

	"github.com/Glamerio/Glamerio-Language/cmd/glam/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
