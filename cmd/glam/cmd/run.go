package cmd

import (
	"fmt"
	"os"

	"github.com/Glamerio/Glamerio-Language/internal/interp"
	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Glam source file or inline expression",
	Long: `Execute a Glam program from a file or inline snippet.

Examples:
  glam run script.gl
  glam run -e "print(1 + 1);"
  glam run   # defaults to ./program.gl`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate an inline snippet instead of reading a file")
}

func runScript(_ *cobra.Command, args []string) error {
	var source string
	var filename string

	switch {
	case evalExpr != "":
		source = evalExpr
		filename = "<eval>"
	case len(args) == 1:
		filename = args[0]
	default:
		filename = "program.gl"
	}

	if filename != "<eval>" {
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", filename, err)
		}
		source = string(content)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "running %s\n", filename)
	}

	ip := interp.New(os.Stdout, os.Stdin)
	if err := ip.Run(source); err != nil {
		fmt.Fprintln(os.Stderr, ip.FormatError(err))
		return fmt.Errorf("execution failed")
	}
	return nil
}
