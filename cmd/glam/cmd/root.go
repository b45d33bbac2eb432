// Package cmd implements glam's cobra command tree: run, repl, and
// version, mirroring the teacher's cmd/dwscript/cmd shape.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags (-ldflags "-X ...cmd.Version=...").
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "glam",
	Short:   "Glam scripting language interpreter",
	Long:    `glam is a tree-walking interpreter for the Glam scripting language: variables, control flow, functions, and single-inheritance classes with private members.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
}
