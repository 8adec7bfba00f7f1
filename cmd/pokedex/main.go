// Package main is the entry point for the pokedex CLI
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokedex-cli/internal/errors"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "pokedex [name-or-id]",
	Short: "Look up Pokémon from PokeAPI",
	Long: `pokedex fetches a Pokémon by name or id, or at random, and prints its types,
base stats and evolution chain. Use --type to list Pokémon of a given type.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runLookup,
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// execute runs the root command and returns the process exit code
func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", userMessage(err))
		return 1
	}
	return 0
}

// userMessage flattens an error chain into its messages without codes
func userMessage(err error) string {
	var e *errors.Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + userMessage(e.Cause)
}
