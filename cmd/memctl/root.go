package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	quiet   bool
	jsonOut bool

	// Pool configuration flags
	poolSize     int32
	strategyName string
)

var rootCmd = &cobra.Command{
	Use:   "memctl",
	Short: "Exercise and inspect the arenakit fixed-capacity allocator",
	Long: `memctl drives an in-process arenakit pool through scripted allocation
scenarios and prints the resulting memory map and statistics. It exists to
make the allocator's behavior observable; all real logic lives in the
arena package.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		Int32Var(&poolSize, "pool-size", 10*1024, "Pool capacity in bytes")
	rootCmd.PersistentFlags().
		StringVar(&strategyName, "strategy", "first-fit", "Fit strategy: first-fit, best-fit or worst-fit")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printHeader prints a section banner if not in quiet mode
func printHeader(title string) {
	printInfo("\n========================================\n  %s\n========================================\n", title)
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
