// Package main provides the command-line interface for the junction
// manager. The tool creates, inspects, and deletes Windows directory
// junctions and removes files and directories with the same retry behavior
// the library uses.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yourusername/junction-manager/internal/logger"
)

var (
	verbose bool
	logFile string
)

var rootCmd = &cobra.Command{
	Use:   "junction-manager",
	Short: "Manage Windows directory junctions",
	Long: `junction-manager creates, reads, checks, and deletes Windows directory
junctions (mount-point reparse points), and deletes files and directories
with bounded retries for entries that linger while marked for deletion.

All paths must be absolute, normalized Windows paths (backslash-separated,
no . or .. segments). The \\?\ long-path prefix is accepted and added
internally where needed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.SetupLogging(verbose, logFile)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"also write logs to this file")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(statCmd)
	rootCmd.AddCommand(resolveCmd)
}

// exit flushes the log file before terminating with code.
func exit(code int) {
	logger.Close()
	os.Exit(code)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exit(2)
	}
	exit(0)
}
