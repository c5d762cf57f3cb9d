package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourusername/junction-manager/internal/logger"
	"github.com/yourusername/junction-manager/internal/winpath"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve PATH",
	Short: "Print the canonical long form of PATH",
	Long: `Print the canonical form of PATH: 8.3 short names expanded and on-disk
casing restored. PATH must exist.

Exit codes:
  0  the canonical path was printed
  1  resolution failed`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]

		resolved, err := winpath.ResolveCanonicalPath(path)
		if err != nil {
			logger.Error("resolve %s: %v", path, err)
			exit(1)
		}
		fmt.Println(resolved)
	},
}
