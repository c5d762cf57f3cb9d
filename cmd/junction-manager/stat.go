package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourusername/junction-manager/internal/junction"
	"github.com/yourusername/junction-manager/internal/logger"
)

var statCmd = &cobra.Command{
	Use:   "stat PATH",
	Short: "Report whether PATH is a junction",
	Long: `Report whether PATH is a directory junction.

Exit codes:
  0  PATH is a junction
  1  unexpected error (including PATH not existing)
  4  PATH exists but is not a junction`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]

		result, err := junction.IsJunction(path)
		if err != nil {
			logger.Error("stat %s: %v", path, err)
		}
		fmt.Println(result)
		switch result {
		case junction.CheckError:
			exit(1)
		case junction.CheckNotJunction:
			exit(4)
		}
	},
}
