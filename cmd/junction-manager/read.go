package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourusername/junction-manager/internal/junction"
	"github.com/yourusername/junction-manager/internal/logger"
)

var readCmd = &cobra.Command{
	Use:   "read PATH",
	Short: "Print the target of the junction at PATH",
	Long: `Print the target of the junction at PATH without following it.

Exit codes:
  0  PATH is a junction; its target was printed
  1  unexpected error
  2  access denied (held by another process)
  3  PATH does not exist
  4  PATH exists but is not a junction`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]

		target, result, err := junction.Read(path)
		if err != nil {
			logger.Error("read %s: %v", path, err)
		}
		switch result {
		case junction.ReadSuccess:
			fmt.Println(target)
		case junction.ReadError:
			exit(1)
		case junction.ReadAccessDenied:
			logger.Error("read %s: access denied", path)
			exit(2)
		case junction.ReadDoesNotExist:
			logger.Error("read %s: does not exist", path)
			exit(3)
		case junction.ReadNotAJunction:
			logger.Error("read %s: not a junction", path)
			exit(4)
		}
	},
}
