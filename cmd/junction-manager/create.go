package main

import (
	"github.com/spf13/cobra"

	"github.com/yourusername/junction-manager/internal/junction"
	"github.com/yourusername/junction-manager/internal/logger"
)

var createCmd = &cobra.Command{
	Use:   "create NAME TARGET",
	Short: "Create a junction at NAME pointing to TARGET",
	Long: `Create a junction at NAME pointing to TARGET. Both must be absolute,
normalized Windows paths. Creating a junction that already exists with the
same target succeeds; an existing junction with a different target, or any
other object at NAME, is left untouched and reported.

Exit codes:
  0  the junction exists and points at TARGET
  1  unexpected error
  2  access denied (held by another process)
  3  the path disappeared mid-operation
  4  NAME already exists and is not a junction
  5  NAME is a junction with a different target
  6  TARGET exceeds the maximum junction target length`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		name, target := args[0], args[1]

		result, err := junction.Create(name, target)
		if err != nil {
			logger.Error("create %s: %v", name, err)
		}
		switch result {
		case junction.CreateSuccess:
			logger.Debug("created junction %s -> %s", name, target)
		case junction.CreateError:
			exit(1)
		case junction.CreateAccessDenied:
			logger.Error("create %s: access denied", name)
			exit(2)
		case junction.CreateDisappeared:
			logger.Error("create %s: path disappeared during creation", name)
			exit(3)
		case junction.CreateAlreadyExistsButNotJunction:
			logger.Error("create %s: already exists and is not a junction", name)
			exit(4)
		case junction.CreateAlreadyExistsWithDifferentTarget:
			logger.Error("create %s: junction exists with a different target", name)
			exit(5)
		case junction.CreateTargetNameTooLong:
			exit(6)
		}
	},
}
