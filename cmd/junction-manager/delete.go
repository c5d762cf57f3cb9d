package main

import (
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/yourusername/junction-manager/internal/deleter"
	"github.com/yourusername/junction-manager/internal/logger"
)

var (
	deleteAttempts      int
	deleteBackoff       time.Duration
	deleteIgnoreMissing bool
)

// pathOutcome pairs a requested path with what happened to it, so the
// summary can be computed after all paths were attempted.
type pathOutcome struct {
	path   string
	result deleter.DeleteResult
}

var deleteCmd = &cobra.Command{
	Use:   "delete PATH...",
	Short: "Delete files, directories, or junctions",
	Long: `Delete each PATH. Deleting a junction removes the junction itself and
never touches its target's contents. Directories whose children linger in a
marked-for-deletion state are retried within the attempt budget. Every PATH
is attempted even when an earlier one fails.

Exit codes:
  0  every path was deleted (paths already absent count as deleted only
     with --ignore-missing)
  1  at least one path could not be deleted`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		policy := deleter.RetryPolicy{
			MaxAttempts: deleteAttempts,
			Backoff:     deleteBackoff,
		}

		outcomes := lo.Map(args, func(path string, _ int) pathOutcome {
			result, err := deleter.DeleteWithPolicy(path, policy)
			switch result {
			case deleter.DeleteSuccess:
				logger.Debug("deleted %s", path)
			case deleter.DeleteDoesNotExist:
				logger.Warning("%s does not exist", path)
			case deleter.DeleteAccessDenied:
				logger.LogPathWarning("DeletePath", path, "access denied")
			case deleter.DeleteDirectoryNotEmpty:
				logger.LogPathWarning("DeletePath", path, "directory not empty")
			case deleter.DeleteError:
				logger.LogPathError("DeletePath", path, err)
			}
			return pathOutcome{path: path, result: result}
		})

		failed := lo.CountBy(outcomes, func(o pathOutcome) bool {
			if o.result == deleter.DeleteDoesNotExist {
				return !deleteIgnoreMissing
			}
			return o.result != deleter.DeleteSuccess
		})
		if failed > 0 {
			logger.Error("failed to delete %d of %d paths", failed, len(outcomes))
			exit(1)
		}
	},
}

func init() {
	defaults := deleter.DefaultRetryPolicy()
	deleteCmd.Flags().IntVar(&deleteAttempts, "attempts", defaults.MaxAttempts,
		"directory removal attempts before giving up")
	deleteCmd.Flags().DurationVar(&deleteBackoff, "backoff", defaults.Backoff,
		"sleep between attempts while children are pending deletion")
	deleteCmd.Flags().BoolVar(&deleteIgnoreMissing, "ignore-missing", false,
		"treat already-absent paths as successfully deleted")
}
