// Copyright © 2026 migralint authors

package cmd

import (
	"go.uber.org/zap"

	"github.com/migralint/migralint/pkg/chain"
	"github.com/migralint/migralint/pkg/migration"
	"github.com/spf13/cobra"
)

// checkCmd validates the migration chain declared by a directory
var checkCmd = &cobra.Command{
	Use:   "check <migrations-dir> [staged-file...]",
	Short: "Validate a migration chain",
	Long: `Validate the revision chain declared by the migration files in a directory.

The chain is valid when there is exactly one initial migration, every
down_revision resolves to a known revision, no two migrations share a
down_revision and following down_revision links never loops.

When staged file paths are given after the directory (pre-commit hook usage)
and none of them touch the migrations directory, the check is skipped and the
command exits 0 without scanning anything.

Exits 0 on a valid (or skipped) chain, 1 with a single line on stderr for the
first defect found.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := args[0]
		staged := args[1:]
		logger := mustGetLogger()

		if len(staged) > 0 && !migration.TouchesDir(staged, dir) {
			logger.Debug("no staged file under the migrations directory, skipping",
				zap.String("dir", dir), zap.Int("staged", len(staged)))
			return
		}
		if err := runCheck(logger, dir); err != nil {
			wrapFatalWithCodef(1, "Error: %v", err)
			return
		}
		logger.Debug("migration chain is valid", zap.String("dir", dir))
	},
}

// runCheck runs the builder+validator pipeline over one directory snapshot
func runCheck(logger *zap.Logger, dir string) error {
	scanner := migration.NewScanner(
		migration.WithPattern(config.pattern()),
		migration.WithLogger(logger),
	)
	files, err := scanner.Scan(dir)
	if err != nil {
		return err
	}
	c, err := chain.Build(files, chain.WithLogger(logger))
	if err != nil {
		return err
	}
	return c.Validate()
}

func init() {
	addPatternFlag(checkCmd)
	rootCmd.AddCommand(checkCmd)
}
