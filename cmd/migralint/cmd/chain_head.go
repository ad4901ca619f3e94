package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// chainHeadCmd prints the head of a valid chain
var chainHeadCmd = &cobra.Command{
	Use:   "head",
	Short: "Print the head revision of the migration chain",
	Long: `Print the head of a valid migration chain: the revision that no other
migration declares as its down_revision.`,
	Run: func(cmd *cobra.Command, args []string) {
		ordered, c := loadChain()
		if c == nil {
			return
		}
		if len(ordered) == 0 {
			return
		}
		color.Set(color.FgMagenta)
		fmt.Println(ordered[len(ordered)-1])
		color.Unset()
	},
}

func init() {
	requiredFlags := []string{addMigrationsDirFlag(chainHeadCmd)}
	addPatternFlag(chainHeadCmd)

	for _, flag := range requiredFlags {
		err := chainHeadCmd.MarkFlagRequired(flag)
		if err != nil {
			logFatalln(err)
		}
	}

	chainCmd.AddCommand(chainHeadCmd)
}
