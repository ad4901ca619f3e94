package cmd

import (
	"bytes"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// chainListCmd prints the linearized chain, initial migration first
var chainListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the migration chain in application order",
	Long: `List the revisions of a valid migration chain, from the initial migration to
the head, one line per revision.`,
	Run: func(cmd *cobra.Command, args []string) {
		ordered, c := loadChain()
		if c == nil {
			return
		}
		if migralintFlags.chain.Template != "" {
			tmpl := listLineTemplate(migralintFlags)
			for i, rev := range ordered {
				down, _ := c.Down(rev)
				var buf bytes.Buffer
				if err := tmpl.Execute(&buf, chainEntry{Position: i + 1, Revision: rev, Down: down}); err != nil {
					wrapFatalln("executing template", err)
					return
				}
				infoLogger.Println(buf.String())
			}
			return
		}
		for i, rev := range ordered {
			down, _ := c.Down(rev)
			fmt.Printf("%4d  ", i+1)
			color.Set(color.FgMagenta)
			fmt.Print(rev)
			color.Unset()
			if down != "" {
				fmt.Print("  <-  ")
				color.Set(color.FgYellow)
				fmt.Print(down)
				color.Unset()
			}
			fmt.Println()
		}
	},
}

func init() {
	requiredFlags := []string{addMigrationsDirFlag(chainListCmd)}
	addTemplateFlag(chainListCmd)
	addPatternFlag(chainListCmd)

	for _, flag := range requiredFlags {
		err := chainListCmd.MarkFlagRequired(flag)
		if err != nil {
			logFatalln(err)
		}
	}

	chainCmd.AddCommand(chainListCmd)
}
