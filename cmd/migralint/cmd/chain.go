package cmd

import (
	"text/template"

	"github.com/spf13/cobra"

	"github.com/migralint/migralint/pkg/chain"
	"github.com/migralint/migralint/pkg/migration"
	"github.com/migralint/migralint/pkg/model"
)

// chainCmd represents the chain inspection commands
var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Commands to inspect a valid migration chain",
	Long: `Commands to inspect a migration chain.

These commands validate the chain first: a broken chain yields the same error
and exit code as 'migralint check'.`,
}

// chainEntry is the template context for one line of chain output
type chainEntry struct {
	Position int
	Revision model.Revision
	Down     model.Revision
}

var listLineTemplate func(flagsT) *template.Template

func init() {
	rootCmd.AddCommand(chainCmd)

	listLineTemplate = func(opts flagsT) *template.Template {
		if opts.chain.Template != "" {
			t, err := template.New("list line").Parse(opts.chain.Template)
			if err != nil {
				wrapFatalln("invalid template", err)
			}
			return t
		}
		const listLineTemplateString = `{{.Position}} , {{.Revision}} , {{.Down}}`
		return template.Must(template.New("list line").Parse(listLineTemplateString))
	}
}

// loadChain scans, builds and linearizes the chain for the inspection commands
func loadChain() (model.Revisions, *chain.Chain) {
	logger := mustGetLogger()
	scanner := migration.NewScanner(
		migration.WithPattern(config.pattern()),
		migration.WithLogger(logger),
	)
	files, err := scanner.Scan(migralintFlags.chain.Dir)
	if err != nil {
		wrapFatalWithCodef(1, "Error: %v", err)
		return nil, nil
	}
	c, err := chain.Build(files, chain.WithLogger(logger))
	if err != nil {
		wrapFatalWithCodef(1, "Error: %v", err)
		return nil, nil
	}
	ordered, err := c.Linearize()
	if err != nil {
		wrapFatalWithCodef(1, "Error: %v", err)
		return nil, nil
	}
	return ordered, c
}
