// Copyright © 2026 migralint authors

package cmd

import (
	"github.com/spf13/cobra"
)

type flagsT struct {
	check struct {
		Pattern string
	}
	chain struct {
		Dir      string
		Template string
	}
	root struct {
		logLevel string
		cpuProf  bool
	}
}

var migralintFlags = flagsT{}

func addPatternFlag(cmd *cobra.Command) string {
	pattern := "pattern"
	if cmd != nil {
		cmd.Flags().StringVar(&migralintFlags.check.Pattern, pattern, "",
			"Filename glob selecting migration files within the directory (default \"*.py\")")
	}
	return pattern
}

func addMigrationsDirFlag(cmd *cobra.Command) string {
	dir := "dir"
	if cmd != nil {
		cmd.Flags().StringVar(&migralintFlags.chain.Dir, dir, "",
			"Path to the directory holding the migration files")
	}
	return dir
}

func addTemplateFlag(cmd *cobra.Command) string {
	tmpl := "template"
	if cmd != nil {
		cmd.Flags().StringVar(&migralintFlags.chain.Template, tmpl, "",
			"Pretty-print with a custom go template, fields: .Position, .Revision, .Down")
	}
	return tmpl
}

func addLogLevelFlag(cmd *cobra.Command) string {
	loglevel := "loglevel"
	if cmd != nil {
		cmd.PersistentFlags().StringVar(&migralintFlags.root.logLevel, loglevel, "",
			"The logging level: debug, info, warn, error or none")
	}
	return loglevel
}

func addCPUProfFlag(cmd *cobra.Command) string {
	cpuprof := "cpuprof"
	if cmd != nil {
		cmd.PersistentFlags().BoolVar(&migralintFlags.root.cpuProf, cpuprof, false,
			"Toggle runtime profiling")
	}
	return cpuprof
}
