// Copyright © 2026 migralint authors

package cmd

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/migralint/migralint/pkg/mlogger"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "migralint",
	Short: "migralint checks the structure of a schema migration chain",
	Long: `migralint checks the structural integrity of a linear revision chain declared
by a directory of schema migration files (alembic style).

Each migration file declares a unique revision identifier and a down_revision
pointing to its predecessor. migralint catches chain-breaking mistakes
(duplicate revisions, missing links, branches, cycles) before they reach a
shared branch. It does not apply or roll back migrations.
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if migralintFlags.root.cpuProf {
			f, err := os.Create("cpu.prof")
			if err != nil {
				logFatalln(err)
			}
			_ = pprof.StartCPUProfile(f)
		}
	},
	// upstream api note: *PostRun functions aren't called in case of a panic() in Run
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if migralintFlags.root.cpuProf {
			pprof.StopCPUProfile()
		}
	},
}

var config *CLIConfig

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		osExit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)
	addLogLevelFlag(rootCmd)
	addCPUProfFlag(rootCmd)
}

// initConfig reads in the optional config file and ENV variables if set.
func initConfig() {
	viper.SetDefault("loglevel", mlogger.LogLevelInfo)
	viper.SetDefault("pattern", "")
	if os.Getenv("MIGRALINT_CONFIG") != "" {
		// Use config file from the environment.
		viper.SetConfigFile(os.Getenv("MIGRALINT_CONFIG"))
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.migralint")
		viper.AddConfigPath("/etc/migralint")
		viper.SetConfigName("migralint")
	}

	viper.SetEnvPrefix("migralint")
	viper.AutomaticEnv() // read in environment variables that match
	// If a config file is found, read it in. Validation itself needs none:
	// the file only carries defaults such as loglevel or the filename pattern.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
	var err error
	config, err = newConfig()
	if err != nil {
		logFatalln(err)
	}
}

// mustGetLogger resolves the effective log level (flag wins over config) and
// builds the zap logger commands share.
func mustGetLogger() *zap.Logger {
	level := migralintFlags.root.logLevel
	if level == "" {
		level = config.LogLevel
	}
	if level == "" {
		level = mlogger.LogLevelInfo
	}
	return mlogger.MustGetLogger(level)
}
