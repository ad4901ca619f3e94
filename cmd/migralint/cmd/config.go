package cmd

import (
	"github.com/spf13/viper"
)

// CLIConfig describes the CLI configuration.
type CLIConfig struct {
	// bug in viper? Need to keep names of fields the same as the serialized names..
	LogLevel string `json:"loglevel" yaml:"loglevel"` // Log level for commands
	Pattern  string `json:"pattern" yaml:"pattern"`   // Filename glob for migration files
}

func newConfig() (*CLIConfig, error) {
	var config CLIConfig
	err := viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// pattern resolves the effective migration filename glob (flag wins over config)
func (c *CLIConfig) pattern() string {
	if migralintFlags.check.Pattern != "" {
		return migralintFlags.check.Pattern
	}
	return c.Pattern
}
