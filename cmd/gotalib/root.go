package main

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/evdnx/gotalib"
)

var RootCmd = &cobra.Command{
	Use:   "gotalib",
	Short: "batch technical-analysis indicators",
	Long:  "compute moving averages and oscillators over whole price series",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: setup,
}

func init() {
	RootCmd.PersistentFlags().String("config", "", "config file (yaml)")
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	RootCmd.PersistentFlags().String("format", formatTable, "output format: json, csv or table")
	RootCmd.PersistentFlags().Int("precision", -1, "decimal places of the output, negative keeps full precision")
}

func setup(cmd *cobra.Command, args []string) error {
	if file := viper.GetString("config"); file != "" {
		viper.SetConfigFile(file)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to load config file %s: %w", file, err)
		}
	}

	log.SetFormatter(&prefixed.TextFormatter{})
	if viper.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}
	gotalib.SetLogger(log.WithField("component", "gotalib"))

	if _, err := parseFormat(viper.GetString("format")); err != nil {
		return err
	}
	gotalib.Init()
	return nil
}

func Execute() {
	viper.SetEnvPrefix("GOTALIB")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	// Once the flags are defined, we can bind config keys with flags.
	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags. please check the flag settings.")
	}

	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}

// outputSettings reads the persistent output flags after viper merged the
// flag, environment and config file layers.
func outputSettings() (format string, precision int) {
	format, _ = parseFormat(viper.GetString("format"))
	return format, viper.GetInt("precision")
}
