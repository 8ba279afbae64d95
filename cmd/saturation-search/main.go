// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the saturation-search CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/saturation-search/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys and contact emails loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the saturation-search CLI.
var rootCmd = &cobra.Command{
	Use:   "saturation-search",
	Short: "Saturation search automation for systematic literature reviews",
	Long: `saturation-search automates the saturation phase of a systematic
literature review: it queries bibliographic databases, removes duplicate
records across sources and against a baseline set, screens the survivors
with geographic and methodological criteria, and stores the decisions for
manual review and reference-manager upload.

Each stage is a subcommand: search, dedupe, screen, and run (the full
pipeline). Use results to query stored runs and gazetteer to inspect the
location term database.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./saturation-search.yaml or ~/.config/saturation-search/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("saturation-search")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "saturation-search"))
		}
	}

	viper.SetEnvPrefix("SATURATION_SEARCH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
