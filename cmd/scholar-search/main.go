// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the scholar-search CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/scholar-search/internal/credentials"
	"github.com/pdiddy/scholar-search/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// apiKey is resolved once at startup and passed by value into the client.
var apiKey string

// rootCmd is the base command for the scholar-search CLI.
var rootCmd = &cobra.Command{
	Use:   "scholar-search",
	Short: "Query Semantic Scholar with fallback query phrasings",
	Long: `scholar-search queries the Semantic Scholar Graph API for papers matching
one of several alternative query phrasings. A single fixed query string
often returns empty pages for niche research topics, so the caller supplies
an ordered list of fallback formulations; each is tried in turn until one
yields results, and the winning page is rendered as text, JSON, or CSL.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		apiKey = credentials.Resolve(os.Getenv, ".secrets/")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Fold a local .env file into the process environment before any
	// credential lookup. Already-set variables win.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./scholar-search.yaml or ~/.config/scholar-search/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("scholar-search")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "scholar-search"))
		}
	}

	viper.SetEnvPrefix("SCHOLAR_SEARCH")
	viper.AutomaticEnv()

	viper.SetDefault("search.timeout", 30*time.Second)
	viper.SetDefault("search.retry_delay", 1*time.Second)
	viper.SetDefault("search.user_agent", "scholar-search/"+version)
	viper.SetDefault("history.dir", ".scholar-search")
	viper.SetDefault("history.max_results", 20)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// searchConfig assembles the client configuration from viper and the
// startup credential resolution.
func searchConfig() types.SearchConfig {
	return types.SearchConfig{
		Timeout:    viper.GetDuration("search.timeout"),
		UserAgent:  viper.GetString("search.user_agent"),
		APIKey:     apiKey,
		RetryDelay: viper.GetDuration("search.retry_delay"),
	}
}

// historyConfig assembles the history store configuration from viper.
func historyConfig() types.HistoryConfig {
	return types.HistoryConfig{
		Dir:        viper.GetString("history.dir"),
		MaxResults: viper.GetInt("history.max_results"),
		Disabled:   viper.GetBool("history.disabled"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
