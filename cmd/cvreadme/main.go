// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the cvreadme CLI. It turns a
// resume document into a GitHub profile README: extract structured
// facts, classify skill tags into badges, optionally enrich from the
// GitHub API, and render the final Markdown.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pablofazio/cvreadme/internal/secrets"
	"github.com/pablofazio/cvreadme/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the cvreadme CLI.
var rootCmd = &cobra.Command{
	Use:   "cvreadme",
	Short: "Generate a GitHub profile README from a resume",
	Long: `cvreadme reads a resume (PDF or plain text), extracts identity, contact,
profile and skill information with deterministic heuristics, and renders a
ready-to-publish GitHub profile README with skill badges, social icons and
optional repository highlights.

No AI and no manual editing required: the same resume always produces the
same README.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./cvreadme.yaml or ~/.config/cvreadme/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("cvreadme")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "cvreadme"))
		}
	}

	viper.SetEnvPrefix("CVREADME")
	viper.AutomaticEnv()

	viper.SetDefault("extraction.max_pages", 0)
	viper.SetDefault("github.enabled", true)
	viper.SetDefault("github.max_repos", 6)
	viper.SetDefault("github.timeout", "5s")
	viper.SetDefault("github.user_agent", "cvreadme/"+version)
	viper.SetDefault("render.output_path", "README.md")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig assembles the stage configuration from viper, with the
// GitHub token falling back to the .secrets/ directory.
func pipelineConfig() types.PipelineConfig {
	token := viper.GetString("github.token")
	if token == "" {
		token = loadedSecrets["github-token"]
	}

	return types.PipelineConfig{
		Extraction: types.ExtractionConfig{
			MaxPages: viper.GetInt("extraction.max_pages"),
		},
		Classifier: types.ClassifierConfig{
			TablesPath: viper.GetString("classifier.tables_path"),
		},
		GitHub: types.GitHubConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("github.timeout"),
				UserAgent: viper.GetString("github.user_agent"),
			},
			Enabled:  viper.GetBool("github.enabled"),
			MaxRepos: viper.GetInt("github.max_repos"),
			Token:    token,
		},
		Render: types.RenderConfig{
			OutputPath: viper.GetString("render.output_path"),
		},
	}
}

// durationOrDefault is a guard for zero durations from config.
func durationOrDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
