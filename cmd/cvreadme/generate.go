// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pablofazio/cvreadme/internal/classify"
	"github.com/pablofazio/cvreadme/internal/extract"
	"github.com/pablofazio/cvreadme/internal/github"
	"github.com/pablofazio/cvreadme/internal/httputil"
	"github.com/pablofazio/cvreadme/internal/pdftext"
	"github.com/pablofazio/cvreadme/internal/render"
	"github.com/pablofazio/cvreadme/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate <resume.pdf|resume.txt>",
	Short: "Generate a profile README from a resume document",
	Long: `Generate runs the full pipeline: read the resume, extract identity and
skill information, classify skills into badges, optionally fetch the user's
top GitHub repositories, and write the README.

The GitHub lookup is best-effort. When it fails or is disabled with
--no-github, the projects section falls back to repository search links.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := pipelineConfig()

		output, _ := cmd.Flags().GetString("output")
		if output != "" {
			cfg.Render.OutputPath = output
		}
		if noGitHub, _ := cmd.Flags().GetBool("no-github"); noGitHub {
			cfg.GitHub.Enabled = false
		}
		if cmd.Flags().Changed("max-pages") {
			cfg.Extraction.MaxPages, _ = cmd.Flags().GetInt("max-pages")
		}

		src, err := pdftext.Open(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		text := pdftext.Concat(src, cfg.Extraction.MaxPages)

		rec := extract.Parse(text)
		fmt.Fprintf(os.Stderr, "Extracted: %s\n", recordSummary(rec))

		tables, err := classify.LoadTables(cfg.Classifier.TablesPath)
		if err != nil {
			return fmt.Errorf("loading badge tables: %w", err)
		}

		rd := &render.Renderer{Tables: tables, MaxRepos: cfg.GitHub.MaxRepos}
		if cfg.GitHub.Enabled {
			client := github.NewClient(cfg.GitHub)
			rd.Repos = client

			if user := rec.GitHubUsername(); user != "" {
				ctx, cancel := context.WithTimeout(cmd.Context(),
					durationOrDefault(cfg.GitHub.Timeout, httputil.DefaultTimeout))
				verified := client.VerifyUser(ctx, user)
				cancel()
				if !verified {
					fmt.Fprintf(os.Stderr, "Note: could not verify GitHub user %q; repository sections may be empty\n", user)
				}
			}
		}

		md := rd.README(cmd.Context(), rec)

		if err := os.WriteFile(cfg.Render.OutputPath, []byte(md), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", cfg.Render.OutputPath, err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", cfg.Render.OutputPath)
		return nil
	},
}

func init() {
	generateCmd.Flags().String("output", "", "path for the generated README (default: render.output_path)")
	generateCmd.Flags().Bool("no-github", false, "skip GitHub lookups; use search-link fallbacks")
	generateCmd.Flags().String("tables", "", "YAML file with custom badge tables")
	generateCmd.Flags().Int("max-repos", github.DefaultMaxRepos, "repositories shown in the projects section")
	generateCmd.Flags().Int("max-pages", 0, "cap on document pages read (0 = all)")

	viper.BindPFlag("classifier.tables_path", generateCmd.Flags().Lookup("tables"))
	viper.BindPFlag("github.max_repos", generateCmd.Flags().Lookup("max-repos"))

	rootCmd.AddCommand(generateCmd)
}

// recordSummary is the one-line extraction notice printed before
// rendering.
func recordSummary(rec types.Record) string {
	name := rec.FullName()
	if name == "" {
		name = "(no name)"
	}
	parts := fmt.Sprintf("%s, %d skill(s)", name, len(rec.Skills))
	if rec.Occupation != "" {
		parts = fmt.Sprintf("%s (%s), %d skill(s)", name, rec.Occupation, len(rec.Skills))
	}
	return parts
}
