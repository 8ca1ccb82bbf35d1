// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pablofazio/cvreadme/internal/extract"
	"github.com/pablofazio/cvreadme/internal/pdftext"
)

var extractCmd = &cobra.Command{
	Use:   "extract <resume.pdf|resume.txt>",
	Short: "Extract the structured record from a resume without rendering",
	Long: `Extract runs only the extraction stage and prints the resulting record,
useful for checking what the heuristics found before generating a README.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := pipelineConfig()
		if cmd.Flags().Changed("max-pages") {
			cfg.Extraction.MaxPages, _ = cmd.Flags().GetInt("max-pages")
		}

		src, err := pdftext.Open(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		text := pdftext.Concat(src, cfg.Extraction.MaxPages)

		rec := extract.Parse(text)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(rec)
		}

		out, err := yaml.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encoding record: %w", err)
		}
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	extractCmd.Flags().Bool("json", false, "output the record as JSON instead of YAML")
	extractCmd.Flags().Int("max-pages", 0, "cap on document pages read (0 = all)")

	rootCmd.AddCommand(extractCmd)
}
