// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/luc-amender/internal/convert"
	"github.com/pdiddy/luc-amender/internal/extract"
	"github.com/pdiddy/luc-amender/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [pdf]",
	Short: "Print the amendments found in an ordinance PDF",
	Long: `Extract reads an ordinance PDF and prints the amendments the parser
finds, without touching the LUC or writing any files. The PDF defaults to the
configured ordinance path.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg := pipelineConfig()

		path := cfg.Paths.OrdinancePath()
		if len(args) == 1 {
			path = args[0]
		}

		ext, err := convert.NewExtractor(ctx, cfg.Conversion)
		if err != nil {
			return err
		}
		text, err := convert.ReadText(ctx, ext, path)
		if err != nil {
			return err
		}
		amendments := extract.Parse(text)

		asJSON, _ := cmd.Flags().GetBool("json")
		return printAmendments(cmd, amendments, asJSON)
	},
}

func printAmendments(cmd *cobra.Command, amendments []types.Amendment, asJSON bool) error {
	if amendments == nil {
		amendments = []types.Amendment{}
	}
	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(amendments)
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(map[string][]types.Amendment{"amendments": amendments}); err != nil {
		return fmt.Errorf("encoding amendments: %w", err)
	}
	return enc.Close()
}

func init() {
	extractCmd.Flags().Bool("json", false, "print JSON instead of YAML")

	rootCmd.AddCommand(extractCmd)
}
