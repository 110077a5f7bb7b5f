// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/luc-amender/internal/convert"
	"github.com/pdiddy/luc-amender/internal/pipeline"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply the ordinance to the LUC and write both outputs",
	Long: `Apply runs the full amendment pass. It is what luc-amender does when
invoked without a subcommand.`,
	Args: cobra.NoArgs,
	RunE: runApply,
}

func runApply(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := pipelineConfig()

	ext, err := convert.NewExtractor(ctx, cfg.Conversion)
	if err != nil {
		return err
	}
	_, err = pipeline.Run(ctx, cfg, ext, cmd.OutOrStdout())
	return err
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
