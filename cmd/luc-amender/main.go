// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the luc-amender CLI. With no arguments
// it applies the ordinance at the configured input path to the LUC document
// and writes the amended LUC and the amendment log.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/luc-amender/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the luc-amender CLI.
var rootCmd = &cobra.Command{
	Use:   "luc-amender",
	Short: "Apply ordinance amendments to a Land Use Code document",
	Long: `luc-amender reads a city ordinance PDF, finds the sections it amends,
repeals, or reserves, and applies those changes to a JSON copy of the Land Use
Code. It writes the amended LUC and an audit log of every change; low
confidence amendments are marked for human review.

Run without arguments to process the configured input directory. Paths,
the text extraction backend, and an optional manual amendments file come from
luc-amender.yaml or LUC_AMENDER_* environment variables. The --config flag
and the subcommands are optional; a bare invocation needs neither.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runApply,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./luc-amender.yaml or ~/.config/luc-amender/luc-amender.yaml)")
}

// configDefaults mirrors types.DefaultPipelineConfig so every key resolves
// without a config file.
func configDefaults() map[string]any {
	d := types.DefaultPipelineConfig()
	return map[string]any{
		"paths.input_dir":      d.Paths.InputDir,
		"paths.output_dir":     d.Paths.OutputDir,
		"paths.luc_file":       d.Paths.LUCFile,
		"paths.ordinance_file": d.Paths.OrdinanceFile,
		"paths.amended_file":   d.Paths.AmendedFile,
		"paths.log_file":       d.Paths.LogFile,
		"conversion.backend":   string(d.Conversion.Backend),
		"conversion.image":     d.Conversion.Image,
		"amendments_file":      d.AmendmentsFile,
	}
}

func initConfig() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("luc-amender")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "luc-amender"))
		}
	}

	for k, v := range configDefaults() {
		viper.SetDefault(k, v)
	}
	viper.SetEnvPrefix("LUC_AMENDER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig assembles the run configuration from viper.
func pipelineConfig() types.PipelineConfig {
	return types.PipelineConfig{
		Paths: types.PathsConfig{
			InputDir:      viper.GetString("paths.input_dir"),
			OutputDir:     viper.GetString("paths.output_dir"),
			LUCFile:       viper.GetString("paths.luc_file"),
			OrdinanceFile: viper.GetString("paths.ordinance_file"),
			AmendedFile:   viper.GetString("paths.amended_file"),
			LogFile:       viper.GetString("paths.log_file"),
		},
		Conversion: types.ConversionConfig{
			Backend: types.ConversionBackend(viper.GetString("conversion.backend")),
			Image:   viper.GetString("conversion.image"),
		},
		AmendmentsFile: viper.GetString("amendments_file"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
