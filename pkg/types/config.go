// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "path/filepath"

// Default locations for a run with no configuration.
const (
	DefaultInputDir      = "docs/bellevue_amendments"
	DefaultOutputDir     = "output_json/bellevue"
	DefaultLUCFile       = "LUC.json"
	DefaultOrdinanceFile = "ordinance.pdf"
	DefaultAmendedFile   = "LUC_amended.json"
	DefaultLogFile       = "amendment_log.json"
)

// PathsConfig locates the pipeline's inputs and outputs.
type PathsConfig struct {
	// InputDir holds the LUC document and the ordinance PDF.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputDir receives the amended LUC and the audit log.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	LUCFile       string `json:"luc_file" yaml:"luc_file"`
	OrdinanceFile string `json:"ordinance_file" yaml:"ordinance_file"`
	AmendedFile   string `json:"amended_file" yaml:"amended_file"`
	LogFile       string `json:"log_file" yaml:"log_file"`
}

// LUCPath returns the full path of the input LUC document.
func (p PathsConfig) LUCPath() string { return filepath.Join(p.InputDir, p.LUCFile) }

// OrdinancePath returns the full path of the ordinance PDF.
func (p PathsConfig) OrdinancePath() string { return filepath.Join(p.InputDir, p.OrdinanceFile) }

// AmendedPath returns the full path of the amended LUC output.
func (p PathsConfig) AmendedPath() string { return filepath.Join(p.OutputDir, p.AmendedFile) }

// LogPath returns the full path of the audit log output.
func (p PathsConfig) LogPath() string { return filepath.Join(p.OutputDir, p.LogFile) }

// ConversionBackend identifies the PDF text extraction tool.
type ConversionBackend string

const (
	// BackendNative extracts text in-process.
	BackendNative ConversionBackend = "native"
	// BackendContainer pipes the PDF through a pdftotext container image.
	BackendContainer ConversionBackend = "container"
)

// DefaultContainerImage is the image used by the container backend. It reads
// a PDF on stdin and writes plain text to stdout.
const DefaultContainerImage = "pdftotext:latest"

// ConversionConfig holds settings for PDF text extraction.
type ConversionConfig struct {
	// Backend selects the extraction tool: native or container.
	Backend ConversionBackend `json:"backend" yaml:"backend"`

	// Image is the container image for the container backend.
	Image string `json:"image" yaml:"image"`
}

// PipelineConfig groups the settings for one amendment run.
type PipelineConfig struct {
	Paths      PathsConfig      `json:"paths" yaml:"paths"`
	Conversion ConversionConfig `json:"conversion" yaml:"conversion"`

	// AmendmentsFile optionally names a YAML file of manual amendments,
	// applied after those extracted from the ordinance.
	AmendmentsFile string `json:"amendments_file,omitempty" yaml:"amendments_file,omitempty"`
}

// DefaultPipelineConfig returns the configuration of a run with no config
// file, flags, or environment overrides.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Paths: PathsConfig{
			InputDir:      DefaultInputDir,
			OutputDir:     DefaultOutputDir,
			LUCFile:       DefaultLUCFile,
			OrdinanceFile: DefaultOrdinanceFile,
			AmendedFile:   DefaultAmendedFile,
			LogFile:       DefaultLogFile,
		},
		Conversion: ConversionConfig{
			Backend: BackendNative,
			Image:   DefaultContainerImage,
		},
	}
}
