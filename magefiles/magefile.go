//go:build mage

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main contains Mage build targets for luc-amender developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/pdiddy/luc-amender/pkg/types"
)

// projectDirs lists the working directories a default run expects.
var projectDirs = []string{
	types.DefaultInputDir,
	types.DefaultOutputDir,
}

// Init creates the input and output directories for a default run.
func Init() error {
	for _, dir := range projectDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	fmt.Printf("Place %s and %s in %s.\n", types.DefaultLUCFile, types.DefaultOrdinanceFile, types.DefaultInputDir)
	return nil
}

const (
	binDir  = "bin"
	binName = "luc-amender"
	cmdPkg  = "./cmd/luc-amender"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	ldflags := "-X main.version=" + version()
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Golden rewrites the pipeline golden files from the current output.
func Golden() error {
	return sh.RunV("go", "test", "./internal/pipeline", "-update")
}

// Run builds the binary and applies the ordinance in the default input directory.
func Run() error {
	mg.Deps(Init, Build)
	return sh.RunV(filepath.Join(binDir, binName))
}

// version returns the git description of HEAD, or "dev" outside a repository.
func version() string {
	v, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || v == "" {
		return "dev"
	}
	return v
}
