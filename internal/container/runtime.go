// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package container runs one-shot text extraction tools inside a docker or
// podman container, streaming the input document on stdin.
package container

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

const (
	binDocker = "docker"
	binPodman = "podman"

	// stderrLimit caps how much container stderr is quoted in an error.
	stderrLimit = 512
)

// Job describes one container invocation.
type Job struct {
	// Image is the container image to run.
	Image string

	// Args are passed to the image's entrypoint.
	Args []string

	// Stdin is streamed into the container; Stdout receives its output.
	Stdin  io.Reader
	Stdout io.Writer
}

// Runtime checks for and runs containers.
type Runtime interface {
	// Name returns the runtime binary name ("docker" or "podman").
	Name() string

	// Available reports whether the binary is on PATH and its daemon or
	// service answers an info command.
	Available(ctx context.Context) bool

	// ImageExists returns nil when image is present locally.
	ImageExists(ctx context.Context, image string) error

	// Run executes job in a throwaway container with networking disabled.
	Run(ctx context.Context, job Job) error
}

// executor abstracts process execution for tests.
type executor interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error
}

type osExecutor struct{}

func (osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osExecutor) Run(ctx context.Context, name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// runtime implements Runtime for one binary. Docker and podman differ only in
// the subcommand that checks for an image.
type runtime struct {
	bin        string
	imageCheck []string
	exec       executor
}

func (r *runtime) Name() string { return r.bin }

func (r *runtime) Available(ctx context.Context) bool {
	if _, err := r.exec.LookPath(r.bin); err != nil {
		return false
	}
	return r.exec.Run(ctx, r.bin, []string{"info"}, nil, io.Discard, io.Discard) == nil
}

func (r *runtime) ImageExists(ctx context.Context, image string) error {
	args := append(append([]string(nil), r.imageCheck...), image)
	if err := r.exec.Run(ctx, r.bin, args, nil, io.Discard, io.Discard); err != nil {
		return fmt.Errorf("image %s not found in %s: %w", image, r.bin, err)
	}
	return nil
}

func (r *runtime) Run(ctx context.Context, job Job) error {
	args := append([]string{"run", "--rm", "-i", "--network=none", job.Image}, job.Args...)

	var stderr bytes.Buffer
	if err := r.exec.Run(ctx, r.bin, args, job.Stdin, job.Stdout, &stderr); err != nil {
		if msg := tail(stderr.String(), stderrLimit); msg != "" {
			return fmt.Errorf("running %s container %s: %w: %s", r.bin, job.Image, err, msg)
		}
		return fmt.Errorf("running %s container %s: %w", r.bin, job.Image, err)
	}
	return nil
}

// tail returns the last n bytes of s, trimmed.
func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) > n {
		s = s[len(s)-n:]
	}
	return s
}

func newDockerRuntime(e executor) *runtime {
	return &runtime{bin: binDocker, imageCheck: []string{"image", "inspect"}, exec: e}
}

func newPodmanRuntime(e executor) *runtime {
	return &runtime{bin: binPodman, imageCheck: []string{"image", "exists"}, exec: e}
}

// Detect returns docker if it is usable, otherwise podman.
func Detect(ctx context.Context) (Runtime, error) {
	return detect(ctx, osExecutor{})
}

func detect(ctx context.Context, e executor) (Runtime, error) {
	for _, rt := range []*runtime{newDockerRuntime(e), newPodmanRuntime(e)} {
		if rt.Available(ctx) {
			return rt, nil
		}
	}
	return nil, fmt.Errorf("no container runtime available: neither %s nor %s found or operational",
		binDocker, binPodman)
}
