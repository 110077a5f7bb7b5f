// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/pdiddy/luc-amender/internal/container"
)

// pdftotextArgs make the image read a PDF on stdin and write UTF-8 text to
// stdout.
var pdftotextArgs = []string{"-enc", "UTF-8", "-", "-"}

// ContainerExtractor pipes PDFs through a pdftotext container image run by a
// docker or podman runtime.
type ContainerExtractor struct {
	runtime container.Runtime
	image   string
}

// NewContainerExtractor checks that image exists in rt before returning.
func NewContainerExtractor(ctx context.Context, rt container.Runtime, image string) (*ContainerExtractor, error) {
	if err := rt.ImageExists(ctx, image); err != nil {
		return nil, fmt.Errorf("pdftotext image not available in %s: %w", rt.Name(), err)
	}
	return &ContainerExtractor{runtime: rt, image: image}, nil
}

// Extract streams the PDF at pdfPath into the container and returns its
// output.
func (c *ContainerExtractor) Extract(ctx context.Context, pdfPath string) (string, error) {
	f, err := os.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()

	var out bytes.Buffer
	job := container.Job{Image: c.image, Args: pdftotextArgs, Stdin: f, Stdout: &out}
	if err := c.runtime.Run(ctx, job); err != nil {
		return "", fmt.Errorf("converting %s: %w", pdfPath, err)
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("%s: %w", pdfPath, ErrEmptyText)
	}
	return out.String(), nil
}
