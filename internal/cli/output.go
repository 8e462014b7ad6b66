package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/ledwire/pkg/errors"
	"github.com/matzehuels/ledwire/pkg/pipeline"
)

// artifactWriteParams describes where rendered artifacts go.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	base      string // default base path when output is empty
	output    string
	cacheHit  bool
}

// writeArtifacts writes every artifact. A single format goes to output
// verbatim; several formats share output as a base path and get their
// format as extension.
func writeArtifacts(p artifactWriteParams) error {
	if p.output != "" {
		if err := errors.ValidateOutputPath(p.output); err != nil {
			return err
		}
	}

	paths := make([]string, 0, len(p.formats))
	for _, format := range p.formats {
		path := outputPath(p.output, p.base, format, len(p.formats) == 1)
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
		}
		if err := os.WriteFile(path, p.artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	status := "Rendered"
	if p.cacheHit {
		status = "Rendered (" + styleCached.Render(iconCached) + ")"
	}
	printSuccess("%s %d artifact(s)", status, len(paths))
	for _, path := range paths {
		printFile(path)
	}
	return nil
}

// outputPath picks the file for one format.
func outputPath(output, base, format string, single bool) string {
	if output != "" && single {
		return output
	}
	return basePath(output, base) + "." + format
}

// basePath strips a known format extension from output, falling back to base.
func basePath(output, base string) string {
	if output == "" {
		return base
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
