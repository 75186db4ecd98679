// Package output handles file naming and writing for rendered listings.
// Filenames derive from the listing identifier (e.g. B01ABCDEFG.md), with
// a URL-derived fallback for records without one.
package output

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// WriteListing writes rendered data under the identifier's name.
func (w *Writer) WriteListing(identifier string, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, sanitize(identifier)+ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// WriteForURL writes rendered data under a flat URL-derived name.
// Example: https://www.amazon.com/dp/B01ABCDEFG → www_amazon_com_dp_B01ABCDEFG
func (w *Writer) WriteForURL(rawURL string, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, filenameFromURL(rawURL)+ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// filenameFromURL converts a URL into a flat filename.
func filenameFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return sanitize(rawURL)
	}

	parts := []string{sanitize(parsed.Host)}
	path := strings.Trim(parsed.Path, "/")
	if path != "" {
		for _, seg := range strings.Split(path, "/") {
			parts = append(parts, sanitize(seg))
		}
	}
	return strings.Join(parts, "_")
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
