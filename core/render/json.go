// JSON renderer.
// The JSON output is the listing record itself, so downstream tooling
// sees exactly what extraction produced.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/zakkhoyt/linkmark/core"
)

// JSONRenderer marshals the extracted listing.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the listing with indentation.
func (r *JSONRenderer) Render(listing *core.ExtractedListing) ([]byte, error) {
	data, err := json.MarshalIndent(listing, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
