// Package render provides output renderers for extracted listings.
// This file implements the Markdown renderer, which writes a compact
// listing card built from inline markdown fragments.
package render

import (
	"fmt"
	"strings"

	"github.com/zakkhoyt/linkmark/core"
	"github.com/zakkhoyt/linkmark/core/compose"
	"github.com/zakkhoyt/linkmark/core/markdown"
	"github.com/zakkhoyt/linkmark/core/normalize"
)

// MarkdownRenderer writes a listing as a markdown card.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render builds the markdown card. Absent fields are skipped; only the
// identifier is guaranteed to be present.
func (r *MarkdownRenderer) Render(listing *core.ExtractedListing) ([]byte, error) {
	var b strings.Builder

	title := listing.TitleNormalized
	if title == "" {
		title = listing.Identifier
	}
	escaped := normalize.EscapeMarkdown(title, titleEscapeOptions())

	url := listing.SourceURL
	if url == "" {
		if composed, err := compose.ListingURL(listing.Identifier, "", "", nil, compose.FormatShort); err == nil {
			url = composed
		}
	}

	heading, err := markdown.Link(escaped, url)
	if err != nil {
		// No target URL at all; fall back to the bare title.
		heading = escaped
	}
	fmt.Fprintf(&b, "# %s\n\n", heading)

	if listing.Images.Primary != nil {
		if img, err := markdown.Image(title, listing.Images.Primary.URL); err == nil {
			b.WriteString(img + "\n\n")
		}
	}

	writeField := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "- **%s**: %s\n", label, value)
		}
	}

	writeField("Identifier", listing.Identifier)
	writeField("Brand", listing.Brand)
	if listing.Price != nil {
		writeField("Price", formatPrice(listing.Price))
	}
	if listing.Variant != nil {
		writeField("Variant", fmt.Sprintf("%s (%s)", listing.Variant.Value, listing.Variant.Axis))
	}
	if listing.Rating != nil {
		writeField("Rating", formatRating(listing.Rating))
	}
	writeField("Availability", listing.Availability)
	writeField("Shipping", listing.Shipping)

	if listing.Description != "" {
		b.WriteString("\n" + listing.Description + "\n")
	}

	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

// titleEscapeOptions keeps parentheses readable in title contexts.
func titleEscapeOptions() normalize.EscapeOptions {
	opts := normalize.DefaultEscapeOptions()
	opts.Parens = false
	return opts
}

func formatPrice(p *core.Price) string {
	s := p.Display
	if p.ListDisplay != "" {
		s += " (list " + p.ListDisplay
		if p.SavingsPercent != nil {
			s += fmt.Sprintf(", save %d%%", *p.SavingsPercent)
		}
		s += ")"
	}
	return s
}

func formatRating(r *core.Rating) string {
	s := fmt.Sprintf("%.1f out of 5", r.Value)
	if r.Count > 0 {
		s += fmt.Sprintf(" (%d ratings)", r.Count)
	}
	return s
}
