// PDF renderer.
// Renders a one-page listing card using gofpdf: title, key facts table,
// then the description as flowing text.
package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/zakkhoyt/linkmark/core"
)

// PDFRenderer renders a listing as a PDF card.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the listing into PDF bytes.
func (r *PDFRenderer) Render(listing *core.ExtractedListing) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	title := listing.TitleNormalized
	if title == "" {
		title = listing.Identifier
	}
	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 8, title, "", "L", false)
	pdf.Ln(2)

	if listing.SourceURL != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, "Source: "+listing.SourceURL, "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(4)
	}

	writeRow := func(label, value string) {
		if value == "" {
			return
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(35, 6, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 6, value, "", "L", false)
	}

	writeRow("Identifier", listing.Identifier)
	writeRow("Brand", listing.Brand)
	if listing.Price != nil {
		writeRow("Price", formatPrice(listing.Price))
	}
	if listing.Variant != nil {
		writeRow("Variant", fmt.Sprintf("%s (%s)", listing.Variant.Value, listing.Variant.Axis))
	}
	if listing.Rating != nil {
		writeRow("Rating", formatRating(listing.Rating))
	}
	writeRow("Availability", listing.Availability)
	writeRow("Shipping", listing.Shipping)

	if listing.Description != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, cleanInlineMarkdown(listing.Description), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// cleanInlineMarkdown strips inline markdown formatting, since the
// description may already be markdown text.
func cleanInlineMarkdown(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")
	text = regexp.MustCompile("`([^`]+)`").ReplaceAllString(text, "$1")
	text = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`).ReplaceAllString(text, "$1")
	text = regexp.MustCompile(`(?m)^[-*]\s+`).ReplaceAllString(text, "• ")
	return strings.TrimSpace(text)
}
