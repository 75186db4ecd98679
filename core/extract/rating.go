// Rating and selected-variant extraction.
package extract

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/zakkhoyt/linkmark/core"
)

var (
	// ratingPattern matches "<number> out of 5", case-insensitive.
	ratingPattern = regexp.MustCompile(`(?i)([\d.]+)\s+out\s+of\s+5`)

	// countPattern matches "<count> ratings" / "<count> customer reviews",
	// with optional thousands separators.
	countPattern = regexp.MustCompile(`(?i)([\d,.]+)\s+(?:global\s+)?(?:ratings?|customer\s+reviews?)`)
)

var ratingSelectors = []string{
	"#acrPopover .a-icon-alt",
	"span.a-icon-alt",
	"#averageCustomerReviews .a-icon-alt",
}

// extractRating parses the star rating and the review count. Both halves
// are independent: a rating without a count is still returned.
func extractRating(d *document) *core.Rating {
	raw := ratingText(d)
	if raw == "" {
		return nil
	}
	m := ratingPattern.FindStringSubmatch(raw)
	if m == nil {
		return nil
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil || value < 0 || value > 5 {
		return nil
	}

	rating := &core.Rating{Value: value, Raw: raw}

	rating.Count = reviewCount(d)
	return rating
}

// reviewCount prefers the structured-data count, then the "<count>
// ratings" text with thousands separators stripped.
func reviewCount(d *document) int {
	for _, p := range d.products {
		if p.Rating == nil {
			continue
		}
		for _, raw := range []json.RawMessage{p.Rating.ReviewCount, p.Rating.RatingCount} {
			if count, err := strconv.Atoi(ldString(raw)); err == nil && count > 0 {
				return count
			}
		}
	}

	countText := selectorText(d.doc, "#acrCustomerReviewText", "#ratings-count")
	if cm := countPattern.FindStringSubmatch(countText); cm != nil {
		digits := strings.NewReplacer(",", "", ".", "").Replace(cm[1])
		if count, err := strconv.Atoi(digits); err == nil {
			return count
		}
	}
	return 0
}

func ratingText(d *document) string {
	for _, p := range d.products {
		if p.Rating != nil {
			if value := ldString(p.Rating.RatingValue); value != "" {
				return value + " out of 5"
			}
		}
	}
	if alt := metaContent(d.doc, "og:rating"); alt != "" {
		return alt
	}
	for _, sel := range ratingSelectors {
		text := strings.TrimSpace(d.doc.Find(sel).First().Text())
		if ratingPattern.MatchString(text) {
			return text
		}
	}
	return ""
}

// variantSelectors map a selection label node to the axis it names.
var variantSelectors = []struct {
	selector string
	axis     core.VariantAxis
}{
	{"#variation_color_name .selection", core.VariantColor},
	{"#variation_size_name .selection", core.VariantSize},
	{"#variation_style_name .selection", core.VariantStyle},
	{"#variation_pattern_name .selection", core.VariantOther},
}

// extractVariant reads the currently selected variant, if the page shows
// one.
func extractVariant(d *document) *core.Variant {
	for _, vs := range variantSelectors {
		value := strings.TrimSpace(d.doc.Find(vs.selector).First().Text())
		if value != "" {
			return &core.Variant{Axis: vs.axis, Value: value}
		}
	}
	return nil
}
