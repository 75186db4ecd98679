// Sponsored-tile detection rules.
// A results tile counts as sponsored when its container matches one of the
// class selectors or carries one of the label texts below. The tables come
// from the class/text conventions the marketplace uses to mark promoted
// placements.
package scan

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// sponsoredSelectors match a result container (or a descendant) that marks
// the tile as a paid placement.
var sponsoredSelectors = []string{
	`[data-component-type="sp-sponsored-result"]`,
	".s-sponsored-label-info-icon",
	".s-sponsored-label-text",
	".puis-sponsored-label-text",
	".AdHolder",
	`[data-ad-feedback]`,
	`[cel_widget_id*="MAIN-FEATURED_ASINS"]`,
}

// sponsoredLabels are label texts that mark a tile as promoted even when
// no sponsored class is present.
var sponsoredLabels = []string{
	"Sponsored",
	"Featured from our brands",
	"Brands related to your search",
}

// resultContainerSelectors locate the tile an anchor belongs to, in
// priority order.
var resultContainerSelectors = []string{
	`div[data-component-type="s-search-result"]`,
	"div.s-result-item",
	"li.zg-item-immersion",
	"div.a-carousel-card",
}

// isSponsored reports whether the container holding sel is a sponsored
// tile.
func isSponsored(sel *goquery.Selection) bool {
	container := resultContainer(sel)
	if container == nil {
		return false
	}

	for _, sponsored := range sponsoredSelectors {
		if container.Is(sponsored) || container.Find(sponsored).Length() > 0 {
			return true
		}
	}

	labelText := strings.TrimSpace(container.Find(".a-color-secondary, .s-label-popover-default, span").First().Text())
	for _, label := range sponsoredLabels {
		if strings.EqualFold(labelText, label) {
			return true
		}
	}
	return false
}

// resultContainer walks up from an anchor to its enclosing result tile.
func resultContainer(sel *goquery.Selection) *goquery.Selection {
	for _, container := range resultContainerSelectors {
		if closest := sel.Closest(container); closest.Length() > 0 {
			return closest
		}
	}
	return nil
}
