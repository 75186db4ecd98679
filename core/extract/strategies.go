// Per-field strategy tables. Each table is an ordered list; reordering or
// adding a strategy is a data change, not a control-flow edit. Selector
// lists reflect the marketplace's markup in priority order.
package extract

import (
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/zakkhoyt/linkmark/core"
	"github.com/zakkhoyt/linkmark/core/locator"
)

// --- identifier ---

// rawIdentifierPatterns are the last-resort regexes over raw markup.
// Identifier is the only field with a raw-markup strategy.
var rawIdentifierPatterns = []*regexp.Regexp{
	regexp.MustCompile(`"(?:asin|ASIN)"\s*:\s*"([A-Za-z0-9]{10})"`),
	regexp.MustCompile(`\bASIN=([A-Za-z0-9]{10})\b`),
	regexp.MustCompile(`data-asin="([A-Za-z0-9]{10})"`),
}

var identifierStrategies = []strategy{
	{"url", func(d *document) string {
		if d.url == "" {
			return ""
		}
		loc, err := locator.Classify(d.url)
		if err != nil || loc.Kind != core.KindProduct {
			return ""
		}
		return loc.Identifier
	}},
	{"structured-data", func(d *document) string {
		for _, p := range d.products {
			for _, candidate := range []string{p.SKU, p.ProductID} {
				if id, ok := locator.NormalizeIdentifier(candidate); ok {
					return id
				}
			}
		}
		return ""
	}},
	{"markup", func(d *document) string {
		for _, sel := range []string{
			`input#ASIN`, `input[name="ASIN"]`, `input[name="ASIN.0"]`,
		} {
			if value, ok := d.doc.Find(sel).First().Attr("value"); ok {
				if id, valid := locator.NormalizeIdentifier(value); valid {
					return id
				}
			}
		}
		return ""
	}},
	{"raw-pattern", func(d *document) string {
		for _, pattern := range rawIdentifierPatterns {
			if m := pattern.FindStringSubmatch(d.raw); m != nil {
				if id, ok := locator.NormalizeIdentifier(m[1]); ok {
					return id
				}
			}
		}
		return ""
	}},
}

// --- title ---

var titleStrategies = []strategy{
	{"structured-data", func(d *document) string {
		for _, p := range d.products {
			if p.Name != "" {
				return p.Name
			}
		}
		return ""
	}},
	{"meta", func(d *document) string {
		return metaContent(d.doc, "og:title", "twitter:title")
	}},
	{"markup", func(d *document) string {
		return selectorText(d.doc, "#productTitle", "#title", "h1#title span", "h1.product-title")
	}},
	{"title-tag", func(d *document) string {
		return selectorText(d.doc, "title")
	}},
}

// --- brand ---

var brandStrategies = []strategy{
	{"structured-data", func(d *document) string {
		for _, p := range d.products {
			if brand := ldString(p.Brand); brand != "" {
				return brand
			}
		}
		return ""
	}},
	{"markup", func(d *document) string {
		brand := selectorText(d.doc, "#bylineInfo", "a#bylineInfo", "#brand", ".po-brand .po-break-word")
		// Byline text carries its own boilerplate ("Visit the X Store",
		// "Brand: X").
		brand = strings.TrimPrefix(brand, "Visit the ")
		brand = strings.TrimSuffix(brand, " Store")
		brand = strings.TrimPrefix(brand, "Brand: ")
		return brand
	}},
}

// --- description ---

var descriptionStrategies = []strategy{
	{"structured-data", func(d *document) string {
		for _, p := range d.products {
			if p.Description != "" {
				return p.Description
			}
		}
		return ""
	}},
	{"meta", func(d *document) string {
		return metaContent(d.doc, "og:description", "description")
	}},
	{"markup", func(d *document) string {
		for _, sel := range []string{"#productDescription", "#feature-bullets"} {
			node := d.doc.Find(sel).First()
			if node.Length() == 0 {
				continue
			}
			// Description markup keeps its structure (paragraphs, bullet
			// lists); convert it to markdown text instead of flattening.
			if html, err := node.Html(); err == nil {
				if md, err := htmltomarkdown.ConvertString(html); err == nil && strings.TrimSpace(md) != "" {
					return strings.TrimSpace(md)
				}
			}
			if text := strings.TrimSpace(node.Text()); text != "" {
				return text
			}
		}
		return ""
	}},
}

// --- availability ---

var availabilityStrategies = []strategy{
	{"structured-data", func(d *document) string {
		for _, p := range d.products {
			if offer := firstOffer(p.Offers); offer != nil && offer.Availability != "" {
				// Values arrive as schema.org URLs ("https://schema.org/InStock").
				parts := strings.Split(offer.Availability, "/")
				return parts[len(parts)-1]
			}
		}
		return ""
	}},
	{"markup", func(d *document) string {
		return selectorText(d.doc, "#availability span", "#availability", "#outOfStock .a-color-price")
	}},
}

// --- shipping ---

var shippingStrategies = []strategy{
	{"markup", func(d *document) string {
		return selectorText(d.doc,
			"#deliveryBlockMessage",
			"#mir-layout-DELIVERY_BLOCK-slot-PRIMARY_DELIVERY_MESSAGE_LARGE",
			"#amazonGlobal_feature_div",
		)
	}},
}
