// Price extraction and savings derivation.
package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/zakkhoyt/linkmark/core"
)

// currentPriceSelectors and listPriceSelectors are tried in order.
var currentPriceSelectors = []string{
	".a-price:not(.a-text-price) .a-offscreen",
	"#priceblock_ourprice",
	"#priceblock_dealprice",
	"#priceblock_saleprice",
	"#corePrice_feature_div .a-offscreen",
}

var listPriceSelectors = []string{
	".a-price.a-text-price .a-offscreen",
	"#listPrice",
	".basisPrice .a-offscreen",
	"#priceblock_listprice",
}

var currencySymbolPattern = regexp.MustCompile(`[$€£¥₹]|USD|EUR|GBP|JPY`)

// extractPrice resolves the current price, the crossed-out list price, and
// the derived savings. The display string survives even when the numeric
// parse fails. Savings are computed only when both prices parse and the
// list price is strictly higher than the current one; anything else (price
// increases, malformed data) yields absent savings rather than a
// misleading discount.
func extractPrice(d *document) *core.Price {
	display := firstPriceDisplay(d)
	if display == "" {
		return nil
	}

	price := &core.Price{
		Display:  display,
		Currency: currencySymbolPattern.FindString(display),
	}
	if value, ok := parsePriceValue(display); ok {
		price.Value = &value
	}

	listDisplay := selectorText(d.doc, listPriceSelectors...)
	if listDisplay != "" && listDisplay != display {
		price.ListDisplay = listDisplay
		if listValue, ok := parsePriceValue(listDisplay); ok {
			price.ListValue = &listValue
		}
	}

	if price.Value != nil && price.ListValue != nil && *price.ListValue > *price.Value {
		savings := *price.ListValue - *price.Value
		percent := int(math.Round(savings / *price.ListValue * 100))
		price.Savings = &savings
		price.SavingsPercent = &percent
	}

	return price
}

// firstPriceDisplay prefers the structured-data offer, then the markup
// selectors.
func firstPriceDisplay(d *document) string {
	for _, p := range d.products {
		offer := firstOffer(p.Offers)
		if offer == nil {
			continue
		}
		if price := ldString(offer.Price); price != "" {
			if offer.PriceCurrency != "" {
				if symbol := currencyToSymbol(offer.PriceCurrency); symbol != "" {
					return symbol + price
				}
			}
			return price
		}
	}
	return selectorText(d.doc, currentPriceSelectors...)
}

// parsePriceValue strips currency symbols, grouping separators, and
// whitespace, then parses the remainder as a decimal.
func parsePriceValue(display string) (float64, bool) {
	s := currencySymbolPattern.ReplaceAllString(display, "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	value, err := strconv.ParseFloat(s, 64)
	if err != nil || value < 0 {
		return 0, false
	}
	return value, true
}

func currencyToSymbol(code string) string {
	switch strings.ToUpper(code) {
	case "USD", "CAD", "AUD", "MXN":
		return "$"
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	case "JPY":
		return "¥"
	case "INR":
		return "₹"
	default:
		return ""
	}
}
