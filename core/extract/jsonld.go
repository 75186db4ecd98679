// Structured-data (JSON-LD) parsing for the strategy chains.
// Embedded ld+json blocks are the most reliable extraction source when
// present. Blocks that fail to parse, or that describe something other
// than a Product, are skipped silently.
package extract

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ldProduct is the subset of a schema.org Product record we read.
// Fields use json.RawMessage where the vocabulary allows both scalar and
// object/array forms.
type ldProduct struct {
	Type        json.RawMessage `json:"@type"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	ProductID   string          `json:"productID"`
	Description string          `json:"description"`
	Brand       json.RawMessage `json:"brand"`
	Image       json.RawMessage `json:"image"`
	Offers      json.RawMessage `json:"offers"`
	Rating      *ldRating       `json:"aggregateRating"`
}

type ldRating struct {
	RatingValue json.RawMessage `json:"ratingValue"`
	ReviewCount json.RawMessage `json:"reviewCount"`
	RatingCount json.RawMessage `json:"ratingCount"`
}

type ldOffer struct {
	Price         json.RawMessage `json:"price"`
	PriceCurrency string          `json:"priceCurrency"`
	Availability  string          `json:"availability"`
}

// parseStructuredData scans every ld+json script block and collects the
// records that declare themselves Products. Top-level arrays and @graph
// containers are flattened.
func parseStructuredData(doc *goquery.Document) []ldProduct {
	var products []ldProduct

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		raw := strings.TrimSpace(s.Text())
		if raw == "" {
			return
		}
		for _, node := range flattenLD([]byte(raw)) {
			var p ldProduct
			if err := json.Unmarshal(node, &p); err != nil {
				continue
			}
			if isProductType(p.Type) {
				products = append(products, p)
			}
		}
	})

	return products
}

// flattenLD expands a raw ld+json payload into candidate record nodes:
// the value itself, the elements of a top-level array, and the elements of
// an @graph container.
func flattenLD(raw []byte) []json.RawMessage {
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err == nil {
		return arr
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil
	}
	if graph, ok := obj["@graph"]; ok {
		var nodes []json.RawMessage
		if err := json.Unmarshal(graph, &nodes); err == nil {
			return nodes
		}
	}
	return []json.RawMessage{raw}
}

// isProductType handles @type as either a string or an array of strings.
func isProductType(raw json.RawMessage) bool {
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single == "Product"
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		for _, t := range many {
			if t == "Product" {
				return true
			}
		}
	}
	return false
}

// ldString decodes a value that may be a string, a number, or an object
// with a "name" property (the brand field uses all three forms in the wild).
func ldString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Name
	}
	return ""
}

// ldFirstString decodes a value that may be a string or an array of
// strings, returning the first entry.
func ldFirstString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err == nil && len(many) > 0 {
		return many[0]
	}
	return ""
}

// firstOffer decodes the offers field, which may be a single offer object
// or an array of them.
func firstOffer(raw json.RawMessage) *ldOffer {
	if len(raw) == 0 {
		return nil
	}
	var one ldOffer
	if err := json.Unmarshal(raw, &one); err == nil && len(one.Price) > 0 {
		return &one
	}
	var many []ldOffer
	if err := json.Unmarshal(raw, &many); err == nil && len(many) > 0 {
		return &many[0]
	}
	return nil
}
