package extract

import (
	"errors"
	"strings"
	"testing"

	"github.com/zakkhoyt/linkmark/core"
)

const listingPage = `<!DOCTYPE html>
<html><head>
<title>Amazon.com: Widget Pro : Electronics</title>
<meta property="og:title" content="Widget Pro Deluxe 2000 Espresso Machine with Grinder at Amazon.com">
<meta property="og:description" content="A very good espresso machine.">
</head><body>
<span id="productTitle">Widget Pro Deluxe 2000 Espresso Machine with Grinder, Stainless</span>
<a id="bylineInfo">Visit the WidgetCo Store</a>
<div id="corePrice_feature_div">
  <span class="a-price a-text-price"><span class="a-offscreen">$100.00</span></span>
  <span class="a-price"><span class="a-offscreen">$80.00</span></span>
</div>
<div id="variation_color_name"><span class="selection">Stainless</span></div>
<span id="acrPopover"><span class="a-icon-alt">4.5 out of 5 stars</span></span>
<span id="acrCustomerReviewText">1,234 ratings</span>
<div id="availability"><span> In Stock </span></div>
<img id="landingImage"
  src="https://m.media-amazon.com/images/I/71widgetAA._SX466_.jpg"
  data-a-dynamic-image='{"https://m.media-amazon.com/images/I/71widgetAA._SX466_.jpg":[466,466],"https://m.media-amazon.com/images/I/71widgetAA._SX679_.jpg":[679,679]}'>
<div id="feature-bullets"><ul><li>Fast heat-up</li><li>Integrated grinder</li></ul></div>
</body></html>`

func TestListingExtraction(t *testing.T) {
	extractor := New(Options{})
	listing, err := extractor.Listing(FromHTML(listingPage), "https://www.amazon.com/dp/B01ABCDEFG?th=1&tag=foo-20")
	if err != nil {
		t.Fatal(err)
	}

	if listing.Identifier != "B01ABCDEFG" {
		t.Errorf("identifier = %q", listing.Identifier)
	}

	// The title tag normalizes to the shortest candidate; og:title and
	// #productTitle retain more boilerplate.
	if listing.TitleNormalized != "Widget Pro" {
		t.Errorf("normalized title = %q, want %q", listing.TitleNormalized, "Widget Pro")
	}

	if listing.Brand != "WidgetCo" {
		t.Errorf("brand = %q, want WidgetCo", listing.Brand)
	}

	if listing.Description != "A very good espresso machine." {
		t.Errorf("description = %q", listing.Description)
	}

	if listing.Availability != "In Stock" {
		t.Errorf("availability = %q", listing.Availability)
	}

	if listing.Variant == nil || listing.Variant.Axis != core.VariantColor || listing.Variant.Value != "Stainless" {
		t.Errorf("variant = %+v", listing.Variant)
	}
}

func TestPriceSavings(t *testing.T) {
	extractor := New(Options{})
	listing, err := extractor.Listing(FromHTML(listingPage), "https://www.amazon.com/dp/B01ABCDEFG")
	if err != nil {
		t.Fatal(err)
	}

	price := listing.Price
	if price == nil {
		t.Fatal("expected price")
	}
	if price.Display != "$80.00" {
		t.Errorf("display = %q", price.Display)
	}
	if price.Value == nil || *price.Value != 80.0 {
		t.Errorf("value = %v", price.Value)
	}
	if price.ListDisplay != "$100.00" {
		t.Errorf("list display = %q", price.ListDisplay)
	}
	if price.Savings == nil || *price.Savings != 20.0 {
		t.Errorf("savings = %v", price.Savings)
	}
	if price.SavingsPercent == nil || *price.SavingsPercent != 20 {
		t.Errorf("savings percent = %v", price.SavingsPercent)
	}
	if price.Currency != "$" {
		t.Errorf("currency = %q", price.Currency)
	}
}

func TestPriceIncreaseHidesSavings(t *testing.T) {
	// List price below the current price is malformed data; no discount may
	// be surfaced.
	page := `<html><body>
	<span class="a-price a-text-price"><span class="a-offscreen">$80.00</span></span>
	<span class="a-price"><span class="a-offscreen">$100.00</span></span>
	<input id="ASIN" value="B01ABCDEFG">
	</body></html>`

	extractor := New(Options{})
	listing, err := extractor.Listing(FromHTML(page), "")
	if err != nil {
		t.Fatal(err)
	}

	price := listing.Price
	if price == nil {
		t.Fatal("expected price")
	}
	if price.Savings != nil || price.SavingsPercent != nil {
		t.Errorf("savings must be absent on a price increase, got %v / %v", price.Savings, price.SavingsPercent)
	}
}

func TestRating(t *testing.T) {
	extractor := New(Options{})
	listing, err := extractor.Listing(FromHTML(listingPage), "https://www.amazon.com/dp/B01ABCDEFG")
	if err != nil {
		t.Fatal(err)
	}

	rating := listing.Rating
	if rating == nil {
		t.Fatal("expected rating")
	}
	if rating.Value != 4.5 {
		t.Errorf("value = %v", rating.Value)
	}
	if rating.Count != 1234 {
		t.Errorf("count = %d, want 1234 (thousands separator stripped)", rating.Count)
	}
}

func TestPrimaryImagePicksLargestDynamicEntry(t *testing.T) {
	extractor := New(Options{})
	listing, err := extractor.Listing(FromHTML(listingPage), "https://www.amazon.com/dp/B01ABCDEFG")
	if err != nil {
		t.Fatal(err)
	}

	img := listing.Images.Primary
	if img == nil {
		t.Fatal("expected primary image")
	}
	if !strings.Contains(img.URL, "_SX679_") {
		t.Errorf("primary image = %q, want the largest dynamic entry", img.URL)
	}
	if img.ID != "71widgetAA" {
		t.Errorf("image id = %q", img.ID)
	}
}

func TestIdentifierFallbacks(t *testing.T) {
	extractor := New(Options{})

	t.Run("hidden input", func(t *testing.T) {
		page := `<html><body><input id="ASIN" value="b0testtest"></body></html>`
		id, err := extractor.Identifier(FromHTML(page), "")
		if err != nil {
			t.Fatal(err)
		}
		if id != "B0TESTTEST" {
			t.Errorf("id = %q", id)
		}
	})

	t.Run("raw markup pattern", func(t *testing.T) {
		page := `<html><body><script>var state = {"asin":"B0RAWRAW01"};</script></body></html>`
		id, err := extractor.Identifier(FromHTML(page), "")
		if err != nil {
			t.Fatal(err)
		}
		if id != "B0RAWRAW01" {
			t.Errorf("id = %q", id)
		}
	})

	t.Run("no identifier anywhere is fatal", func(t *testing.T) {
		page := `<html><body><p>nothing here</p></body></html>`
		_, err := extractor.Listing(FromHTML(page), "https://example.com/")
		if !errors.Is(err, core.ErrNoIdentifier) {
			t.Errorf("error = %v, want ErrNoIdentifier", err)
		}
	})
}

func TestStructuredDataExtraction(t *testing.T) {
	page := `<html><head>
	<script type="application/ld+json">
	{"@context":"https://schema.org","@type":"Product","name":"Widget Pro",
	 "sku":"B01ABCDEFG","brand":{"@type":"Brand","name":"WidgetCo"},
	 "description":"A very good espresso machine.",
	 "offers":{"@type":"Offer","price":"79.99","priceCurrency":"USD","availability":"https://schema.org/InStock"},
	 "aggregateRating":{"ratingValue":"4.5","reviewCount":"1234"}}
	</script>
	</head><body></body></html>`

	extractor := New(Options{})
	listing, err := extractor.Listing(FromHTML(page), "")
	if err != nil {
		t.Fatal(err)
	}

	if listing.Identifier != "B01ABCDEFG" {
		t.Errorf("identifier = %q", listing.Identifier)
	}
	if listing.TitleNormalized != "Widget Pro" {
		t.Errorf("title = %q", listing.TitleNormalized)
	}
	if listing.Brand != "WidgetCo" {
		t.Errorf("brand = %q", listing.Brand)
	}
	if listing.Price == nil || listing.Price.Display != "$79.99" {
		t.Errorf("price = %+v", listing.Price)
	}
	if listing.Availability != "InStock" {
		t.Errorf("availability = %q", listing.Availability)
	}
	if listing.Rating == nil || listing.Rating.Value != 4.5 || listing.Rating.Count != 1234 {
		t.Errorf("rating = %+v", listing.Rating)
	}
}

func TestDescriptionMarkupFallback(t *testing.T) {
	page := `<html><body>
	<input id="ASIN" value="B01ABCDEFG">
	<div id="feature-bullets"><ul><li>Fast heat-up</li><li>Integrated grinder</li></ul></div>
	</body></html>`

	extractor := New(Options{})
	listing, err := extractor.Listing(FromHTML(page), "")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(listing.Description, "Fast heat-up") {
		t.Errorf("description = %q, want the bullet text", listing.Description)
	}
}
