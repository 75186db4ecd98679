// Package scan finds and classifies listing links on a search or category
// results page. It operates on already-fetched HTML; fetching the page is
// the caller's job.
package scan

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/zakkhoyt/linkmark/core"
	"github.com/zakkhoyt/linkmark/core/locator"
	"github.com/zakkhoyt/linkmark/core/normalize"
)

// Listing is one product link found on a results page.
type Listing struct {
	URL       string              `json:"url"`
	Locator   *core.ParsedLocator `json:"locator"`
	Title     string              `json:"title,omitempty"`
	Sponsored bool                `json:"sponsored"`
}

// Results scans a results page for product links. Each listing appears
// once (keyed by identifier), in document order, with relative hrefs
// resolved against baseURL and the enclosing tile checked against the
// sponsored rule tables.
func Results(html string, baseURL string) ([]Listing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, core.ErrInvalidURL
	}

	seen := newDedup()
	var listings []Listing

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || href == "" {
			return
		}
		resolved := resolveHref(href, base)
		if resolved == "" {
			return
		}

		loc, err := locator.Classify(resolved)
		if err != nil || loc.Kind != core.KindProduct {
			return
		}
		if !seen.Add(loc.Identifier) {
			return
		}

		listings = append(listings, Listing{
			URL:       resolved,
			Locator:   loc,
			Title:     anchorTitle(s),
			Sponsored: isSponsored(s),
		})
	})

	return listings, nil
}

// Sponsored returns only the sponsored subset of Results.
func Sponsored(html string, baseURL string) ([]Listing, error) {
	all, err := Results(html, baseURL)
	if err != nil {
		return nil, err
	}
	var sponsored []Listing
	for _, l := range all {
		if l.Sponsored {
			sponsored = append(sponsored, l)
		}
	}
	return sponsored, nil
}

// anchorTitle derives a display title from the anchor text or its tile's
// heading.
func anchorTitle(s *goquery.Selection) string {
	if text := strings.TrimSpace(s.Text()); text != "" {
		return normalize.Title(text)
	}
	if container := resultContainer(s); container != nil {
		if text := strings.TrimSpace(container.Find("h2, h5, .a-text-normal").First().Text()); text != "" {
			return normalize.Title(text)
		}
	}
	return ""
}

// resolveHref resolves a possibly relative href against the page URL,
// skipping non-navigational schemes and fragments.
func resolveHref(href string, base *url.URL) string {
	if strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "tel:") || strings.HasPrefix(href, "#") {
		return ""
	}
	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(parsed)
	resolved.Fragment = ""
	return resolved.String()
}
