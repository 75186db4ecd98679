// Package locator classifies marketplace URLs.
// Classification is driven by fixed rule tables: an ordered list of path
// templates per kind, an allow-list of marketplace domains, and key-name
// rules for partitioning query parameters.
package locator

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/zakkhoyt/linkmark/core"
)

// marketplaceDomains are the registered domains recognized as the target
// marketplace. Subdomains (www., smile., ...) match by suffix.
var marketplaceDomains = []string{
	"amazon.com",
	"amazon.co.uk",
	"amazon.ca",
	"amazon.de",
	"amazon.fr",
	"amazon.it",
	"amazon.es",
	"amazon.co.jp",
	"amazon.com.au",
	"amazon.in",
	"amazon.com.mx",
}

// productPathTemplates are tried in order; the first match wins.
// Each captures the candidate 10-character identifier segment.
var productPathTemplates = []*regexp.Regexp{
	regexp.MustCompile(`^/(?:[^/]+/)?dp/([A-Za-z0-9]{10})(?:[/?]|$)`),
	regexp.MustCompile(`^/gp/product/([A-Za-z0-9]{10})(?:[/?]|$)`),
	regexp.MustCompile(`^/o/ASIN/([A-Za-z0-9]{10})(?:[/?]|$)`),
	regexp.MustCompile(`^/exec/obidos/ASIN/([A-Za-z0-9]{10})(?:[/?]|$)`),
}

// storePathTemplates capture a store page identifier.
var storePathTemplates = []*regexp.Regexp{
	regexp.MustCompile(`^/stores/[^/]+/page/([A-Za-z0-9-]+)(?:[/?]|$)`),
	regexp.MustCompile(`^/stores/page/([A-Za-z0-9-]+)(?:[/?]|$)`),
}

// singleSegmentKinds maps a leading path segment to a non-identifier kind.
var singleSegmentKinds = []struct {
	prefix string
	kind   core.Kind
}{
	{"/s", core.KindSearch},
	{"/b", core.KindCategory},
	{"/bestsellers", core.KindBestSellers},
	{"/gp/bestsellers", core.KindBestSellers},
	{"/deals", core.KindDeals},
	{"/gp/goldbox", core.KindDeals},
}

// identifierPattern is the validity check for a product identifier:
// exactly 10 characters, uppercase letters and digits only.
var identifierPattern = regexp.MustCompile(`^[A-Z0-9]{10}$`)

// ValidIdentifier reports whether id is a well-formed listing identifier.
func ValidIdentifier(id string) bool {
	return identifierPattern.MatchString(id)
}

// NormalizeIdentifier uppercases a candidate once and validates it.
// Candidates that still fail are discarded, never retried.
func NormalizeIdentifier(candidate string) (string, bool) {
	id := strings.ToUpper(candidate)
	if !ValidIdentifier(id) {
		return "", false
	}
	return id, true
}

// Classify parses rawURL and decides what it points at.
// A hostname outside the marketplace allow-list yields KindOther with no
// identifier; that is a defined outcome, not an error. Only a string that
// fails to parse as a URL is an error (core.ErrInvalidURL).
func Classify(rawURL string) (*core.ParsedLocator, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || parsed.Host == "" {
		return nil, core.ErrInvalidURL
	}

	loc := &core.ParsedLocator{
		Kind:     core.KindOther,
		Hostname: parsed.Hostname(),
		Pathname: parsed.Path,
	}

	loc.AllParams = flattenQuery(parsed.Query())
	loc.VariantParams, loc.TrackingParams = PartitionParams(loc.AllParams)

	if !IsMarketplaceHost(loc.Hostname) {
		return loc, nil
	}

	// Path-based product identity takes priority over store identity, which
	// takes priority over the single-segment kinds, regardless of where in
	// the URL each shape appears.
	for _, tmpl := range productPathTemplates {
		m := tmpl.FindStringSubmatch(parsed.Path)
		if m == nil {
			continue
		}
		if id, ok := NormalizeIdentifier(m[1]); ok {
			loc.Kind = core.KindProduct
			loc.Identifier = id
			loc.SellerID = loc.AllParams["me"]
			return loc, nil
		}
	}

	for _, tmpl := range storePathTemplates {
		if m := tmpl.FindStringSubmatch(parsed.Path); m != nil {
			loc.Kind = core.KindStore
			loc.Identifier = m[1]
			return loc, nil
		}
	}
	if me := loc.AllParams["me"]; me != "" {
		loc.Kind = core.KindStore
		loc.SellerID = me
		return loc, nil
	}

	for _, seg := range singleSegmentKinds {
		if parsed.Path == seg.prefix || strings.HasPrefix(parsed.Path, seg.prefix+"/") {
			loc.Kind = seg.kind
			return loc, nil
		}
	}

	return loc, nil
}

// IsMarketplaceHost reports whether host belongs to a recognized
// marketplace domain (exact match or subdomain).
func IsMarketplaceHost(host string) bool {
	host = strings.ToLower(host)
	for _, domain := range marketplaceDomains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

// flattenQuery keeps the first value per key, mirroring how listing URLs
// are written (keys never repeat meaningfully).
func flattenQuery(values url.Values) map[string]string {
	if len(values) == 0 {
		return nil
	}
	params := make(map[string]string, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			params[key] = vals[0]
		}
	}
	return params
}
