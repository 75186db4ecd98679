// Package compose builds canonical listing URLs and CDN image URLs.
// Everything here is deterministic string assembly; the only failure mode
// is an invalid listing identifier.
package compose

import (
	"sort"
	"strings"

	"github.com/zakkhoyt/linkmark/core"
	"github.com/zakkhoyt/linkmark/core/locator"
)

// LinkFormat selects how much of the original URL survives composition.
type LinkFormat string

const (
	// FormatShort is the bare canonical path with no parameters.
	FormatShort LinkFormat = "short"
	// FormatMedium appends only the variant-parameter subset.
	FormatMedium LinkFormat = "medium"
	// FormatLong appends the full original parameter set.
	FormatLong LinkFormat = "long"
)

const defaultHost = "www.amazon.com"

// ListingURL composes a canonical product URL for the given identifier.
// params is interpreted per format: ignored for short, the caller's
// already-partitioned variant subset for medium, the full original set for
// long. ListingURL never re-derives the variant/tracking classification.
// Pairs are joined with "&" and no encoding is applied beyond what the
// values already carry.
func ListingURL(identifier, hostname, scheme string, params map[string]string, format LinkFormat) (string, error) {
	if !locator.ValidIdentifier(identifier) {
		return "", core.ErrInvalidIdentifier
	}
	if hostname == "" {
		hostname = defaultHost
	}
	if scheme == "" {
		scheme = "https"
	}

	var b strings.Builder
	b.WriteString(scheme)
	b.WriteString("://")
	b.WriteString(hostname)
	b.WriteString("/dp/")
	b.WriteString(identifier)

	if format == FormatShort || len(params) == 0 {
		return b.String(), nil
	}

	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	sep := "?"
	for _, key := range keys {
		b.WriteString(sep)
		b.WriteString(key)
		b.WriteString("=")
		b.WriteString(params[key])
		sep = "&"
	}
	return b.String(), nil
}

// LocatorURL composes a URL from an already-classified locator, picking the
// parameter set the format calls for.
func LocatorURL(loc *core.ParsedLocator, format LinkFormat) (string, error) {
	params := map[string]string(nil)
	switch format {
	case FormatMedium:
		params = loc.VariantParams
	case FormatLong:
		params = loc.AllParams
	}
	return ListingURL(loc.Identifier, loc.Hostname, "https", params, format)
}
