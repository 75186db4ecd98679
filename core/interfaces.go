// Package core defines the record types and stage interfaces for linkmark.
// Every record is constructed fresh from a single input (a URL string or a
// parsed document) and is immutable after construction.
package core

import "context"

// Kind classifies what a marketplace URL points at.
type Kind string

const (
	KindProduct     Kind = "product"
	KindStore       Kind = "store"
	KindSearch      Kind = "search"
	KindCategory    Kind = "category"
	KindBestSellers Kind = "bestsellers"
	KindDeals       Kind = "deals"
	KindOther       Kind = "other"
)

// ParsedLocator is the result of classifying a marketplace URL.
// Identifier is set only for product and store URLs that matched one of the
// fixed path/query templates. VariantParams and TrackingParams are disjoint
// subsets of AllParams, classified purely by key name.
type ParsedLocator struct {
	Kind           Kind              `json:"kind"`
	Identifier     string            `json:"identifier,omitempty"`
	SellerID       string            `json:"seller_id,omitempty"`
	Hostname       string            `json:"hostname"`
	Pathname       string            `json:"pathname"`
	AllParams      map[string]string `json:"all_params,omitempty"`
	VariantParams  map[string]string `json:"variant_params,omitempty"`
	TrackingParams map[string]string `json:"tracking_params,omitempty"`
}

// Price holds a listing's current price and, when present, the crossed-out
// list price and the derived savings. Numeric fields are nil when the display
// string did not parse; the display string is kept either way.
type Price struct {
	Display        string   `json:"display"`
	Value          *float64 `json:"value,omitempty"`
	Currency       string   `json:"currency,omitempty"`
	ListDisplay    string   `json:"list_display,omitempty"`
	ListValue      *float64 `json:"list_value,omitempty"`
	Savings        *float64 `json:"savings,omitempty"`
	SavingsPercent *int     `json:"savings_percent,omitempty"`
}

// Image is a single product image reference.
type Image struct {
	URL string `json:"url"`
	ID  string `json:"id,omitempty"`
}

// ImageSet groups the images found on a listing page.
type ImageSet struct {
	Primary    *Image           `json:"primary,omitempty"`
	Additional []Image          `json:"additional,omitempty"`
	ByVariant  map[string]Image `json:"by_variant,omitempty"`
}

// VariantAxis names the dimension a selected variant varies along.
type VariantAxis string

const (
	VariantColor VariantAxis = "color"
	VariantSize  VariantAxis = "size"
	VariantStyle VariantAxis = "style"
	VariantOther VariantAxis = "other"
)

// Variant is the currently selected option of a multi-variant listing.
type Variant struct {
	Axis  VariantAxis `json:"axis"`
	Value string      `json:"value"`
}

// Rating holds a parsed star rating on the 0-5 scale.
type Rating struct {
	Value float64 `json:"value"`
	Count int     `json:"count,omitempty"`
	Raw   string  `json:"raw,omitempty"`
}

// ExtractedListing is the full record extracted from a listing page.
// Every field except Identifier is independently optional; absence of one
// never invalidates the others.
type ExtractedListing struct {
	Identifier      string   `json:"identifier"`
	Title           string   `json:"title,omitempty"`
	TitleNormalized string   `json:"title_normalized,omitempty"`
	Brand           string   `json:"brand,omitempty"`
	Description     string   `json:"description,omitempty"`
	Price           *Price   `json:"price,omitempty"`
	Images          ImageSet `json:"images"`
	Variant         *Variant `json:"variant,omitempty"`
	Availability    string   `json:"availability,omitempty"`
	Shipping        string   `json:"shipping,omitempty"`
	Rating          *Rating  `json:"rating,omitempty"`
	SourceURL       string   `json:"source_url,omitempty"`
}

// ImageSpec is the decoded form of a CDN image URL. Typed fields stay zero
// for modifier tokens the parser does not recognize; RawModifiers always
// carries the full token list for round-tripping.
type ImageSpec struct {
	ID           string   `json:"id"`
	Width        int      `json:"width,omitempty"`
	Height       int      `json:"height,omitempty"`
	SquareSide   int      `json:"square_side,omitempty"`
	Quality      int      `json:"quality,omitempty"`
	AutoCrop     bool     `json:"auto_crop,omitempty"`
	Format       string   `json:"format,omitempty"`
	RawModifiers []string `json:"raw_modifiers,omitempty"`
}

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Fetcher retrieves raw HTML from a URL. Fetching is a host-side concern;
// nothing below the cmd/server layer performs network I/O.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Renderer converts an extracted listing into a final output format.
type Renderer interface {
	Render(listing *ExtractedListing) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md").
	Extension() string
}
