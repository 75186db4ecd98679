// Package extract pulls listing fields out of an already-materialized
// product page. Each field is resolved by an ordered chain of strategies:
// structured data, page metadata, site markup, then (for the identifier
// only) a regex over the raw markup. The first strategy that yields a
// plausible value wins; strategy-level failures are silent, and only a
// missing identifier is fatal.
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/zakkhoyt/linkmark/core"
	"github.com/zakkhoyt/linkmark/core/normalize"
)

// Source is the single input shape the extractor accepts: either an
// already-parsed document or raw markup text, normalized once at the
// boundary via newDocument.
type Source struct {
	Document *goquery.Document
	HTML     string
}

// FromHTML wraps raw markup as a Source.
func FromHTML(html string) Source {
	return Source{HTML: html}
}

// FromDocument wraps an already-parsed document as a Source.
func FromDocument(doc *goquery.Document) Source {
	return Source{Document: doc}
}

// Options configure one extraction call. Verbosity is carried per call so
// the extractor holds no process-wide state.
type Options struct {
	// Verbose emits strategy-level trace lines through Logf.
	Verbose bool
	// Logf receives trace output when Verbose is set. Defaults to a no-op.
	Logf func(format string, args ...any)
}

// document bundles the parsed tree, the raw markup (for the last-resort
// regex strategy), and the structured-data records parsed once up front.
type document struct {
	doc      *goquery.Document
	raw      string
	products []ldProduct
	url      string
}

// strategy is one step of a field's fallback chain.
type strategy struct {
	name string
	fn   func(d *document) string
}

// Extractor resolves listing fields from a document using fixed rule
// tables. It is stateless and safe for concurrent use.
type Extractor struct {
	opts Options
}

// New creates an Extractor.
func New(opts Options) *Extractor {
	if opts.Logf == nil {
		opts.Logf = func(string, ...any) {}
	}
	return &Extractor{opts: opts}
}

// Listing extracts the full listing record. pageURL is optional; when
// present it feeds the identifier chain and is recorded on the result.
// Every field except the identifier is best-effort: a chain that produces
// nothing leaves the field absent. A missing identifier fails the whole
// extraction with core.ErrNoIdentifier.
func (e *Extractor) Listing(src Source, pageURL string) (*core.ExtractedListing, error) {
	d, err := newDocument(src, pageURL)
	if err != nil {
		return nil, err
	}

	identifier := e.runChain(d, "identifier", identifierStrategies)
	if identifier == "" {
		return nil, core.ErrNoIdentifier
	}

	title := e.bestTitle(d)
	listing := &core.ExtractedListing{
		Identifier:      identifier,
		Title:           title,
		TitleNormalized: normalize.Title(title),
		Brand:           e.runChain(d, "brand", brandStrategies),
		Description:     e.runChain(d, "description", descriptionStrategies),
		Price:           extractPrice(d),
		Images:          extractImages(d),
		Variant:         extractVariant(d),
		Availability:    e.runChain(d, "availability", availabilityStrategies),
		Shipping:        e.runChain(d, "shipping", shippingStrategies),
		Rating:          extractRating(d),
		SourceURL:       pageURL,
	}
	return listing, nil
}

// Identifier runs only the identifier chain. Useful when the caller needs
// nothing but a canonical link.
func (e *Extractor) Identifier(src Source, pageURL string) (string, error) {
	d, err := newDocument(src, pageURL)
	if err != nil {
		return "", err
	}
	id := e.runChain(d, "identifier", identifierStrategies)
	if id == "" {
		return "", core.ErrNoIdentifier
	}
	return id, nil
}

// Title runs only the title selection (all candidates, shortest normalized
// non-empty one wins).
func (e *Extractor) Title(src Source, pageURL string) (string, error) {
	d, err := newDocument(src, pageURL)
	if err != nil {
		return "", err
	}
	return normalize.Title(e.bestTitle(d)), nil
}

// runChain walks a strategy chain and returns the first non-empty value.
func (e *Extractor) runChain(d *document, field string, chain []strategy) string {
	for _, s := range chain {
		value := strings.TrimSpace(s.fn(d))
		if value == "" {
			continue
		}
		if e.opts.Verbose {
			e.opts.Logf("extract: %s via %s", field, s.name)
		}
		return value
	}
	return ""
}

// bestTitle collects candidates from every title strategy (not just the
// first success), normalizes each, and returns the raw candidate whose
// normalized form is the shortest non-empty one. Longer candidates tend to
// retain site boilerplate; the shortest surviving candidate is most often
// the clean product name.
func (e *Extractor) bestTitle(d *document) string {
	var best, bestNorm string
	for _, s := range titleStrategies {
		candidate := strings.TrimSpace(s.fn(d))
		if candidate == "" {
			continue
		}
		norm := normalize.Title(candidate)
		if norm == "" {
			continue
		}
		if bestNorm == "" || len(norm) < len(bestNorm) {
			best, bestNorm = candidate, norm
		}
	}
	return best
}

// newDocument normalizes a Source into the internal document form and
// parses structured data once.
func newDocument(src Source, pageURL string) (*document, error) {
	doc := src.Document
	raw := src.HTML
	if doc == nil {
		parsed, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
		if err != nil {
			return nil, err
		}
		doc = parsed
	} else if raw == "" {
		// Keep a raw rendition around for the regex last resort.
		if html, err := doc.Html(); err == nil {
			raw = html
		}
	}

	return &document{
		doc:      doc,
		raw:      raw,
		products: parseStructuredData(doc),
		url:      pageURL,
	}, nil
}

// metaContent reads the content attribute of the first matching meta tag.
func metaContent(doc *goquery.Document, names ...string) string {
	for _, name := range names {
		sel := doc.Find(`meta[property="` + name + `"], meta[name="` + name + `"]`).First()
		if content, ok := sel.Attr("content"); ok && strings.TrimSpace(content) != "" {
			return strings.TrimSpace(content)
		}
	}
	return ""
}

// selectorText returns the text of the first selector that yields a
// non-empty result.
func selectorText(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		text := strings.TrimSpace(doc.Find(sel).First().Text())
		if text != "" {
			return text
		}
	}
	return ""
}
