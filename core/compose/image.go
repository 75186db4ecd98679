// CDN image URL grammar: compose and parse.
//
// Image URLs have the shape
//
//	https://{host}/images/I/{id}._{MOD1}_{MOD2}..._.{format}
//
// where each modifier token is a two-letter prefix plus a number (SX width,
// SY height, SL square side, QL quality) or the bare AC auto-crop flag. The
// relative token order is fixed; the CDN rejects other orderings.
package compose

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/zakkhoyt/linkmark/core"
)

const (
	// DefaultImageHost is the marketplace image CDN.
	DefaultImageHost = "m.media-amazon.com"

	defaultQuality    = 95
	defaultFormat     = "jpg"
	defaultSquareSide = 500
)

// ImageOptions control the modifier tokens of a composed image URL.
// Width/Height take precedence over SquareSide; when neither is given a
// default square side of 500 is applied.
type ImageOptions struct {
	Width      int
	Height     int
	SquareSide int
	Quality    int    // 1-100; omitted from the URL when 95 (the default)
	AutoCrop   bool
	Format     string // default "jpg"
	Host       string // default DefaultImageHost
}

// ImageURL composes a CDN URL for the given image id.
// Token order is fixed: SX, SY, SL (only when no width/height), QL (only
// when non-default), AC (only when set).
func ImageURL(imageID string, opts ImageOptions) string {
	host := opts.Host
	if host == "" {
		host = DefaultImageHost
	}
	format := opts.Format
	if format == "" {
		format = defaultFormat
	}

	var mods []string
	if opts.Width > 0 {
		mods = append(mods, fmt.Sprintf("SX%d", opts.Width))
	}
	if opts.Height > 0 {
		mods = append(mods, fmt.Sprintf("SY%d", opts.Height))
	}
	if opts.Width <= 0 && opts.Height <= 0 {
		side := opts.SquareSide
		if side <= 0 {
			side = defaultSquareSide
		}
		mods = append(mods, fmt.Sprintf("SL%d", side))
	}
	if opts.Quality > 0 && opts.Quality != defaultQuality {
		mods = append(mods, fmt.Sprintf("QL%d", opts.Quality))
	}
	if opts.AutoCrop {
		mods = append(mods, "AC")
	}

	return fmt.Sprintf("https://%s/images/I/%s._%s_.%s",
		host, imageID, strings.Join(mods, "_"), format)
}

// imagePathPattern extracts the id, optional modifier group, and format
// from a CDN image path. Plain URLs without a modifier group also match.
var imagePathPattern = regexp.MustCompile(`/images/I/([^./]+)(?:\._([^.]*)_)?\.([A-Za-z0-9]+)(?:[?#]|$)`)

// ParseImageURL decodes a CDN image URL into an ImageSpec, the inverse of
// ImageURL. Unrecognized modifier tokens are kept in RawModifiers without
// being decoded, so a round trip preserves them for debugging.
// Returns nil when the URL does not match the CDN path grammar.
func ParseImageURL(rawURL string) *core.ImageSpec {
	m := imagePathPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return nil
	}

	spec := &core.ImageSpec{
		ID:     m[1],
		Format: m[3],
	}

	if m[2] == "" {
		return spec
	}
	for _, token := range strings.Split(m[2], "_") {
		if token == "" {
			continue
		}
		spec.RawModifiers = append(spec.RawModifiers, token)
		switch {
		case token == "AC":
			spec.AutoCrop = true
		case strings.HasPrefix(token, "SX"):
			spec.Width = atoiOrZero(token[2:])
		case strings.HasPrefix(token, "SY"):
			spec.Height = atoiOrZero(token[2:])
		case strings.HasPrefix(token, "SL"):
			spec.SquareSide = atoiOrZero(token[2:])
		case strings.HasPrefix(token, "QL"):
			spec.Quality = atoiOrZero(token[2:])
		}
	}
	return spec
}

// ImageIDFromURL extracts just the image id from a CDN URL, or "" when the
// URL is not a CDN image path.
func ImageIDFromURL(rawURL string) string {
	if spec := ParseImageURL(rawURL); spec != nil {
		return spec.ID
	}
	return ""
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
