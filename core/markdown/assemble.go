// Package markdown assembles inline markdown fragments for extracted
// listings: links, images, linked images, and a two-cell table row. Only
// inline syntax is emitted; block-level markdown is the renderers' job.
package markdown

import (
	"fmt"

	"github.com/zakkhoyt/linkmark/core"
)

// CombinedFormat selects how Combined lays out the image and text link.
type CombinedFormat string

const (
	// FormatInline puts the linked image and the text link on one line.
	FormatInline CombinedFormat = "inline"
	// FormatBlock puts the linked image above the text link.
	FormatBlock CombinedFormat = "block"
	// FormatTable wraps both in a two-cell markdown table row.
	FormatTable CombinedFormat = "table"
)

// Link assembles "[text](url)". An empty url is refused with
// core.ErrMissingTarget rather than silently emitting a broken link;
// callers decide whether to fall back to bare text.
func Link(text, url string) (string, error) {
	if url == "" {
		return "", core.ErrMissingTarget
	}
	return fmt.Sprintf("[%s](%s)", text, url), nil
}

// Image assembles "![alt](src)".
func Image(alt, src string) (string, error) {
	if src == "" {
		return "", core.ErrMissingTarget
	}
	return fmt.Sprintf("![%s](%s)", alt, src), nil
}

// LinkedImage assembles "[![alt](imgURL)](url)", an image that links to
// the listing.
func LinkedImage(alt, imgURL, url string) (string, error) {
	if url == "" || imgURL == "" {
		return "", core.ErrMissingTarget
	}
	return fmt.Sprintf("[![%s](%s)](%s)", alt, imgURL, url), nil
}

// Combined assembles a text link plus an optional image in the requested
// layout. With no image it degrades to the bare text link.
func Combined(title, url, imgURL string, format CombinedFormat) (string, error) {
	link, err := Link(title, url)
	if err != nil {
		return "", err
	}
	if imgURL == "" {
		return link, nil
	}

	img, err := LinkedImage(title, imgURL, url)
	if err != nil {
		return "", err
	}

	switch format {
	case FormatBlock:
		return img + "\n\n" + link, nil
	case FormatTable:
		return fmt.Sprintf("| %s | %s |", img, link), nil
	default:
		return img + " " + link, nil
	}
}
