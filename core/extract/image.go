// Image extraction.
package extract

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/zakkhoyt/linkmark/core"
	"github.com/zakkhoyt/linkmark/core/compose"
)

var primaryImageSelectors = []string{
	"#landingImage",
	"#imgBlkFront",
	"#main-image",
	"#ebooksImgBlkFront",
}

// extractImages resolves the primary image plus any alternates. For the
// primary image a higher-resolution source attribute (data-old-hires) beats
// the rendered src, and the data-a-dynamic-image URL→[w,h] map beats both.
func extractImages(d *document) core.ImageSet {
	var set core.ImageSet

	if url := primaryImageURL(d); url != "" {
		set.Primary = &core.Image{URL: url, ID: compose.ImageIDFromURL(url)}
	}

	d.doc.Find("#altImages img, .imageThumbnail img").Each(func(_ int, s *goquery.Selection) {
		src, ok := s.Attr("src")
		if !ok || src == "" {
			return
		}
		if set.Primary != nil && src == set.Primary.URL {
			return
		}
		set.Additional = append(set.Additional, core.Image{
			URL: src,
			ID:  compose.ImageIDFromURL(src),
		})
	})

	return set
}

func primaryImageURL(d *document) string {
	for _, sel := range primaryImageSelectors {
		node := d.doc.Find(sel).First()
		if node.Length() == 0 {
			continue
		}
		if dynamic, ok := node.Attr("data-a-dynamic-image"); ok {
			if url := largestDynamicImage(dynamic); url != "" {
				return url
			}
		}
		if hires, ok := node.Attr("data-old-hires"); ok && strings.TrimSpace(hires) != "" {
			return strings.TrimSpace(hires)
		}
		if src, ok := node.Attr("src"); ok && strings.TrimSpace(src) != "" {
			return strings.TrimSpace(src)
		}
	}

	// Fall back to the social-preview image.
	if url := metaContent(d.doc, "og:image", "twitter:image"); url != "" {
		return url
	}
	for _, p := range d.products {
		if url := ldFirstString(p.Image); url != "" {
			return url
		}
	}
	return ""
}

// largestDynamicImage parses the data-a-dynamic-image attribute, a JSON
// map of URL → [width, height], and picks the entry with the largest
// declared area. Ties break on URL string order so the choice is
// deterministic.
func largestDynamicImage(attr string) string {
	var entries map[string][2]int
	if err := json.Unmarshal([]byte(attr), &entries); err != nil || len(entries) == 0 {
		return ""
	}

	urls := make([]string, 0, len(entries))
	for url := range entries {
		urls = append(urls, url)
	}
	sort.Slice(urls, func(i, j int) bool {
		ai := entries[urls[i]][0] * entries[urls[i]][1]
		aj := entries[urls[j]][0] * entries[urls[j]][1]
		if ai != aj {
			return ai > aj
		}
		return urls[i] < urls[j]
	})
	return urls[0]
}
