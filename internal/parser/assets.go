package parser

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/nahid-013/alkoteka-scraper/internal/models"
)

var mainImageSelectors = []string{".product-gallery img", ".main-photo img"}

const (
	gallerySelector = ".product-gallery img"
	videoSelector   = "video source[src], .video-wrapper iframe[src]"
)

// collectAssets resolves every media reference on the page to an absolute
// URL. Gallery images prefer the deferred-load data-src attribute over the
// eager src. Empty references are dropped. view360 stays empty: the site
// exposes no source for it.
func collectAssets(doc *goquery.Document, base *url.URL) models.Assets {
	assets := models.Assets{
		SetImages: make([]string, 0),
		View360:   make([]string, 0),
		Video:     make([]string, 0),
	}

	for _, selector := range mainImageSelectors {
		if src, ok := doc.Find(selector).First().Attr("src"); ok && strings.TrimSpace(src) != "" {
			assets.MainImage = resolveURL(base, src)
			break
		}
	}

	doc.Find(gallerySelector).Each(func(_ int, img *goquery.Selection) {
		ref := strings.TrimSpace(img.AttrOr("data-src", ""))
		if ref == "" {
			ref = strings.TrimSpace(img.AttrOr("src", ""))
		}
		if ref != "" {
			assets.SetImages = append(assets.SetImages, resolveURL(base, ref))
		}
	})

	doc.Find(videoSelector).Each(func(_ int, el *goquery.Selection) {
		if ref := strings.TrimSpace(el.AttrOr("src", "")); ref != "" {
			assets.Video = append(assets.Video, resolveURL(base, ref))
		}
	})

	return assets
}

// resolveURL resolves ref against base. Unparsable references are returned
// verbatim rather than dropped.
func resolveURL(base *url.URL, ref string) string {
	u, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return ref
	}
	if base == nil {
		return u.String()
	}
	return base.ResolveReference(u).String()
}
