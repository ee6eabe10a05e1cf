package crawler

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/nahid-013/alkoteka-scraper/internal/models"
)

const (
	productLinkSelector = "a.product-card__link, a.product__link"
	nextPageSelector    = "a.pagination__next, a.next"
)

// productPathPattern clips a broad link scan down to product paths when the
// card selectors match nothing.
var productPathPattern = regexp.MustCompile(`/product/[^/]+`)

// CategoryPage is the outcome of discovery over one category document: the
// product pages it links to and the next pagination step, if any. An empty
// NextPage terminates the branch.
type CategoryPage struct {
	Targets  []models.CrawlTarget
	NextPage string
}

// ParseCategoryPage enumerates product links from one category document and
// resolves the explicit next-page link. Primary card selectors are tried
// first; when they yield nothing every anchor is scanned and clipped by the
// product path pattern. All URLs come back absolute, each target carrying
// the originating seed.
func ParseCategoryPage(html, pageURL, seedURL string) (*CategoryPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		base = nil
	}

	var hrefs []string
	doc.Find(productLinkSelector).Each(func(_ int, a *goquery.Selection) {
		if href := strings.TrimSpace(a.AttrOr("href", "")); href != "" {
			hrefs = append(hrefs, href)
		}
	})
	if len(hrefs) == 0 {
		doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
			if m := productPathPattern.FindString(a.AttrOr("href", "")); m != "" {
				hrefs = append(hrefs, m)
			}
		})
	}

	page := &CategoryPage{
		Targets: make([]models.CrawlTarget, 0, len(hrefs)),
	}
	for _, href := range hrefs {
		page.Targets = append(page.Targets, models.CrawlTarget{
			URL:     resolveURL(base, href),
			SeedURL: seedURL,
		})
	}

	if next, ok := doc.Find(nextPageSelector).First().Attr("href"); ok && strings.TrimSpace(next) != "" {
		page.NextPage = resolveURL(base, next)
	}

	return page, nil
}

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
