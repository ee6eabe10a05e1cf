package parser

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/nahid-013/alkoteka-scraper/internal/models"
)

// Selector cascades, in priority order. Each list is tried left to right and
// the first selector yielding a non-empty result wins.
var (
	titleSelectors  = []string{"h1", ".product-title"}
	volumeSelectors = []string{".product-volume", ".volume", ".sku-property"}
	skuSelectors    = []string{".sku", ".product-sku", ".product__sku"}
	brandSelectors  = []string{".brand a", ".product-brand", ".brand"}

	currentPriceSelectors  = []string{".price__current", ".product-price__current", ".js-price-current"}
	originalPriceSelectors = []string{".price__old", ".product-price__old", ".js-price-original"}
	quantitySelectors      = []string{".stock-quantity", ".product-stock"}
)

// Multi-value selectors collect every match in document order.
const (
	badgeSelector      = ".badge, .product-label, .tag"
	breadcrumbSelector = ".breadcrumbs a, .breadcrumb__item a"

	colorOptionSelector  = ".color-variants .option, .property.color .option"
	volumeOptionSelector = ".volume-variants .option, .property.volume .option"
)

// AlkotekaParser turns fetched alkoteka.com product pages into normalized
// product records. It is stateless across documents and safe for concurrent
// use.
type AlkotekaParser struct {
	stockPattern *regexp.Regexp
}

func NewAlkotekaParser() *AlkotekaParser {
	return &AlkotekaParser{
		stockPattern: regexp.MustCompile(`В наличии|в наличии|Нет в наличии|Осталось \d+`),
	}
}

// ParseProductPage assembles one ProductRecord from one product document.
// Every field resolver is total: missing or malformed markup degrades to the
// field's zero value, never to an error. The only error is unreadable HTML.
func (p *AlkotekaParser) ParseProductPage(html, pageURL string) (*models.ProductRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		base = nil
	}

	record := models.NewProductRecord(pageURL)
	record.RPC = ResolveIdentifier(firstText(doc, skuSelectors), pageURL)
	record.Title = p.extractTitle(doc)
	record.MarketingTags = allTexts(doc, badgeSelector)
	record.Brand = firstText(doc, brandSelectors)
	record.Section = allTexts(doc, breadcrumbSelector)
	record.PriceData = ResolvePrice(
		firstText(doc, currentPriceSelectors),
		firstText(doc, originalPriceSelectors),
	)
	record.Stock = ResolveStock(p.stockFragments(doc), firstText(doc, quantitySelectors))
	record.Assets = collectAssets(doc, base)
	record.Metadata = parseSpecs(doc)
	record.Variants = CountVariants(
		doc.Find(colorOptionSelector).Length(),
		doc.Find(volumeOptionSelector).Length(),
	)

	return record, nil
}

// extractTitle resolves the product title and appends the volume as a suffix
// when one was found and is not already part of the title text.
func (p *AlkotekaParser) extractTitle(doc *goquery.Document) string {
	title := firstText(doc, titleSelectors)
	volume := firstText(doc, volumeSelectors)
	if title != "" && volume != "" && !strings.Contains(title, volume) {
		title = title + ", " + volume
	}
	return title
}

// stockFragments scans the whole document text for availability phrases.
func (p *AlkotekaParser) stockFragments(doc *goquery.Document) []string {
	return p.stockPattern.FindAllString(doc.Text(), -1)
}

// firstText tries each selector in order and returns the first non-empty
// trimmed text.
func firstText(doc *goquery.Document, selectors []string) string {
	for _, selector := range selectors {
		if text := strings.TrimSpace(doc.Find(selector).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

// allTexts collects the trimmed non-empty texts of every match, in document
// order, duplicates kept.
func allTexts(doc *goquery.Document, selector string) []string {
	texts := make([]string, 0)
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			texts = append(texts, text)
		}
	})
	return texts
}
