package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/nahid-013/alkoteka-scraper/internal/models"
)

const (
	descriptionSelector = ".product-description, .description, #description"
	specRowSelector     = ".specs tr, .characteristics tr, .product-params tr"
)

// parseSpecs folds the description block and the spec-table rows into one
// metadata map. The joined description goes under the reserved key; each row
// contributes key/value with later rows overwriting earlier duplicates. Rows
// missing either cell are skipped.
func parseSpecs(doc *goquery.Document) map[string]string {
	metadata := make(map[string]string)

	var fragments []string
	doc.Find(descriptionSelector).Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			fragments = append(fragments, text)
		}
	})
	if description := strings.Join(fragments, " "); description != "" {
		metadata[models.DescriptionKey] = description
	}

	doc.Find(specRowSelector).Each(func(_ int, row *goquery.Selection) {
		key, value, ok := specRowCells(row)
		if ok {
			metadata[key] = value
		}
	})

	return metadata
}

// specRowCells extracts the key and value cells of a table-like row. Two
// structurally equivalent layouts are supported: a <th> key with a <td>
// value, or td.param-name / td.param-value pairs.
func specRowCells(row *goquery.Selection) (string, string, bool) {
	var key, value string
	if th := row.Find("th").First(); th.Length() > 0 {
		key = th.Text()
		value = row.Find("td").First().Text()
	} else {
		key = row.Find("td.param-name").First().Text()
		value = row.Find("td.param-value").First().Text()
	}

	key = strings.TrimSuffix(strings.TrimSpace(key), ":")
	value = strings.TrimSpace(value)
	if key == "" || value == "" {
		return "", "", false
	}
	return key, value, true
}
