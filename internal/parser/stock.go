package parser

import (
	"strings"

	"github.com/nahid-013/alkoteka-scraper/internal/models"
)

// inStockPhrases are matched case-sensitively against scanned fragments.
var inStockPhrases = []string{"В наличии", "в наличии"}

// ResolveStock infers availability from a bag of free-text fragments scanned
// out of the document, plus an optional explicit quantity string. The first
// positive phrase match wins; a later "out of stock" fragment does not reset
// it. Availability and count are independent signals.
func ResolveStock(fragments []string, quantityText string) models.Stock {
	var stock models.Stock

	for _, fragment := range fragments {
		for _, phrase := range inStockPhrases {
			if strings.Contains(fragment, phrase) {
				stock.InStock = true
				break
			}
		}
		if stock.InStock {
			break
		}
	}

	stock.Count = parseLeadingInt(quantityText)
	return stock
}
