package parser

import (
	"fmt"
	"math"

	"github.com/nahid-013/alkoteka-scraper/internal/models"
)

// ResolvePrice derives current/original price and a discount label from the
// raw price texts. Either text may be empty. The current price falls back to
// the original price text, the original falls back to the resolved current.
// The result always satisfies original >= current when both texts resolve,
// and the sale tag is set only when there is an actual discount.
func ResolvePrice(currentText, originalText string) models.PriceData {
	current, ok := ParseLocalizedFloat(currentText)
	if !ok {
		current, ok = ParseLocalizedFloat(originalText)
	}
	if !ok {
		current = 0
	}

	original, ok := ParseLocalizedFloat(originalText)
	if !ok {
		original = current
	}

	var saleTag string
	if original > 0 && original > current {
		discount := int(math.Round((original - current) / original * 100))
		saleTag = fmt.Sprintf("Скидка %d%%", discount)
	}

	return models.PriceData{
		Current:  current,
		Original: original,
		SaleTag:  saleTag,
	}
}
