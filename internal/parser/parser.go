package parser

import (
	"github.com/nahid-013/alkoteka-scraper/internal/models"
)

type Parser interface {
	ParseProductPage(html, pageURL string) (*models.ProductRecord, error)
}
