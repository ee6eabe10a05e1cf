package models

import (
	"time"
)

// ProductRecord is the normalized output of one product page extraction.
// Built once per document, never mutated afterwards.
type ProductRecord struct {
	Timestamp     int64             `json:"timestamp"`
	RPC           string            `json:"RPC"`
	URL           string            `json:"url"`
	Title         string            `json:"title"`
	MarketingTags []string          `json:"marketing_tags"`
	Brand         string            `json:"brand"`
	Section       []string          `json:"section"`
	PriceData     PriceData         `json:"price_data"`
	Stock         Stock             `json:"stock"`
	Assets        Assets            `json:"assets"`
	Metadata      map[string]string `json:"metadata"`
	Variants      int               `json:"variants"`
}

// DescriptionKey is the reserved metadata key holding the free-text description.
const DescriptionKey = "__description"

type PriceData struct {
	Current  float64 `json:"current"`
	Original float64 `json:"original"`
	SaleTag  string  `json:"sale_tag"`
}

type Stock struct {
	InStock bool `json:"in_stock"`
	Count   int  `json:"count"`
}

type Assets struct {
	MainImage string   `json:"main_image"`
	SetImages []string `json:"set_images"`
	View360   []string `json:"view360"`
	Video     []string `json:"video"`
}

// CrawlTarget is a discovered product page URL plus the seed it was reached from.
type CrawlTarget struct {
	URL     string `json:"url"`
	SeedURL string `json:"seed_url"`
}

func NewProductRecord(url string) *ProductRecord {
	return &ProductRecord{
		Timestamp:     time.Now().Unix(),
		URL:           url,
		MarketingTags: make([]string, 0),
		Section:       make([]string, 0),
		Metadata:      make(map[string]string),
		Assets: Assets{
			SetImages: make([]string, 0),
			View360:   make([]string, 0),
			Video:     make([]string, 0),
		},
	}
}
