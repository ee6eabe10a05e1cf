package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nahid-013/alkoteka-scraper/internal/models"
)

func TestResolvePrice(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		original string
		expected models.PriceData
	}{
		{
			name:     "Half price discount",
			current:  "1000₽",
			original: "2000₽",
			expected: models.PriceData{Current: 1000, Original: 2000, SaleTag: "Скидка 50%"},
		},
		{
			name:     "No original price falls back to current",
			current:  "750 ₽",
			original: "",
			expected: models.PriceData{Current: 750, Original: 750},
		},
		{
			name:     "Only original price resolves both",
			current:  "",
			original: "1 200 ₽",
			expected: models.PriceData{Current: 1200, Original: 1200},
		},
		{
			name:     "Both unresolved yields zeros",
			current:  "",
			original: "",
			expected: models.PriceData{},
		},
		{
			name:     "Garbage current falls back to original",
			current:  "цена",
			original: "500₽",
			expected: models.PriceData{Current: 500, Original: 500},
		},
		{
			name:     "Rounded discount percentage",
			current:  "666₽",
			original: "1000₽",
			expected: models.PriceData{Current: 666, Original: 1000, SaleTag: "Скидка 33%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePrice(tt.current, tt.original)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolvePriceInvariants(t *testing.T) {
	pairs := [][2]string{
		{"100₽", "200₽"},
		{"200₽", "100₽"},
		{"", "300₽"},
		{"300₽", ""},
		{"abc", "def"},
	}

	for _, pair := range pairs {
		got := ResolvePrice(pair[0], pair[1])
		assert.Equal(t, got.SaleTag != "", got.Original > got.Current,
			"sale tag set iff original > current, pair %v", pair)
		if _, ok := ParseLocalizedFloat(pair[1]); !ok {
			assert.Equal(t, got.Current, got.Original,
				"unresolved original falls back to current, pair %v", pair)
		}
	}
}
