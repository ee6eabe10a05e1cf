package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		skuText  string
		pageURL  string
		expected string
	}{
		{
			name:     "SKU digits win over URL",
			skuText:  "Артикул: 123456",
			pageURL:  "https://alkoteka.com/product/vodka-789",
			expected: "123456",
		},
		{
			name:     "URL digits when no SKU element",
			skuText:  "",
			pageURL:  "https://alkoteka.com/product/vodka-789",
			expected: "789",
		},
		{
			name:     "All URL digit runs are concatenated",
			skuText:  "",
			pageURL:  "https://alkoteka.com/catalog/vino-1/product-42",
			expected: "142",
		},
		{
			name:     "URL itself as last resort",
			skuText:  "",
			pageURL:  "https://site/x/y",
			expected: "https://site/x/y",
		},
		{
			name:     "SKU without digits falls through",
			skuText:  "нет артикула",
			pageURL:  "https://site/x/y",
			expected: "https://site/x/y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveIdentifier(tt.skuText, tt.pageURL)
			assert.Equal(t, tt.expected, got)
			assert.NotEmpty(t, got)
		})
	}
}
