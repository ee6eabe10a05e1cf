package crawler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nahid-013/alkoteka-scraper/internal/models"
)

func TestParseCategoryPagePrimarySelectors(t *testing.T) {
	html := `<html><body>
		<a class="product-card__link" href="/product/vodka-1">Vodka</a>
		<a class="product__link" href="/product/wine-2">Wine</a>
		<a href="/about">About</a>
		<a class="pagination__next" href="/catalog/vino-1?page=2">Next</a>
	</body></html>`

	page, err := ParseCategoryPage(html, "https://alkoteka.com/catalog/vino-1", "https://alkoteka.com/catalog/vino-1")
	require.NoError(t, err)

	assert.Equal(t, []models.CrawlTarget{
		{URL: "https://alkoteka.com/product/vodka-1", SeedURL: "https://alkoteka.com/catalog/vino-1"},
		{URL: "https://alkoteka.com/product/wine-2", SeedURL: "https://alkoteka.com/catalog/vino-1"},
	}, page.Targets)
	assert.Equal(t, "https://alkoteka.com/catalog/vino-1?page=2", page.NextPage)
}

func TestParseCategoryPageBroadFallback(t *testing.T) {
	html := `<html><body>
		<a href="/shop/product/cognac-3">Cognac</a>
		<a href="/catalog/vino-1">Category</a>
		<a href="/">Home</a>
	</body></html>`

	page, err := ParseCategoryPage(html, "https://alkoteka.com/catalog/konjak-3", "seed")
	require.NoError(t, err)

	// The broad scan clips each href down to the product path.
	require.Len(t, page.Targets, 1)
	assert.Equal(t, "https://alkoteka.com/product/cognac-3", page.Targets[0].URL)
	assert.Equal(t, "seed", page.Targets[0].SeedURL)
}

func TestParseCategoryPageNoNextPageTerminates(t *testing.T) {
	html := `<html><body>
		<a class="product-card__link" href="/product/last-9">Last</a>
		<a href="/catalog/vino-1?PAGEN_1=2">2</a>
	</body></html>`

	page, err := ParseCategoryPage(html, "https://alkoteka.com/catalog/vino-1?page=5", "seed")
	require.NoError(t, err)

	// Page-number links are not a pagination signal, only the explicit
	// next-page anchor is.
	assert.Empty(t, page.NextPage)
	assert.Len(t, page.Targets, 1)
}

func TestParseCategoryPageAlternateNextSelector(t *testing.T) {
	html := `<html><body><a class="next" href="?page=2">Вперёд</a></body></html>`

	page, err := ParseCategoryPage(html, "https://alkoteka.com/catalog/vino-1", "seed")
	require.NoError(t, err)
	assert.Equal(t, "https://alkoteka.com/catalog/vino-1?page=2", page.NextPage)
	assert.Empty(t, page.Targets)
}

func TestParseCategoryPageEmptyDocument(t *testing.T) {
	page, err := ParseCategoryPage("<html><body></body></html>", "https://alkoteka.com/catalog/vino-1", "seed")
	require.NoError(t, err)
	assert.Empty(t, page.Targets)
	assert.Empty(t, page.NextPage)
}
