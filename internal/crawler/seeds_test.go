package crawler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeedsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "start_urls.txt")
	content := `# catalog sections
https://alkoteka.com/catalog/vino-1

  https://alkoteka.com/catalog/viski-2
# trailing comment
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	seeds := LoadSeeds(path)
	assert.Equal(t, []string{
		"https://alkoteka.com/catalog/vino-1",
		"https://alkoteka.com/catalog/viski-2",
	}, seeds)
}

func TestLoadSeedsMissingFileFallsBack(t *testing.T) {
	seeds := LoadSeeds(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Equal(t, defaultSeeds, seeds)
}

func TestLoadSeedsEmptyFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "start_urls.txt")
	require.NoError(t, os.WriteFile(path, []byte("# only comments\n\n"), 0644))

	seeds := LoadSeeds(path)
	assert.Equal(t, defaultSeeds, seeds)
}
