package crawler

import (
	"bufio"
	"os"
	"strings"
)

// defaultSeeds are the catalog sections crawled when no seeds file is
// supplied.
var defaultSeeds = []string{
	"https://alkoteka.com/catalog/slaboalkogolnye-napitki-2",
	"https://alkoteka.com/catalog/vino-1",
	"https://alkoteka.com/catalog/konjak-3",
}

// LoadSeeds reads start URLs from path, one per line. Blank lines and
// #-prefixed comments are skipped. A missing, unreadable or empty file
// falls back to the built-in default list.
func LoadSeeds(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return defaultSeeds
	}
	defer f.Close()

	var seeds []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		seeds = append(seeds, line)
	}

	if len(seeds) == 0 {
		return defaultSeeds
	}
	return seeds
}
