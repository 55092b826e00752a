// Package sources loads the list of feed URLs the digest reads from.
package sources

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load reads a newline-delimited list of feed URLs from path. Blank lines
// and lines starting with '#' are skipped. Order is preserved and
// duplicate URLs are kept; the fetcher deduplicates at the item level.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sources file: %w", err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}

	return urls, nil
}
