package redact

import (
	"fmt"
	"os"
	"strings"
)

// LoadWordList reads a line-oriented word file, one word per line. Blank
// lines are skipped; duplicates and ordering are irrelevant to matching,
// so no further normalization happens here.
func LoadWordList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	var words []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	return words, nil
}
