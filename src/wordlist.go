package latinleven

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

// LoadWordlist reads a headword list file: UTF-8, one headword per line,
// order preserved, duplicates ignored. Each line is normalized
// (macron-stripped, trimmed) before the dedupe check, so "amor" and
// "amor " collapse to the same entry, keeping only the first-seen spelling.
func LoadWordlist(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open wordlist %s", path)
	}
	defer f.Close()
	return readWordlist(f)
}

func readWordlist(r io.Reader) ([]string, error) {
	seen := make(map[string]bool)
	var words []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		word := Normalize(scanner.Text())
		if word == "" {
			continue
		}
		if seen[word] {
			continue
		}
		seen[word] = true
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scan wordlist")
	}
	return words, nil
}
