// Package wordlist loads the vocabulary a puzzle is filled from: a plain
// text file with one word per line. Words are uppercased on the way in, so
// the solver can treat them as opaque comparable strings.
package wordlist

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/crossfill/crossfill/cache"
	"github.com/crossfill/crossfill/config"
)

// A Set is a deduplicated vocabulary. Immutable once parsed.
type Set struct {
	words       map[string]struct{}
	fingerprint uint64
}

// Parse reads a newline-delimited word list. Blank lines are skipped and
// words are uppercased. The xxhash fingerprint of the raw content is kept so
// that logs can identify which list produced a fill.
func Parse(r io.Reader) (*Set, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	s := &Set{
		words:       make(map[string]struct{}),
		fingerprint: xxhash.Sum64(content),
	}
	// Casers are stateful, so make a fresh one per parse.
	upper := cases.Upper(language.Und)
	for _, line := range strings.Split(string(content), "\n") {
		w := strings.TrimSpace(line)
		if w == "" {
			continue
		}
		s.words[upper.String(w)] = struct{}{}
	}
	return s, nil
}

// Load reads and parses the word list at path, through the global object
// cache.
func Load(cfg *config.Config, path string) (*Set, error) {
	obj, err := cache.Load(cfg, "words:"+path, func(cfg *config.Config, key string) (any, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		s, err := Parse(f)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", path).Int("words", s.Len()).
			Str("fingerprint", fmt.Sprintf("%x", s.Fingerprint())).
			Msg("loaded word list")
		return s, nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading word list %s: %w", path, err)
	}
	return obj.(*Set), nil
}

// Words returns the vocabulary sorted lexicographically, so that callers
// iterating it are deterministic.
func (s *Set) Words() []string {
	words := make([]string, 0, len(s.words))
	for w := range s.words {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Has reports whether w (already uppercased) is in the vocabulary.
func (s *Set) Has(w string) bool {
	_, ok := s.words[w]
	return ok
}

func (s *Set) Len() int {
	return len(s.words)
}

// Fingerprint is the xxhash of the raw file content the set was parsed from.
func (s *Set) Fingerprint() uint64 {
	return s.fingerprint
}
