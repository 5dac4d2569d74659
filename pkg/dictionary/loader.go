/*
Package dictionary feeds word lists into a sensitive.Filter.

The loader is the boundary layer the matching engine stays out of: it reads
word files (one candidate per line, any reasonably common text encoding),
applies the trim/minimum-length hygiene, and keeps a Patricia trie of the
accepted words so callers can inspect what was actually loaded. A failed
file never aborts a multi-file load; the loader logs it and carries on with
whatever it already has.
*/
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/zhouyb126/sensitive-words/pkg/sensitive"
)

// Stats describes what a loader has seen so far.
type Stats struct {
	Accepted int // words stored in the filter
	Skipped  int // blank, too-short or duplicate lines
	Files    int // files read to completion
	Failed   int // files that could not be read
}

// Loader wires word sources into a filter and tracks the accepted words in
// a prefix trie for lookup. The filter itself is single-writer during a
// build; the loader's mutex covers the trie and stats so words can still be
// added at runtime while lookups run.
type Loader struct {
	filter *sensitive.Filter
	trie   *patricia.Trie
	stats  Stats
	mu     sync.RWMutex
}

// NewLoader returns a loader feeding the given filter.
func NewLoader(filter *sensitive.Filter) *Loader {
	return &Loader{
		filter: filter,
		trie:   patricia.NewTrie(),
	}
}

// Filter returns the filter this loader feeds.
func (l *Loader) Filter() *sensitive.Filter {
	return l.filter
}

// AddWord offers one word to the filter. Words the filter rejects (hygiene
// or duplicates) are counted as skipped. Reports whether the word was stored.
func (l *Loader) AddWord(word string) bool {
	trimmed := strings.TrimSpace(word)

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.filter.Insert(trimmed) {
		l.stats.Skipped++
		return false
	}
	l.trie.Insert(patricia.Prefix(trimmed), true)
	l.stats.Accepted++
	return true
}

// LoadReader reads UTF-8 words line by line from r.
func (l *Loader) LoadReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\uFEFF")
			first = false
		}
		l.AddWord(line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading word list: %w", err)
	}
	return nil
}

// LoadFile reads one word file, detecting and converting its encoding to
// UTF-8 first so GB18030 or Big5 dictionaries load transparently.
func (l *Loader) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read word file %s: %w", path, err)
	}

	decoded, charset, err := decodeText(data)
	if err != nil {
		return fmt.Errorf("failed to decode word file %s: %w", path, err)
	}
	if charset != "UTF-8" {
		log.Debugf("Converted %s from %s", path, charset)
	}

	before := l.Stats().Accepted
	if err := l.LoadReader(strings.NewReader(decoded)); err != nil {
		return err
	}

	l.mu.Lock()
	l.stats.Files++
	l.mu.Unlock()

	log.Debugf("Loaded %s: %d words accepted", path, l.Stats().Accepted-before)
	return nil
}

// LoadFiles reads several word files. A file that fails to load is logged
// and skipped rather than aborting the whole load; the error returned is
// non-nil only when every file failed.
func (l *Loader) LoadFiles(paths []string) error {
	failed := 0
	for _, p := range paths {
		if err := l.LoadFile(p); err != nil {
			log.Warnf("Skipping word file: %v", err)
			l.mu.Lock()
			l.stats.Failed++
			l.mu.Unlock()
			failed++
		}
	}
	if failed > 0 && failed == len(paths) {
		return fmt.Errorf("no word files could be loaded (%d failed)", failed)
	}
	if failed > 0 {
		log.Warnf("Partial load: %d of %d word files failed", failed, len(paths))
	}
	return nil
}

// WordsWithPrefix returns up to limit accepted words starting with prefix,
// in trie order. A limit of 0 or less means no limit.
func (l *Loader) WordsWithPrefix(prefix string, limit int) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var words []string
	err := l.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, _ patricia.Item) error {
		if limit > 0 && len(words) >= limit {
			return nil
		}
		words = append(words, string(p))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
	}
	return words
}

// Contains reports whether word was accepted into the dictionary.
func (l *Loader) Contains(word string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.trie.Get(patricia.Prefix(strings.TrimSpace(word))) != nil
}

// Stats returns a snapshot of the loading counters.
func (l *Loader) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.stats
}
