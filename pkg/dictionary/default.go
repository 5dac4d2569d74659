package dictionary

import (
	_ "embed"
	"strings"

	"github.com/zhouyb126/sensitive-words/pkg/sensitive"
)

// defaultWords is the packaged sample word list. Real deployments replace it
// with their own lists via the dict paths config; it exists so the tool works
// out of the box.
//
//go:embed data/default.txt
var defaultWords string

// LoadDefault feeds the packaged word list into the loader.
func (l *Loader) LoadDefault() error {
	return l.LoadReader(strings.NewReader(defaultWords))
}

// Default builds a loader over a fresh filter seeded with the packaged word
// list. Callers needing a shared instance hold the returned loader
// explicitly; there is no process-wide singleton.
func Default() (*Loader, error) {
	l := NewLoader(sensitive.New())
	if err := l.LoadDefault(); err != nil {
		return nil, err
	}
	return l, nil
}
