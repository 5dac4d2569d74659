package sensitive

import "sort"

// bucket groups every dictionary word that begins with one exact two-rune
// prefix, identified by its mix. Words are kept sorted and unique so the
// longest candidate for a scan position falls out of a single floor query.
//
// Buckets whose table slot collides but whose mix differs are linked through
// next; chain order is insertion order and carries no meaning beyond
// traversal.
type bucket struct {
	mix   uint64
	words []*textView
	next  *bucket
}

func newBucket(mix uint64, w *textView) *bucket {
	return &bucket{mix: mix, words: []*textView{w}}
}

// add inserts w keeping the slice sorted. Duplicates are dropped; the return
// value reports whether the word was actually new.
func (b *bucket) add(w *textView) bool {
	i := sort.Search(len(b.words), func(i int) bool {
		return b.words[i].compare(w) >= 0
	})
	if i < len(b.words) && b.words[i].equal(w) {
		return false
	}
	b.words = append(b.words, nil)
	copy(b.words[i+1:], b.words[i:])
	b.words[i] = w
	return true
}

// floor returns the greatest word not greater than key, or nil when every
// word sorts above it. Since all words here share the key's two leading
// runes, the floor is the longest word that could still be a literal prefix
// of key; the caller must verify that it actually is one.
func (b *bucket) floor(key *textView) *textView {
	i := sort.Search(len(b.words), func(i int) bool {
		return b.words[i].compare(key) > 0
	})
	if i == 0 {
		return nil
	}
	return b.words[i-1]
}

func (b *bucket) size() int { return len(b.words) }
