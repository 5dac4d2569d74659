/*
Package sensitive is the core, providing the sparse two-rune dictionary index
and the scan/replace engine that masks dictionary words inside arbitrary text.

The engine is not an automaton. Each dictionary word is bucketed under the
exact pair of runes it starts with; the table slot comes from a cheap
two-rune hash and the packed two-rune mix settles slot collisions exactly.
Scanning walks the input once with a variable step: positions whose slot is
empty are rejected with one array load, which is the overwhelmingly common
case for a sparse table. Only when a slot is occupied does the engine compare
anything, and a single floor query over the bucket's ordered words yields the
longest candidate in one lookup.

Masking never fails: any input, including empty text, produces a defined
result. A filter is built once, then frozen; concurrent Mask calls are safe
without locking because each call owns its scratch buffer and the frozen
index is never written to.
*/
package sensitive

// Filter masks dictionary words in text. Build it with New or FromWords,
// feed it words with Insert, then call Mask from as many goroutines as you
// like. Insert is single-writer: finish building before sharing the filter.
type Filter struct {
	idx *index
}

// New returns an empty filter with the default table size.
func New() *Filter {
	return &Filter{idx: newIndex(DefaultTableSize)}
}

// NewWithTableSize returns an empty filter whose table holds at least size
// slots, rounded up to a power of two. Sizing the table well above the
// expected word count keeps the fast-reject rate high.
func NewWithTableSize(size int) *Filter {
	return &Filter{idx: newIndex(size)}
}

// FromWords builds a filter from a word list, applying the usual trim and
// minimum-length hygiene per entry.
func FromWords(words []string) *Filter {
	f := New()
	for _, w := range words {
		f.idx.insert(w)
	}
	return f
}

// Insert adds one dictionary word. Words trimming to fewer than two runes
// are dropped silently; duplicates are not double counted. Reports whether
// the word was stored.
func (f *Filter) Insert(word string) bool {
	return f.idx.insert(word)
}

// Len returns the number of stored words.
func (f *Filter) Len() int {
	return f.idx.count
}

// TableSize returns the slot count of the underlying table.
func (f *Filter) TableSize() int {
	return f.idx.size()
}

// Mask replaces every rune of each matched dictionary word with replace and
// returns the masked text. When nothing matches, the input string is
// returned as is, with no new allocation.
func (f *Filter) Mask(text string, replace rune) string {
	out, _ := f.MaskCount(text, replace)
	return out
}

// MaskCount is Mask plus the number of masked spans.
func (f *Filter) MaskCount(text string, replace rune) (string, int) {
	// The input is always copied into a private mutable buffer up front:
	// in-place masking needs mutability, and the copy is what keeps
	// concurrent calls independent.
	sp := newOwnedView([]rune(text))
	matched := 0

	for i := 0; i+2 <= sp.length(); {
		step := 1
		if head := f.idx.lookup(sp.twoCharHash(i)); head != nil {
			mix := sp.twoCharMix(i)
			for b := head; b != nil; b = b.next {
				if b.mix != mix {
					continue
				}
				// The floor candidate is only ordered-before the suffix;
				// verify it is a literal prefix before masking. A failed
				// verification does not retry with a shorter word from the
				// same bucket.
				if w := b.floor(sp.sub(i)); w != nil && sp.startsWith(i, w) {
					sp.fill(i, i+w.length(), replace)
					step = w.length()
					matched++
					break
				}
			}
		}
		i += step
	}

	if matched == 0 {
		return text, 0
	}
	return sp.String(), matched
}
