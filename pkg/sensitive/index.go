package sensitive

import "strings"

// DefaultTableSize is deliberately far above typical dictionary sizes
// (tens of thousands of entries) so most slots stay empty and the scan
// loop rejects almost every position with a single nil check.
const DefaultTableSize = 1 << 16

// index is the sparse two-rune dictionary table: a power-of-two array of
// bucket-chain heads. Insertion is the only mutator; once a build completes
// the whole structure is read-only and safe for unsynchronized readers.
type index struct {
	slots []*bucket
	mask  uint32
	count int
}

func newIndex(size int) *index {
	if size < 2 {
		size = DefaultTableSize
	}
	size = nextPow2(size)
	return &index{
		slots: make([]*bucket, size),
		mask:  uint32(size - 1),
	}
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// insert trims raw and stores it as a dictionary word. Entries shorter than
// two runes after trimming are discarded silently; that is dictionary
// hygiene, not an error. Returns whether a new word was stored.
func (x *index) insert(raw string) bool {
	w := newWord(strings.TrimSpace(raw))
	if w.length() < 2 {
		return false
	}
	// Warm the cached whole-view hash while still single-writer, so the
	// frozen structure is never written to under concurrent readers.
	w.hashCode()

	mix := w.twoCharMix(0)
	slot := w.twoCharHash(0) & x.mask

	head := x.slots[slot]
	if head == nil {
		x.slots[slot] = newBucket(mix, w)
		x.count++
		return true
	}
	for b := head; ; b = b.next {
		if b.mix == mix {
			if b.add(w) {
				x.count++
				return true
			}
			return false
		}
		if b.next == nil {
			b.next = newBucket(mix, w)
			x.count++
			return true
		}
	}
}

// lookup returns the chain head for a precomputed two-rune hash, or nil.
func (x *index) lookup(hash uint32) *bucket {
	return x.slots[hash&x.mask]
}

func (x *index) size() int { return len(x.slots) }
