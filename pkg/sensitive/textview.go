package sensitive

// textView is a window over a shared rune buffer, identified by
// (buffer, offset, length). Views never copy the characters they cover;
// dictionary words and per-call scratch text both live behind the same
// abstraction so the scan loop can compare them without allocating.
//
// A view is owned when it wraps a private buffer created for one Mask call.
// Only owned views may be overwritten in place. Views over dictionary words
// and subviews handed to lookups are borrowed and stay immutable.
type textView struct {
	buf    []rune
	off    int
	n      int
	owned  bool
	hash   uint32
	hashed bool
}

// newOwnedView wraps a freshly allocated buffer the caller will not share.
func newOwnedView(buf []rune) *textView {
	return &textView{buf: buf, n: len(buf), owned: true}
}

// newWord copies s into a private immutable buffer.
func newWord(s string) *textView {
	r := []rune(s)
	return &textView{buf: r, n: len(r)}
}

func (v *textView) length() int { return v.n }

// charAt skips bounds checking beyond the slice's own; the scan loop and
// insert path guarantee 0 <= i < length.
func (v *textView) charAt(i int) rune { return v.buf[v.off+i] }

// twoCharHash hashes the runes at i and i+1 for table-slot selection.
// Collisions are expected and resolved by twoCharMix plus verification.
func (v *textView) twoCharHash(i int) uint32 {
	return 31*uint32(v.buf[v.off+i]) + uint32(v.buf[v.off+i+1])
}

// twoCharMix packs the runes at i and i+1 losslessly into one integer.
// Two positions have equal mix iff their two runes are identical, which
// makes it a zero-collision equality check, unlike twoCharHash.
func (v *textView) twoCharMix(i int) uint64 {
	return uint64(v.buf[v.off+i])<<32 | uint64(uint32(v.buf[v.off+i+1]))
}

// startsWith reports whether the view's content at i begins with w.
// It returns false when fewer than w.length() runes remain. The comparison
// runs tail first: mismatches near the end are the cheapest way to reject
// the common near-miss.
func (v *textView) startsWith(i int, w *textView) bool {
	if v.n-i < w.n {
		return false
	}
	for j := w.n - 1; j >= 0; j-- {
		if v.buf[v.off+i+j] != w.buf[w.off+j] {
			return false
		}
	}
	return true
}

// fill overwrites the runes in [begin, end) with ch. Calling fill on a
// borrowed view is a programming error, not a recoverable condition.
func (v *textView) fill(begin, end int, ch rune) {
	if !v.owned {
		panic("sensitive: fill on a borrowed view")
	}
	for k := begin; k < end; k++ {
		v.buf[v.off+k] = ch
	}
}

// sub returns a borrowed zero-copy view of the content from begin to the end.
func (v *textView) sub(begin int) *textView {
	return &textView{buf: v.buf, off: v.off + begin, n: v.n - begin}
}

// slice returns a borrowed zero-copy view of [begin, end).
func (v *textView) slice(begin, end int) *textView {
	return &textView{buf: v.buf, off: v.off + begin, n: end - begin}
}

// equal reports content equality, independent of backing buffer identity.
func (v *textView) equal(o *textView) bool {
	if v.n != o.n {
		return false
	}
	for j := v.n - 1; j >= 0; j-- {
		if v.buf[v.off+j] != o.buf[o.off+j] {
			return false
		}
	}
	return true
}

// compare orders views lexicographically by rune value. When one view is a
// prefix of the other, the shorter sorts first.
func (v *textView) compare(o *textView) int {
	m := v.n
	if o.n < m {
		m = o.n
	}
	for j := 0; j < m; j++ {
		a, b := v.buf[v.off+j], o.buf[o.off+j]
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	switch {
	case v.n < o.n:
		return -1
	case v.n > o.n:
		return 1
	}
	return 0
}

// hashCode is the polynomial hash over the whole view, computed once and
// cached. Dictionary words warm it at insert time so reads after the build
// freeze never write to shared state.
func (v *textView) hashCode() uint32 {
	if !v.hashed {
		var h uint32
		for j := 0; j < v.n; j++ {
			h = 31*h + uint32(v.buf[v.off+j])
		}
		v.hash = h
		v.hashed = true
	}
	return v.hash
}

func (v *textView) String() string {
	return string(v.buf[v.off : v.off+v.n])
}
