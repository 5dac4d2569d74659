package sensitive

import "testing"

func TestInsertHygiene(t *testing.T) {
	testCases := []struct {
		word        string
		accepted    bool
		description string
	}{
		{"ab", true, "minimum length"},
		{"  badword  ", true, "surrounding whitespace is trimmed"},
		{"a", false, "single rune"},
		{"", false, "empty string"},
		{"   ", false, "pure whitespace"},
		{" x ", false, "single rune after trim"},
		{"主席", true, "two CJK runes"},
	}

	for _, tc := range testCases {
		x := newIndex(64)
		if got := x.insert(tc.word); got != tc.accepted {
			t.Errorf("%s: insert(%q) = %v, want %v", tc.description, tc.word, got, tc.accepted)
		}
		want := 0
		if tc.accepted {
			want = 1
		}
		if x.count != want {
			t.Errorf("%s: count = %d, want %d", tc.description, x.count, want)
		}
	}
}

func TestInsertDuplicates(t *testing.T) {
	x := newIndex(64)
	if !x.insert("abc") {
		t.Fatal("first insert rejected")
	}
	if x.insert("abc") {
		t.Error("duplicate insert must not be counted again")
	}
	if x.insert(" abc ") {
		t.Error("duplicate after trim must not be counted again")
	}
	if x.count != 1 {
		t.Errorf("count = %d, want 1", x.count)
	}
}

func TestTableSizeRoundsToPowerOfTwo(t *testing.T) {
	testCases := []struct {
		requested int
		want      int
	}{
		{64, 64},
		{100, 128},
		{0, DefaultTableSize},
		{-5, DefaultTableSize},
		{1 << 16, 1 << 16},
	}

	for _, tc := range testCases {
		if got := newIndex(tc.requested).size(); got != tc.want {
			t.Errorf("newIndex(%d).size() = %d, want %d", tc.requested, got, tc.want)
		}
	}
}

// Two words with distinct leading pairs can still land in the same slot once
// the hash is masked down to the table size. They must end up in separate
// chained buckets, each holding only its own words.
func TestSlotCollisionChainsBuckets(t *testing.T) {
	// With a 16-slot table, hash("ab")=31*97+98=3105 (slot 1) and
	// hash("aq")=31*97+113=3120 (slot 0)... pick pairs that collide:
	// hash(c0,c1)&15 equal while the pairs differ. "ab"->3105&15=1,
	// "ac"->3106&15=2, "ar"->3121&15=1. So "ab..." and "ar..." share slot 1.
	x := newIndex(16)
	x.insert("abcd")
	x.insert("arst")

	ab := newWord("abcd")
	ar := newWord("arst")
	if ab.twoCharHash(0)&x.mask != ar.twoCharHash(0)&x.mask {
		t.Fatal("test premise broken: pairs no longer share a slot")
	}

	head := x.lookup(ab.twoCharHash(0))
	if head == nil || head.next == nil {
		t.Fatal("expected a two-bucket chain")
	}
	if head.next.next != nil {
		t.Fatal("expected exactly two buckets in the chain")
	}
	if head.mix == head.next.mix {
		t.Error("chained buckets must carry distinct mixes")
	}
	if head.size() != 1 || head.next.size() != 1 {
		t.Errorf("bucket sizes = %d, %d, want 1, 1", head.size(), head.next.size())
	}
}

func TestBucketFloor(t *testing.T) {
	b := newBucket(newWord("ab").twoCharMix(0), newWord("ab"))
	b.add(newWord("abcd"))
	b.add(newWord("abx"))

	testCases := []struct {
		key         string
		want        string
		description string
	}{
		{"abcd", "abcd", "exact entry"},
		{"abcdef", "abcd", "longest entry at or below a longer suffix"},
		{"abc", "ab", "between entries"},
		{"abz", "abx", "above every longer entry"},
		{"ab", "ab", "shortest entry"},
	}

	for _, tc := range testCases {
		got := b.floor(newWord(tc.key))
		if got == nil {
			t.Errorf("%s: floor(%q) = nil, want %q", tc.description, tc.key, tc.want)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("%s: floor(%q) = %q, want %q", tc.description, tc.key, got.String(), tc.want)
		}
	}

	if got := newBucket(0, newWord("bb")).floor(newWord("ba")); got != nil {
		t.Errorf("floor below every entry = %q, want nil", got.String())
	}
}

func TestBucketAddKeepsOrder(t *testing.T) {
	b := newBucket(newWord("ab").twoCharMix(0), newWord("abm"))
	b.add(newWord("ab"))
	b.add(newWord("abz"))
	b.add(newWord("abm")) // duplicate

	want := []string{"ab", "abm", "abz"}
	if b.size() != len(want) {
		t.Fatalf("bucket size = %d, want %d", b.size(), len(want))
	}
	for i, w := range want {
		if got := b.words[i].String(); got != w {
			t.Errorf("words[%d] = %q, want %q", i, got, w)
		}
	}
}
