package suffixarray

import (
	"math/rand"
	"sort"
	"strings"
	"testing"
)

func naiveOccurrences(s, p string) []int {
	var out []int
	for i := 0; i+len(p) <= len(s); i++ {
		if s[i:i+len(p)] == p {
			out = append(out, i)
		}
	}
	return out
}

func TestBuildIsPermutation(t *testing.T) {
	s := "banana$banana"
	idx := Build([]byte(s))
	seen := make([]bool, len(s))
	for i := 0; i < idx.Len(); i++ {
		pos := idx.At(i)
		if pos < 0 || pos >= len(s) || seen[pos] {
			t.Fatalf("sa is not a permutation of [0,n): pos=%d", pos)
		}
		seen[pos] = true
	}
	for i, ok := range seen {
		if !ok {
			t.Fatalf("position %d missing from suffix array", i)
		}
	}
}

func TestBuildSorted(t *testing.T) {
	s := "mississippi"
	idx := Build([]byte(s))
	for i := 0; i+1 < idx.Len(); i++ {
		a, b := s[idx.At(i):], s[idx.At(i+1):]
		if a > b {
			t.Fatalf("suffix array out of order at %d: %q > %q", i, a, b)
		}
	}
}

func TestEmptyReference(t *testing.T) {
	idx := Build(nil)
	if idx.Len() != 0 {
		t.Fatalf("expected empty suffix array, got len %d", idx.Len())
	}
	lo, hi := idx.Range([]byte("a"))
	if hi != lo {
		t.Fatalf("expected empty range, got [%d,%d)", lo, hi)
	}
}

func TestRangeCompleteness(t *testing.T) {
	s := "ACGTACGTACGTACGTACGT"
	idx := Build([]byte(s))
	for _, p := range []string{"ACGT", "CGTA", "A", "GTACGT", "T"} {
		lo, hi := idx.Range([]byte(p))
		want := naiveOccurrences(s, p)
		sort.Ints(want)
		got := idx.FindAll([]byte(p))
		sort.Ints(got)
		if hi-lo != len(want) {
			t.Fatalf("pattern %q: range width %d, want %d", p, hi-lo, len(want))
		}
		if len(got) != len(want) {
			t.Fatalf("pattern %q: FindAll returned %v, want %v", p, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("pattern %q: FindAll returned %v, want %v", p, got, want)
			}
		}
	}
}

func TestHasUniqueAndUniquePosition(t *testing.T) {
	idx := Build([]byte("ACGTACGT"))
	if idx.HasUnique([]byte("ACGT")) {
		t.Fatal("ACGT occurs twice, HasUnique should be false")
	}
	if !idx.HasUnique([]byte("ACGTA")) {
		t.Fatal("ACGTA occurs once, HasUnique should be true")
	}
	if pos := idx.UniquePosition([]byte("ACGTA")); pos != 0 {
		t.Fatalf("UniquePosition = %d, want 0", pos)
	}
	if pos := idx.UniquePosition([]byte("ACGT")); pos != -1 {
		t.Fatalf("UniquePosition = %d, want -1 for a repeated pattern", pos)
	}
}

func TestPatternLongerThanReference(t *testing.T) {
	idx := Build([]byte("AC"))
	lo, hi := idx.Range([]byte("ACGTACGT"))
	if hi != lo {
		t.Fatalf("expected empty range for an overlong pattern, got [%d,%d)", lo, hi)
	}
}

func TestRandomAgreesWithNaive(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	alphabet := "ACGT"
	var b strings.Builder
	for i := 0; i < 500; i++ {
		b.WriteByte(alphabet[rnd.Intn(len(alphabet))])
	}
	s := b.String()
	idx := Build([]byte(s))
	for trial := 0; trial < 50; trial++ {
		plen := 1 + rnd.Intn(6)
		start := rnd.Intn(len(s) - plen + 1)
		p := s[start : start+plen]
		want := naiveOccurrences(s, p)
		got := idx.FindAll([]byte(p))
		sort.Ints(got)
		if len(got) != len(want) {
			t.Fatalf("pattern %q: got %v, want %v", p, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("pattern %q: got %v, want %v", p, got, want)
			}
		}
	}
}
