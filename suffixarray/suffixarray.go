// Package suffixarray builds a full-text index over a reference sequence
// and answers lower/upper-bound range queries against it.
package suffixarray

import "sort"

// Index is an immutable suffix array over a reference sequence. SA[i] is
// the start offset of the i-th suffix in lexicographic (raw byte) order.
type Index struct {
	ref []byte
	sa  []int
}

// Build constructs the suffix array of ref using prefix doubling with rank
// refinement. Ranks are recomputed with a two-pass radix sort keyed on
// (rank[i+k], rank[i]), giving O(n log n) instead of the comparison-sort
// O(n log^2 n) of the reference implementation; the resulting order is
// identical.
func Build(ref []byte) *Index {
	n := len(ref)
	sa := make([]int, n)
	for i := range ref {
		sa[i] = i
	}
	if n == 0 {
		return &Index{ref: ref, sa: sa}
	}

	// radixSortByKey's counting array is sized for keys in [0, n], so the
	// initial per-byte ranks (raw bytes, up to 255) must first be
	// compressed into that dense range: a counting sort over the 256-byte
	// alphabet followed by a rank pass, exactly like every subsequent
	// doubling round but keyed on the byte value itself.
	sa = radixSortByKey(sa, func(i int) int { return int(ref[i]) }, 256)
	rank := make([]int, n)
	rank[sa[0]] = 0
	for i := 1; i < n; i++ {
		rank[sa[i]] = rank[sa[i-1]]
		if ref[sa[i]] != ref[sa[i-1]] {
			rank[sa[i]]++
		}
	}

	tmp := make([]int, n)
	for k := 1; k < n; k *= 2 {
		secondKey := func(i int) int {
			if i+k < n {
				return rank[i+k] + 1
			}
			return 0
		}
		sa = radixSortByKey(sa, secondKey, n)
		sa = radixSortByKey(sa, func(i int) int { return rank[i] + 1 }, n)

		tmp[sa[0]] = 0
		for i := 1; i < n; i++ {
			prev, cur := sa[i-1], sa[i]
			same := rank[prev] == rank[cur] && secondKey(prev) == secondKey(cur)
			if same {
				tmp[cur] = tmp[prev]
			} else {
				tmp[cur] = tmp[prev] + 1
			}
		}
		rank, tmp = tmp, rank
		if rank[sa[n-1]] == n-1 {
			break
		}
	}
	return &Index{ref: ref, sa: sa}
}

// radixSortByKey performs a stable counting sort of indices by key(index),
// where key is known to range over [0, alphabetSize].
func radixSortByKey(indices []int, key func(int) int, alphabetSize int) []int {
	count := make([]int, alphabetSize+2)
	for _, idx := range indices {
		count[key(idx)+1]++
	}
	for i := 1; i < len(count); i++ {
		count[i] += count[i-1]
	}
	out := make([]int, len(indices))
	for _, idx := range indices {
		k := key(idx)
		out[count[k]] = idx
		count[k]++
	}
	return out
}

// Len returns n, the length of the indexed reference.
func (idx *Index) Len() int {
	return len(idx.sa)
}

// At returns the starting position of the i-th suffix in sorted order.
func (idx *Index) At(i int) int {
	return idx.sa[i]
}

// compareSuffix compares the suffix starting at pos, truncated to len(p)
// characters, against p under raw byte order. A suffix shorter than p is
// compared only over its own length, so a suffix whose remaining bytes are
// a strict prefix of p sorts before p.
func (idx *Index) compareSuffix(pos int, p []byte) int {
	ref := idx.ref
	n := len(ref)
	for i := 0; i < len(p); i++ {
		if pos+i >= n {
			return -1
		}
		a, b := ref[pos+i], p[i]
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	return 0
}

// LowerBound returns the smallest i such that the suffix at SA[i],
// truncated to len(p) bytes, is >= p under byte order.
func (idx *Index) LowerBound(p []byte) int {
	return sort.Search(len(idx.sa), func(i int) bool {
		return idx.compareSuffix(idx.sa[i], p) >= 0
	})
}

// UpperBound returns the smallest i such that the suffix at SA[i],
// truncated to len(p) bytes, is > p under byte order.
func (idx *Index) UpperBound(p []byte) int {
	return sort.Search(len(idx.sa), func(i int) bool {
		return idx.compareSuffix(idx.sa[i], p) > 0
	})
}

// Range returns the half-open [lo, hi) range of SA entries whose suffix
// starts with p.
func (idx *Index) Range(p []byte) (lo, hi int) {
	lo = idx.LowerBound(p)
	hi = idx.UpperBound(p)
	return lo, hi
}

// FindAll returns every starting position of p in the reference.
func (idx *Index) FindAll(p []byte) []int {
	lo, hi := idx.Range(p)
	positions := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		positions = append(positions, idx.sa[i])
	}
	return positions
}

// HasUnique reports whether p occurs exactly once in the reference.
func (idx *Index) HasUnique(p []byte) bool {
	lo, hi := idx.Range(p)
	return hi-lo == 1
}

// UniquePosition returns the sole occurrence of p, or -1 if p occurs zero
// or more than one time.
func (idx *Index) UniquePosition(p []byte) int {
	lo, hi := idx.Range(p)
	if hi-lo == 1 {
		return idx.sa[lo]
	}
	return -1
}
