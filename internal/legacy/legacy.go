// Package legacy holds the library functions the reference genome-mapping
// toolkit carries alongside its mapper but never calls from the mapping
// path: the Burrows-Wheeler transform, k-mer hashing, and the unbanded
// edit distance. The seed-and-extend mapper uses the suffix array, the
// banded edit distance, and nothing here; these are kept, unwired, as the
// specification's explicitly out-of-scope collaborators, not as dead code
// left behind by accident.
package legacy

// ComputeBWT returns the Burrows-Wheeler transform of s with an
// implicit '$' sentinel appended (assumed lower than every byte in s).
func ComputeBWT(s []byte) []byte {
	n := len(s) + 1
	withSentinel := make([]byte, n)
	copy(withSentinel, s)
	// '$' sorts before every DNA base; 0x00 is unused by FASTA input and
	// serves the same role here.
	withSentinel[n-1] = 0

	sa := rotationSuffixArray(withSentinel)
	bwt := make([]byte, n)
	for i, pos := range sa {
		bwt[i] = withSentinel[(pos+n-1)%n]
	}
	return bwt
}

// rotationSuffixArray sorts the suffixes of s (which must end in a unique
// minimal sentinel) using the same prefix-doubling approach as the
// suffixarray package, kept independent so this package has no import
// dependency on the mapper's core.
func rotationSuffixArray(s []byte) []int {
	n := len(s)
	sa := make([]int, n)
	rank := make([]int, n)
	for i := range s {
		sa[i] = i
		rank[i] = int(s[i])
	}
	tmp := make([]int, n)
	for k := 1; k < n; k *= 2 {
		keyOf := func(i int) (int, int) {
			second := -1
			if i+k < n {
				second = rank[i+k]
			}
			return rank[i], second
		}
		less := func(a, b int) bool {
			ra, sa2 := keyOf(a)
			rb, sb2 := keyOf(b)
			if ra != rb {
				return ra < rb
			}
			return sa2 < sb2
		}
		sortInts(sa, less)
		tmp[sa[0]] = 0
		for i := 1; i < n; i++ {
			tmp[sa[i]] = tmp[sa[i-1]]
			if less(sa[i-1], sa[i]) {
				tmp[sa[i]]++
			}
		}
		copy(rank, tmp)
		if rank[sa[n-1]] == n-1 {
			break
		}
	}
	return sa
}

func sortInts(a []int, less func(x, y int) bool) {
	// insertion sort is adequate here: this path exists only to keep
	// ComputeBWT self-contained, never on the mapper's hot path.
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && less(a[j], a[j-1]); j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}

// dnaIndex maps {$, A, C, G, T} to a dense index for the FM-index tables
// below; any other byte is folded into the 'T' bucket, mirroring the
// original's default case.
func dnaIndex(b byte) int {
	switch b {
	case 0:
		return 0
	case 'A':
		return 1
	case 'C':
		return 2
	case 'G':
		return 3
	default:
		return 4
	}
}

// InverseBWT reconstructs the original string from a BWT produced by
// ComputeBWT (sentinel byte 0 in place of '$').
func InverseBWT(bwt []byte) []byte {
	n := len(bwt)
	var count [256]int
	for _, b := range bwt {
		count[b]++
	}
	var c [256]int
	for i := 1; i < 256; i++ {
		c[i] = c[i-1] + count[i-1]
	}

	rankAt := make([]int, n)
	var seen [256]int
	for i, b := range bwt {
		rankAt[i] = seen[b]
		seen[b]++
	}

	pos := 0
	for i, b := range bwt {
		if b == 0 {
			pos = i
			break
		}
	}

	result := make([]byte, n-1)
	for i := n - 2; i >= 0; i-- {
		pos = c[bwt[pos]] + rankAt[pos]
		result[i] = bwt[pos]
	}
	return result
}

// BuildOccurrenceTable returns occ[c][i], the count of dense-index
// character c in bwt[0:i], for FM-index style rank queries.
func BuildOccurrenceTable(bwt []byte) [5][]int {
	n := len(bwt)
	var occ [5][]int
	for c := range occ {
		occ[c] = make([]int, n+1)
	}
	for i, b := range bwt {
		for c := range occ {
			occ[c][i+1] = occ[c][i]
		}
		occ[dnaIndex(b)][i+1]++
	}
	return occ
}

// BuildCumulativeCounts returns the FM-index C array over bwt.
func BuildCumulativeCounts(bwt []byte) [5]int {
	var count [5]int
	for _, b := range bwt {
		count[dnaIndex(b)]++
	}
	var c [5]int
	for i := 1; i < 5; i++ {
		c[i] = c[i-1] + count[i-1]
	}
	return c
}
