package legacy

// dnaValue maps a base to its rolling-hash digit; an ambiguous or
// non-ACGT byte is folded to the same value as 'A', matching the
// original library's default case.
func dnaValue(b byte) uint64 {
	switch b {
	case 'C':
		return 1
	case 'G':
		return 2
	case 'T':
		return 3
	default:
		return 0
	}
}

const kmerBase uint64 = 4

// ComputeKmerHash returns the base-4 rolling hash of the k-mer s[pos:pos+k].
func ComputeKmerHash(s []byte, pos, k int) uint64 {
	var h uint64
	for i := 0; i < k; i++ {
		h = h*kmerBase + dnaValue(s[pos+i])
	}
	return h
}

// ExtractKmers returns the hash of every k-mer in s, in order, computed
// with a rolling update rather than recomputing ComputeKmerHash at every
// offset.
func ExtractKmers(s []byte, k int) []uint64 {
	if len(s) < k {
		return nil
	}
	hashes := make([]uint64, len(s)-k+1)
	var pow uint64 = 1
	for i := 1; i < k; i++ {
		pow *= kmerBase
	}
	h := ComputeKmerHash(s, 0, k)
	hashes[0] = h
	for i := 1; i <= len(s)-k; i++ {
		h -= dnaValue(s[i-1]) * pow
		h = h*kmerBase + dnaValue(s[i+k-1])
		hashes[i] = h
	}
	return hashes
}

// CountKmers tallies the occurrence count of every k-mer hash in s.
func CountKmers(s []byte, k int) map[uint64]int {
	counts := make(map[uint64]int)
	for _, h := range ExtractKmers(s, k) {
		counts[h]++
	}
	return counts
}

// FindMostFrequentKmer returns the hash with the highest count in counts
// and its count. Ties resolve to whichever hash the map iteration visits
// last, since the library never specified an ordering for ties.
func FindMostFrequentKmer(counts map[uint64]int) (uint64, int) {
	var bestHash uint64
	bestCount := -1
	for h, c := range counts {
		if c >= bestCount {
			bestHash, bestCount = h, c
		}
	}
	return bestHash, bestCount
}
