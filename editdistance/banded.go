// Package editdistance computes Levenshtein distance restricted to a
// diagonal band, for use where the answer is known to be small.
package editdistance

// Banded computes the Levenshtein distance between s and t, returning the
// true distance when it is <= maxDist, and maxDist+1 (a sentinel strictly
// greater than maxDist) otherwise. It never computes an exact value above
// the band: cells more than maxDist off the main diagonal are treated as
// infinite and are never refined.
//
// The algorithm is classic Wagner-Fischer restricted to a band of width
// W = 2*maxDist+1, keeping two rolling rows indexed by the shifted
// diagonal idx = (j-i)+maxDist.
func Banded(s, t []byte, maxDist int) int {
	n, m := len(s), len(t)
	w := 2*maxDist + 1
	inf := maxDist + 1

	if abs(n-m) > maxDist {
		return inf
	}

	prev := make([]int, w)
	curr := make([]int, w)
	for j := range prev {
		prev[j] = inf
	}

	for i := 0; i <= n; i++ {
		for j := range curr {
			curr[j] = inf
		}
		jMin := max(0, i-maxDist)
		jMax := min(m, i+maxDist)
		for j := jMin; j <= jMax; j++ {
			idx := (j - i) + maxDist
			switch {
			case i == 0 && j == 0:
				curr[idx] = 0
			case i == 0:
				curr[idx] = j
			case j == 0:
				curr[idx] = i
			default:
				cost := 0
				if s[i-1] != t[j-1] {
					cost = 1
				}
				best := prev[idx] + cost
				if idx > 0 {
					if v := curr[idx-1] + 1; v < best {
						best = v
					}
				}
				if idx < w-1 {
					if v := prev[idx+1] + 1; v < best {
						best = v
					}
				}
				curr[idx] = best
			}
		}
		prev, curr = curr, prev
	}

	final := m - n + maxDist
	if final < 0 || final >= w || prev[final] > maxDist {
		return inf
	}
	return prev[final]
}

// WithinThreshold reports whether Banded(s, t, maxDist) <= threshold,
// rejecting immediately without running the DP when the length
// difference alone rules it out.
func WithinThreshold(s, t []byte, maxDist, threshold int) bool {
	if abs(len(s)-len(t)) > threshold {
		return false
	}
	return Banded(s, t, maxDist) <= threshold
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
