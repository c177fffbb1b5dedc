package aggregate

import "gonum.org/v1/gonum/stat"

// Coverage is a per-base count of uniquely-mapped reads whose placement
// interval covers that base. Index i corresponds to reference position i.
type Coverage []int

// NewCoverage allocates a zero-initialized coverage vector of length n.
func NewCoverage(n int) Coverage {
	return make(Coverage, n)
}

// add increments coverage over the half-open interval [start, end).
func (c Coverage) add(start, end int) {
	for i := start; i < end; i++ {
		c[i]++
	}
}

// CoveredBases returns the number of positions with coverage > 0.
func (c Coverage) CoveredBases() int64 {
	var n int64
	for _, v := range c {
		if v > 0 {
			n++
		}
	}
	return n
}

// Sum returns the total coverage across all positions.
func (c Coverage) Sum() int64 {
	var total int64
	for _, v := range c {
		total += int64(v)
	}
	return total
}

// AverageDepth is Sum()/len(c), 0 for an empty reference.
func (c Coverage) AverageDepth() float64 {
	if len(c) == 0 {
		return 0
	}
	return float64(c.Sum()) / float64(len(c))
}

// CoveredFraction is CoveredBases()/len(c), 0 for an empty reference.
func (c Coverage) CoveredFraction() float64 {
	if len(c) == 0 {
		return 0
	}
	return float64(c.CoveredBases()) / float64(len(c))
}

// DepthStdDev is the sample (n-1) standard deviation of per-base depth
// across the whole reference, computed over the same vector already
// scanned for CoveredBases/Sum. It supplements, rather than replaces, the
// average-depth figure the reference report prints.
func (c Coverage) DepthStdDev() float64 {
	if len(c) < 2 {
		return 0
	}
	depths := make([]float64, len(c))
	for i, v := range c {
		depths[i] = float64(v)
	}
	return stat.StdDev(depths, nil)
}
