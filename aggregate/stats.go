package aggregate

// Stats holds the run-wide mapping counters.
type Stats struct {
	TotalReads    int64
	MappedReads   int64
	UniqueMapped  int64
	MultiMapped   int64
	TotalEditDist int64
}

// MappedPercent returns the percentage of reads that mapped, 0 when no
// reads were processed.
func (s Stats) MappedPercent() float64 {
	return percent(s.MappedReads, s.TotalReads)
}

// UnmappedPercent returns the percentage of reads that did not map.
func (s Stats) UnmappedPercent() float64 {
	return percent(s.TotalReads-s.MappedReads, s.TotalReads)
}

// UniquePercent returns the percentage of reads that mapped uniquely.
func (s Stats) UniquePercent() float64 {
	return percent(s.UniqueMapped, s.TotalReads)
}

// MultiPercent returns the percentage of reads that mapped to more than
// one place.
func (s Stats) MultiPercent() float64 {
	return percent(s.MultiMapped, s.TotalReads)
}

// AverageEditDistance is 0 when no reads mapped.
func (s Stats) AverageEditDistance() float64 {
	if s.MappedReads == 0 {
		return 0
	}
	return float64(s.TotalEditDist) / float64(s.MappedReads)
}

func percent(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(part) / float64(total)
}
