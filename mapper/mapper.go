// Package mapper implements the seed-and-extend short-read aligner: for
// each read it tries an exact suffix-array lookup, then falls back to
// multi-seed candidate generation verified by banded edit distance.
package mapper

import (
	"fmt"
	"log"

	"github.com/bits-and-blooms/bitset"

	"github.com/schv/seqmap/editdistance"
	"github.com/schv/seqmap/suffixarray"
)

// Status classifies a mapping outcome.
type Status int

const (
	Unmapped Status = iota
	Unique
	Multi
)

func (s Status) String() string {
	switch s {
	case Unmapped:
		return "Unmapped"
	case Unique:
		return "Unique"
	case Multi:
		return "Multi"
	default:
		return "Invalid"
	}
}

// Result is the outcome of mapping a single read.
type Result struct {
	Status   Status
	Position int
	EditDist int
}

// unmapped is the canonical Unmapped result, per the Reference section's
// invariant that Unmapped implies position = -1, edit_dist = -1.
var unmapped = Result{Status: Unmapped, Position: -1, EditDist: -1}

// Config holds the tunable parameters of a mapping run. NumSeeds and
// MaxHitsPerSeed are load-bearing for runtime vs. recall and are exposed
// here as parameters rather than hard-coded, per the reference design
// notes.
type Config struct {
	SeedLen        int
	MaxErrors      int
	NumSeeds       int
	MaxHitsPerSeed int
	BandMaxDist    int
}

// DefaultConfig mirrors the CLI's default flags.
func DefaultConfig() Config {
	return Config{
		SeedLen:        20,
		MaxErrors:      3,
		NumSeeds:       3,
		MaxHitsPerSeed: 100,
		BandMaxDist:    10,
	}
}

// Validate rejects configurations the reference mapper leaves undefined:
// a negative error budget, an error budget larger than the band the
// verifier was built for, or a non-positive seed/hit count.
func (c Config) Validate() error {
	if c.SeedLen < 1 {
		return fmt.Errorf("mapper: seed length must be >= 1, got %d", c.SeedLen)
	}
	if c.MaxErrors < 0 {
		return fmt.Errorf("mapper: max errors must be >= 0, got %d", c.MaxErrors)
	}
	if c.BandMaxDist < 1 {
		return fmt.Errorf("mapper: band max distance must be >= 1, got %d", c.BandMaxDist)
	}
	if c.MaxErrors > c.BandMaxDist {
		return fmt.Errorf("mapper: max errors (%d) exceeds the banded verifier's distance bound (%d)", c.MaxErrors, c.BandMaxDist)
	}
	if c.NumSeeds < 1 {
		return fmt.Errorf("mapper: num seeds must be >= 1, got %d", c.NumSeeds)
	}
	if c.MaxHitsPerSeed < 1 {
		return fmt.Errorf("mapper: max hits per seed must be >= 1, got %d", c.MaxHitsPerSeed)
	}
	return nil
}

// Map locates read in ref using the suffix array idx, returning the best
// classified alignment. cfg must already be valid (see Config.Validate);
// Map itself only validates the read-dependent precondition that the read
// is at least as long as the seed.
func Map(ref []byte, idx *suffixarray.Index, read []byte, cfg Config) Result {
	if len(read) == 0 || read[0] == 'N' {
		return unmapped
	}

	if len(read) < cfg.SeedLen {
		// Undefined in the reference (it silently divides by the step
		// size without this guard); we treat it as an unmappable read
		// rather than a fatal configuration error, since read lengths
		// vary within a single run.
		log.Printf("mapper: read of length %d is shorter than seed length %d, skipping", len(read), cfg.SeedLen)
		return unmapped
	}

	if lo, hi := idx.Range(read); hi > lo {
		pos := idx.At(lo)
		if hi-lo == 1 {
			return Result{Status: Unique, Position: pos, EditDist: 0}
		}
		return Result{Status: Multi, Position: pos, EditDist: 0}
	}

	candidates := collectCandidates(ref, idx, read, cfg)
	if len(candidates) == 0 {
		return unmapped
	}

	bestDist := cfg.MaxErrors + 1
	bestPos := -1
	bestCount := 0
	readLen := len(read)

	for _, c := range candidates {
		seg := ref[c : c+readLen]
		d := editdistance.Banded(seg, read, cfg.BandMaxDist)
		switch {
		case d < bestDist:
			bestDist = d
			bestPos = c
			bestCount = 1
		case d == bestDist && c != bestPos:
			bestCount++
		}
	}

	if bestDist > cfg.MaxErrors {
		return unmapped
	}
	if bestCount == 1 {
		return Result{Status: Unique, Position: bestPos, EditDist: bestDist}
	}
	return Result{Status: Multi, Position: bestPos, EditDist: bestDist}
}

// collectCandidates generates up to cfg.NumSeeds seeds at evenly spaced
// read offsets, queries each in the suffix array (capped at
// cfg.MaxHitsPerSeed hits), back-projects genome hits to candidate
// read-start positions, and returns them deduplicated in ascending order.
//
// Deduplication uses a bitset over candidate offsets instead of a
// sort-then-unique pass: setting a bit per admitted candidate and walking
// the set bits in order yields the same ascending, duplicate-free
// sequence the reference implementation gets from sort+unique.
func collectCandidates(ref []byte, idx *suffixarray.Index, read []byte, cfg Config) []int {
	n := len(ref)
	readLen := len(read)
	maxStart := n - readLen
	if maxStart < 0 {
		return nil
	}

	seen := bitset.New(uint(maxStart + 1))
	any := false

	step := (readLen - cfg.SeedLen) / max(1, cfg.NumSeeds-1)
	for i := 0; i < cfg.NumSeeds; i++ {
		offset := i * step
		if offset+cfg.SeedLen > readLen {
			continue
		}
		seed := read[offset : offset+cfg.SeedLen]
		if containsN(seed) {
			continue
		}

		slo, shi := idx.Range(seed)
		limit := shi
		if slo+cfg.MaxHitsPerSeed < limit {
			limit = slo + cfg.MaxHitsPerSeed
		}
		for j := slo; j < limit; j++ {
			p := idx.At(j)
			c := p - offset
			if c < 0 || c > maxStart {
				continue
			}
			seen.Set(uint(c))
			any = true
		}
	}

	if !any {
		return nil
	}
	candidates := make([]int, 0, int(seen.Count()))
	for i, ok := seen.NextSet(0); ok; i, ok = seen.NextSet(i + 1) {
		candidates = append(candidates, int(i))
	}
	return candidates
}

func containsN(b []byte) bool {
	for _, c := range b {
		if c == 'N' {
			return true
		}
	}
	return false
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
