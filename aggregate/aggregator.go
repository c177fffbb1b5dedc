// Package aggregate drives the mapper over a stream of reads and
// accumulates run-wide statistics and per-base coverage.
package aggregate

import (
	"log"

	"github.com/schv/seqmap/genome/fastq"
	"github.com/schv/seqmap/mapper"
	"github.com/schv/seqmap/suffixarray"
)

// ReadSource yields reads one at a time, in the style of fastq.Reader.
type ReadSource interface {
	Next() (fastq.Read, bool)
}

// ProgressInterval is how often (in reads processed) a progress tick is
// logged to stderr via the log package, matching the reference
// implementation's 100,000-read cadence.
const ProgressInterval = 100000

// Aggregator owns the Stats and Coverage for one mapping run. Per the
// concurrency model, it is not safe for concurrent use: a future
// parallel driver would shard reads across per-worker Aggregators and
// reduce them with Merge.
type Aggregator struct {
	Stats    Stats
	Coverage Coverage

	ref []byte
	idx *suffixarray.Index
	cfg mapper.Config
}

// New creates an Aggregator over ref, indexed by idx, mapping with cfg.
func New(ref []byte, idx *suffixarray.Index, cfg mapper.Config) *Aggregator {
	return &Aggregator{
		Coverage: NewCoverage(len(ref)),
		ref:      ref,
		idx:      idx,
		cfg:      cfg,
	}
}

// Run maps reads from src until it is exhausted or maxReads have been
// processed (maxReads < 0 means unlimited), updating Stats and Coverage
// as it goes.
func (a *Aggregator) Run(src ReadSource, maxReads int64) {
	for {
		if maxReads >= 0 && a.Stats.TotalReads >= maxReads {
			break
		}
		read, ok := src.Next()
		if !ok {
			break
		}
		a.Stats.TotalReads++

		result := mapper.Map(a.ref, a.idx, read.Seq, a.cfg)
		a.record(result, len(read.Seq))

		if a.Stats.TotalReads%ProgressInterval == 0 {
			log.Printf("processed %d reads... %.2f%% mapped", a.Stats.TotalReads, a.Stats.MappedPercent())
		}
	}
}

func (a *Aggregator) record(result mapper.Result, readLen int) {
	if result.Status == mapper.Unmapped {
		return
	}
	a.Stats.MappedReads++
	a.Stats.TotalEditDist += int64(result.EditDist)

	switch result.Status {
	case mapper.Unique:
		a.Stats.UniqueMapped++
		start := result.Position
		end := start + readLen
		if end > len(a.Coverage) {
			end = len(a.Coverage)
		}
		a.Coverage.add(start, end)
	case mapper.Multi:
		a.Stats.MultiMapped++
	}
}

// Merge folds other's counters and coverage into a, for combining
// per-worker accumulations in a future parallel driver. Coverage vectors
// must be the same length.
func (a *Aggregator) Merge(other *Aggregator) {
	a.Stats.TotalReads += other.Stats.TotalReads
	a.Stats.MappedReads += other.Stats.MappedReads
	a.Stats.UniqueMapped += other.Stats.UniqueMapped
	a.Stats.MultiMapped += other.Stats.MultiMapped
	a.Stats.TotalEditDist += other.Stats.TotalEditDist
	for i, v := range other.Coverage {
		a.Coverage[i] += v
	}
}
