// Package report renders a mapping run's statistics as the textual
// summary printed at the end of a seqmap invocation.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/schv/seqmap/aggregate"
	"github.com/schv/seqmap/mapper"
)

// Run carries everything Write needs to render a report; callers
// assemble it from a completed aggregate.Aggregator and the
// configuration the run used.
type Run struct {
	GenomePath string
	ReadsPath  string
	GenomeSize int

	Config mapper.Config
	Stats  aggregate.Stats

	Coverage aggregate.Coverage

	TotalRuntime time.Duration
}

// Write renders r to w in the field order and wording of the reference
// mapper's report, with one addition: a coverage-depth standard
// deviation line appended to the coverage section. Suffix array build
// time is a diagnostic, not a report field (see original_source/mapper.cpp),
// and is logged to stderr by cmd.Run instead.
func Write(w io.Writer, r Run) error {
	bw := newErrWriter(w)

	bw.printf("=== Genome Mapping Report ===\n")
	bw.printf("\n")
	bw.printf("Algorithms used:\n")
	bw.printf("  - Suffix array O(n log n) construction\n")
	bw.printf("  - Seed-and-extend with %d-mer seeds\n", r.Config.SeedLen)
	bw.printf("  - Band-limited edit distance (max %d errors)\n", r.Config.MaxErrors)
	bw.printf("\n")
	bw.printf("Reference: %s\n", r.GenomePath)
	bw.printf("Genome size: %d bp\n", r.GenomeSize)
	bw.printf("\n")
	bw.printf("Reads file: %s\n", r.ReadsPath)
	bw.printf("Total reads processed: %d\n", r.Stats.TotalReads)
	bw.printf("\n")
	bw.printf("Mapping statistics:\n")
	bw.printf("  Mapped reads: %d (%.2f%%)\n", r.Stats.MappedReads, r.Stats.MappedPercent())
	bw.printf("  Unmapped reads: %d (%.2f%%)\n", r.Stats.TotalReads-r.Stats.MappedReads, r.Stats.UnmappedPercent())
	bw.printf("\n")
	bw.printf("  Uniquely mapped: %d (%.2f%%)\n", r.Stats.UniqueMapped, r.Stats.UniquePercent())
	bw.printf("  Multi-mapped: %d (%.2f%%)\n", r.Stats.MultiMapped, r.Stats.MultiPercent())
	bw.printf("\n")
	bw.printf("Alignment quality:\n")
	bw.printf("  Average edit distance: %.2f\n", r.Stats.AverageEditDistance())
	bw.printf("\n")
	bw.printf("Genome coverage (from uniquely mapped reads):\n")
	bw.printf("  Covered bases: %d (%.2f%%)\n", r.Coverage.CoveredBases(), r.Coverage.CoveredFraction()*100)
	bw.printf("  Average depth: %.2fx\n", r.Coverage.AverageDepth())
	bw.printf("  Depth standard deviation: %.2fx\n", r.Coverage.DepthStdDev())
	bw.printf("\n")
	bw.printf("Total runtime: %.1f seconds\n", r.TotalRuntime.Seconds())

	return bw.err
}

// errWriter collapses a sequence of Fprintf calls into one error check,
// in place of checking each write individually.
type errWriter struct {
	w   io.Writer
	err error
}

func newErrWriter(w io.Writer) *errWriter {
	return &errWriter{w: w}
}

func (e *errWriter) printf(format string, a ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, a...)
}
