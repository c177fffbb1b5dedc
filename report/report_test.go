package report

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/schv/seqmap/aggregate"
	"github.com/schv/seqmap/mapper"
)

func TestWriteContainsExpectedSections(t *testing.T) {
	cov := aggregate.NewCoverage(10)
	for i := 0; i < 5; i++ {
		cov[i] = 1
	}

	r := Run{
		GenomePath: "ref.fa",
		ReadsPath:  "reads.fq",
		GenomeSize: 10,
		Config:     mapper.DefaultConfig(),
		Stats: aggregate.Stats{
			TotalReads:    100,
			MappedReads:   90,
			UniqueMapped:  80,
			MultiMapped:   10,
			TotalEditDist: 45,
		},
		Coverage:     cov,
		TotalRuntime: time.Second,
	}

	var sb strings.Builder
	if err := Write(&sb, r); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := sb.String()

	for _, want := range []string{
		"=== Genome Mapping Report ===",
		"Reference: ref.fa",
		"Genome size: 10 bp",
		"Reads file: reads.fq",
		"Total reads processed: 100",
		"Mapped reads: 90",
		"Uniquely mapped: 80",
		"Multi-mapped: 10",
		"Average edit distance: 0.50",
		"Covered bases: 5",
		"Depth standard deviation:",
		"Total runtime: 1.0 seconds",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\nfull report:\n%s", want, out)
		}
	}
}

func TestWritePropagatesUnderlyingError(t *testing.T) {
	r := Run{Stats: aggregate.Stats{}, Coverage: aggregate.NewCoverage(1)}
	if err := Write(failingWriter{}, r); err == nil {
		t.Fatal("expected error from a failing writer")
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errWrite
}

var errWrite = errors.New("forced failure")
