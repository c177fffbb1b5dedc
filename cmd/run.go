package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/schv/seqmap/aggregate"
	"github.com/schv/seqmap/genome/fasta"
	"github.com/schv/seqmap/genome/fastq"
	"github.com/schv/seqmap/report"
	"github.com/schv/seqmap/suffixarray"
)

func timedRun(msg string, f func()) time.Duration {
	log.Println(msg)
	start := time.Now()
	f()
	elapsed := time.Since(start)
	log.Println("Elapsed time:", elapsed)
	return elapsed
}

// Run executes one end-to-end mapping run per cfg: load the reference,
// build its suffix array, stream reads through the mapper, and render
// the report. It returns a non-nil error only for conditions main
// should report and exit non-zero for. genome/fasta and genome/fastq
// return errors for missing files and malformed FASTA content; a
// non-numeric length in a sibling .fai file or a corrupt gzip header
// panics instead.
func Run(cfg Config) error {
	fmt.Fprint(os.Stderr, Banner())

	if err := cfg.Mapper.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	start := time.Now()

	var ref []byte
	var loadErr error
	timedRun("Loading reference genome...", func() {
		ref, loadErr = fasta.Load(cfg.GenomePath)
	})
	if loadErr != nil {
		return fmt.Errorf("cannot load reference genome %s: %w", cfg.GenomePath, loadErr)
	}
	log.Printf("Genome size: %d bp", len(ref))

	var idx *suffixarray.Index
	timedRun("Building suffix array...", func() {
		idx = suffixarray.Build(ref)
	})

	reader, closeReads, err := fastq.Open(cfg.ReadsPath)
	if err != nil {
		return fmt.Errorf("cannot open reads file %s: %w", cfg.ReadsPath, err)
	}
	defer closeReads()

	agg := aggregate.New(ref, idx, cfg.Mapper)
	timedRun("Mapping reads...", func() {
		agg.Run(reader, cfg.MaxReads)
	})

	totalElapsed := time.Since(start)

	out := os.Stdout
	if cfg.ReportPath != "" {
		f, err := os.Create(cfg.ReportPath)
		if err != nil {
			return fmt.Errorf("cannot create report file %s: %w", cfg.ReportPath, err)
		}
		defer f.Close()
		out = f
	}

	return report.Write(out, report.Run{
		GenomePath:   cfg.GenomePath,
		ReadsPath:    cfg.ReadsPath,
		GenomeSize:   len(ref),
		Config:       cfg.Mapper,
		Stats:        agg.Stats,
		Coverage:     agg.Coverage,
		TotalRuntime: totalElapsed,
	})
}
