// Package cmd implements the seqmap command-line front end: flag
// parsing, the startup banner, and the phase-timed driver that ties
// genome loading, suffix array construction, read mapping, and report
// rendering together.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/google/uuid"

	"github.com/schv/seqmap/mapper"
	"github.com/schv/seqmap/utils"
)

// ProgramMessage is the first line printed when the seqmap binary runs.
var ProgramMessage string

func init() {
	ProgramMessage = fmt.Sprint(
		"\n", utils.ProgramName, " version ", utils.ProgramVersion,
		" compiled with ", runtime.Version(),
		" - see ", utils.ProgramURL, " for more information.\n",
	)
}

// HelpMessage documents the command's flags, matching the reference
// mapper's -h output.
const HelpMessage = "Usage: seqmap [options]\n" +
	"  -g <file>     Reference genome (FASTA) (default: data/GCF_000005845.2_ASM584v2_genomic.fna)\n" +
	"  -r <file>     Reads file (FASTQ) (default: data/ERR022075_1.fastq)\n" +
	"  -n <num>      Max reads to process (-1 = all) (default: -1)\n" +
	"  -s <len>      Seed length (default: 20)\n" +
	"  -e <num>      Max errors allowed (default: 3)\n" +
	"  -seeds <num>  Number of seeds per read (default: 3)\n" +
	"  -hits <num>   Max suffix array hits kept per seed (default: 100)\n" +
	"  -o <file>     Report output file (default: stdout)\n"

// Config holds the fully parsed command line: the run's I/O paths and
// its mapper.Config, in one place so main can validate it once before
// starting any phase.
type Config struct {
	GenomePath string
	ReadsPath  string
	ReportPath string
	MaxReads   int64

	Mapper mapper.Config
}

// ParseFlags parses args (excluding the program name) into a Config.
// It prints HelpMessage and exits with status 0 for -h, and returns an
// error for any other flag parsing failure so the caller can decide the
// exit status.
func ParseFlags(args []string) (Config, error) {
	fs := flag.NewFlagSet("seqmap", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	cfg := Config{Mapper: mapper.DefaultConfig()}
	fs.StringVar(&cfg.GenomePath, "g", "data/GCF_000005845.2_ASM584v2_genomic.fna", "reference genome (FASTA)")
	fs.StringVar(&cfg.ReadsPath, "r", "data/ERR022075_1.fastq", "reads file (FASTQ)")
	fs.StringVar(&cfg.ReportPath, "o", "", "report output file (default: stdout)")
	fs.Int64Var(&cfg.MaxReads, "n", -1, "max reads to process (-1 = all)")
	fs.IntVar(&cfg.Mapper.SeedLen, "s", mapper.DefaultConfig().SeedLen, "seed length")
	fs.IntVar(&cfg.Mapper.MaxErrors, "e", mapper.DefaultConfig().MaxErrors, "max errors allowed")
	fs.IntVar(&cfg.Mapper.NumSeeds, "seeds", mapper.DefaultConfig().NumSeeds, "number of seeds per read")
	fs.IntVar(&cfg.Mapper.MaxHitsPerSeed, "hits", mapper.DefaultConfig().MaxHitsPerSeed, "max suffix array hits kept per seed")

	fs.Usage = func() { fmt.Fprint(os.Stderr, HelpMessage) }

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unrecognized arguments: %v", fs.Args())
	}
	cfg.Mapper.BandMaxDist = mapper.DefaultConfig().BandMaxDist
	return cfg, nil
}

// Banner returns the startup message printed to stderr before a run,
// tagged with a fresh run identifier so concurrent runs' log lines can
// be told apart. The identifier does not appear in the report.
func Banner() string {
	return fmt.Sprint(ProgramMessage, "run ", uuid.New().String(), "\n")
}
