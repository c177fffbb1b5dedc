// Package fasta loads a reference genome as a single concatenated byte
// string, the form the suffix array and mapper operate on.
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/schv/seqmap/internal"
)

// FaiEntry is the layout of one record of a samtools-style .fai index.
// ParseFai reads only each record's length column, and Load uses the
// total only to preallocate the reference buffer; the mapper never
// performs contig-qualified random access into the reference.
type FaiEntry struct {
	Length    int64
	Offset    int64
	LineBases int32
	LineWidth int32
}

// ParseFai parses a .fai file, returning the total reference length it
// reports across all contigs.
func ParseFai(path string) (int64, error) {
	f, err := internal.Open(path)
	if err != nil {
		return 0, err
	}
	defer internal.Close(f)

	var total int64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) != 5 {
			return 0, fmt.Errorf("fasta: malformed fai record %q in %s", scanner.Text(), path)
		}
		total += internal.ParseInt(fields[1], 10, 64)
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return total, nil
}

// Load reads the FASTA file at path and returns its sequence lines
// concatenated verbatim, in order, with header lines (beginning with
// '>') discarded and no case or ambiguity-code normalization. If a
// sibling path+".fai" exists, its total reported length is used to
// preallocate the result buffer once rather than letting it grow via
// repeated reallocation.
func Load(path string) ([]byte, error) {
	capacity := 0
	if n, err := ParseFai(path + ".fai"); err == nil {
		capacity = int(n)
	}

	f, err := internal.Open(path)
	if err != nil {
		return nil, err
	}
	defer internal.Close(f)

	br := bufio.NewReaderSize(f, 64*1024)
	scanner := bufio.NewScanner(internal.DecompressIfGzip(br))
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<24)

	ref := make([]byte, 0, capacity)
	sawHeader := false
	for scanner.Scan() {
		line := stripCR(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			sawHeader = true
			continue
		}
		ref = append(ref, line...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !sawHeader {
		return nil, fmt.Errorf("fasta: %s has no header line", path)
	}
	if len(ref) == 0 {
		return nil, fmt.Errorf("fasta: %s contains no sequence data", path)
	}
	return ref, nil
}

// stripCR trims a trailing carriage return some FASTA files carry on
// Windows-style line endings; bufio.Scanner's default split function
// already strips the newline itself.
func stripCR(b []byte) []byte {
	return bytes.TrimRight(b, "\r")
}
