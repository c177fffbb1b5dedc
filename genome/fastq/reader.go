// Package fastq streams FASTQ records.
package fastq

import (
	"bufio"
	"io"

	"github.com/schv/seqmap/internal"
)

// Read is a single FASTQ record. Qual is kept for API completeness; the
// mapper never consults base qualities (see the Non-goals in the
// specification: no quality-score-aware alignment).
type Read struct {
	ID   string
	Seq  []byte
	Qual []byte
}

// Reader parses four-line FASTQ records from an underlying stream,
// transparently gzip-decompressing if the stream is gzip-compressed.
type Reader struct {
	scanner *bufio.Scanner
}

// NewReader wraps r, detecting gzip compression on the fly.
func NewReader(r io.Reader) *Reader {
	br := bufio.NewReaderSize(r, 64*1024)
	scanner := bufio.NewScanner(internal.DecompressIfGzip(br))
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	return &Reader{scanner: scanner}
}

// Open opens path for FASTQ reading.
func Open(path string) (*Reader, func() error, error) {
	f, err := internal.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return NewReader(f), f.Close, nil
}

// Next returns the next record. ok is false at a clean EOF, or when a
// truncated trailing record (fewer than four lines left in the stream) is
// encountered; in the latter case no error is surfaced, matching the
// reference implementation's "no more records" behavior for a partial
// record at EOF.
func (r *Reader) Next() (Read, bool) {
	idLine, ok := r.readLine()
	if !ok {
		return Read{}, false
	}
	seqLine, ok := r.readLine()
	if !ok {
		return Read{}, false
	}
	if _, ok := r.readLine(); !ok {
		return Read{}, false
	}
	qualLine, ok := r.readLine()
	if !ok {
		return Read{}, false
	}

	id := idLine
	if len(id) > 0 && id[0] == '@' {
		id = id[1:]
	}
	return Read{ID: id, Seq: []byte(seqLine), Qual: []byte(qualLine)}, true
}

func (r *Reader) readLine() (string, bool) {
	if !r.scanner.Scan() {
		return "", false
	}
	return r.scanner.Text(), true
}
