// Package internal collects small file and parsing helpers shared by the
// genome I/O and CLI packages, in the panics-in-place-of-errors style the
// rest of this codebase avoids at API boundaries but leans on internally
// for conditions that indicate a bug rather than a runtime condition.
package internal

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// Open opens path for sequential reading and advises the kernel that
// access will be sequential, so read-ahead is maximized for the
// single-pass scans the FASTA and FASTQ readers perform.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	_ = unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_SEQUENTIAL)
	return f, nil
}

// Close closes f, panicking on failure. A failing Close on a read-only
// file is not something a caller can meaningfully recover from.
func Close(f *os.File) {
	if err := f.Close(); err != nil {
		panic(err)
	}
}

// DecompressIfGzip peeks at the first two bytes of br and, if they are
// the gzip magic number, wraps br in a gzip.Reader; otherwise it returns
// br unchanged. It replaces the reference codebase's bespoke BGZF reader
// (see DESIGN.md): a plain gzip stream is all FASTA/FASTQ inputs need,
// since this mapper only ever scans a file once, start to finish, and
// never needs BGZF's block-level random access.
func DecompressIfGzip(br *bufio.Reader) io.Reader {
	magic, err := br.Peek(2)
	if err != nil || len(magic) < 2 || magic[0] != 0x1f || magic[1] != 0x8b {
		return br
	}
	gr, err := gzip.NewReader(br)
	if err != nil {
		panic(err)
	}
	return gr
}
