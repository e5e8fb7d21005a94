package fasta

import (
	"io"

	"github.com/toulouse-bioinfo/bio/fileio"
	"github.com/toulouse-bioinfo/bio/seq"
)

var newline = []byte{'\n'}

// Writer is a FASTA file writer. Residues are written on a single line per
// record, matching input fidelity rather than a canonical wrap width.
type Writer struct {
	w      io.Writer
	err    error
	closer io.Closer
}

// NewWriter constructs a Writer that writes records to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Create constructs a Writer on a new file at path, gzip-compressed iff the
// path ends in ".gz". The returned Writer owns the file handle; Close
// releases it.
func Create(path string) (*Writer, error) {
	wc, err := fileio.Create(path)
	if err != nil {
		return nil, err
	}
	return &Writer{w: wc, closer: wc}, nil
}

// Append is Create on an existing file, keeping its contents.
func Append(path string) (*Writer, error) {
	wc, err := fileio.Append(path)
	if err != nil {
		return nil, err
	}
	return &Writer{w: wc, closer: wc}, nil
}

// Write writes rec as a header line and one unwrapped residue line. The
// record's Quality is ignored.
func (w *Writer) Write(rec *seq.Sequence) error {
	w.writeln(">" + rec.Header())
	w.writeln(rec.Residues)
	return w.err
}

// Close flushes and releases the underlying file, if the Writer owns one.
func (w *Writer) Close() error {
	if w.closer == nil {
		return w.err
	}
	err := w.closer.Close()
	w.closer = nil
	if w.err != nil {
		return w.err
	}
	return err
}

func (w *Writer) writeln(line string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, line)
	if w.err == nil {
		_, w.err = w.w.Write(newline)
	}
}
