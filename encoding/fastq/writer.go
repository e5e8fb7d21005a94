package fastq

import (
	"io"

	"github.com/toulouse-bioinfo/bio/fileio"
	"github.com/toulouse-bioinfo/bio/seq"
)

var newline = []byte{'\n'}

// Writer is a FASTQ file writer.
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

// Write writes rec as a 4-line FASTQ record. The separator line is always a
// bare "+". The record's Quality must be set and match Residues in length;
// Write does not check either.
func (w *Writer) Write(rec *seq.Sequence) error {
	w.writeln("@" + rec.Header())
	w.writeln(rec.Residues)
	w.writeln("+")
	w.writeln(rec.Quality)
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
