// Package fileio opens sequence files with transparent gzip handling.
//
// On the read path gzip is detected by content (the two magic bytes), never
// by file name. On the write path gzip is selected by the ".gz" suffix
// alone. The asymmetry is deliberate: a freshly created file has no content
// to sniff.
package fileio

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var err error
	for _, c := range r.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

type writeCloser struct {
	io.Writer
	closers []io.Closer
}

func (w *writeCloser) Close() error {
	var err error
	for _, c := range w.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open opens path for reading, decompressing transparently if the file
// starts with the gzip magic bytes.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := io.ReadFull(f, sig[:])
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "fileio: open %s", path)
	}
	if n == 2 && sig[0] == 0x1f && sig[1] == 0x8b {
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, errors.Wrapf(err, "fileio: open %s", path)
		}
		return &readCloser{Reader: zr, closers: []io.Closer{zr, f}}, nil
	}
	return f, nil
}

// Create opens path for writing, truncating any existing file. Output is
// gzip-compressed iff path ends in ".gz".
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return wrapWriter(f, path), nil
}

// Append opens path for appending, creating it if needed. On a ".gz" path a
// new gzip member is started; members concatenate into one valid stream.
func Append(path string) (io.WriteCloser, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return nil, err
	}
	return wrapWriter(f, path), nil
}

func wrapWriter(f *os.File, path string) io.WriteCloser {
	if !strings.HasSuffix(path, ".gz") {
		return f
	}
	zw := gzip.NewWriter(f)
	return &writeCloser{Writer: zw, closers: []io.Closer{zw, f}}
}
