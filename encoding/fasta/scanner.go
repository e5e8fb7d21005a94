// Package fasta provides a streaming reader and writer for FASTA files
// (https://en.wikipedia.org/wiki/FASTA_format), format probing, and an
// in-memory random-access view. Briefly, FASTA files consist of a number of
// named sequences whose residues may be interrupted by newlines:
//
//	>chr7 optional description
//	ACGTAC
//	GAGGAC
//	>chr8
//	ACGT
package fasta

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/toulouse-bioinfo/bio/fileio"
	"github.com/toulouse-bioinfo/bio/seq"
)

// maxLineSize allows whole-chromosome sequences written on a single line.
const maxLineSize = 64 * 1024 * 1024

var errEOF = errors.New("eof")

// Scanner reads FASTA records one at a time. Because records are delimited
// by the next header rather than a fixed line count, the Scanner holds one
// line of lookahead: the header of the record after the one most recently
// returned. Scanners are not threadsafe.
type Scanner struct {
	b       *bufio.Scanner
	path    string
	line    int
	pending string // next record's header line, '>' included
	primed  bool
	eof     bool
	err     error
	closer  io.Closer
}

// NewScanner constructs a Scanner reading raw FASTA data from r.
func NewScanner(r io.Reader) *Scanner {
	b := bufio.NewScanner(r)
	b.Buffer(make([]byte, 64*1024), maxLineSize)
	return &Scanner{b: b}
}

// Open constructs a Scanner reading from the file at path, decompressing
// transparently. The returned Scanner owns the file handle; Close releases
// it.
func Open(path string) (*Scanner, error) {
	rc, err := fileio.Open(path)
	if err != nil {
		return nil, err
	}
	s := NewScanner(rc)
	s.path = path
	s.closer = rc
	return s, nil
}

// Scan reads the next record into rec. Body lines are stripped and
// concatenated, so wrapping width does not matter. Quality is always
// cleared.
func (s *Scanner) Scan(rec *seq.Sequence) bool {
	if s.err != nil {
		return false
	}
	if !s.primed {
		s.primed = true
		if !s.scanLine() {
			if s.err == nil {
				s.eof = true
			}
			return false
		}
		s.pending = strings.TrimSpace(s.b.Text())
	}
	if s.eof && s.pending == "" {
		s.err = errEOF
		return false
	}
	header := s.pending
	var body strings.Builder
	for {
		if !s.scanLine() {
			if s.err != nil {
				return false
			}
			s.eof = true
			s.pending = ""
			break
		}
		// Only a '>' in column one opens a record; after leading
		// whitespace it is body text.
		line := s.b.Text()
		if strings.HasPrefix(line, ">") {
			s.pending = strings.TrimSpace(line)
			break
		}
		body.WriteString(strings.TrimSpace(line))
	}
	// The '>' marker is dropped without being checked; only IsValid
	// enforces it. One rune, not one byte, in case the marker position
	// holds something else.
	_, markerSize := utf8.DecodeRuneInString(header)
	rec.ID, rec.Description = seq.ParseHeader(header[markerSize:])
	if rec.ID == "" {
		return s.failf("record header holds no id")
	}
	rec.Residues = body.String()
	rec.Quality = ""
	return true
}

// Err returns the scanning error, if any. A clean end of input is not an
// error.
func (s *Scanner) Err() error {
	if s.err == errEOF {
		return nil
	}
	return s.err
}

// Close releases the underlying file, if the Scanner owns one. It is safe to
// call more than once.
func (s *Scanner) Close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}

func (s *Scanner) scanLine() bool {
	if s.b.Scan() {
		s.line++
		return true
	}
	if err := s.b.Err(); err != nil {
		s.err = errors.Wrapf(err, "fasta: %s: line %d", s.where(), s.line)
	}
	return false
}

func (s *Scanner) failf(format string, args ...interface{}) bool {
	prefix := []interface{}{s.where(), s.line}
	s.err = errors.Errorf("fasta: %s: line %d: "+format, append(prefix, args...)...)
	return false
}

func (s *Scanner) where() string {
	if s.path == "" {
		return "input"
	}
	return s.path
}
