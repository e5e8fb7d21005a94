// Package fastq provides a streaming reader and writer for FASTQ files
// (https://en.wikipedia.org/wiki/FASTQ_format), plus format probing and
// quality-encoding inference.
package fastq

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/toulouse-bioinfo/bio/fileio"
	"github.com/toulouse-bioinfo/bio/seq"
)

// maxLineSize allows very long single-line sequences, as produced by long
// read platforms.
const maxLineSize = 64 * 1024 * 1024

var errEOF = errors.New("eof")

// Scanner reads FASTQ records one at a time. The Scan method fills the next
// record, returning a boolean indicating whether the read succeeded. Once
// Scan returns false, it never returns true again; the caller should then
// check Err to distinguish end of input from failure. Scanners are not
// threadsafe.
//
// Scanner checks only the 4-line record structure. In particular it does not
// compare sequence and quality lengths; use IsValid to probe structure.
type Scanner struct {
	b      *bufio.Scanner
	path   string
	line   int
	err    error
	closer io.Closer
}

// NewScanner constructs a Scanner reading raw FASTQ data from r.
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

// Scan reads the next record into rec. A truncated record (end of input
// after the header but before the quality line) is an error, not a short
// result.
func (s *Scanner) Scan(rec *seq.Sequence) bool {
	if s.err != nil {
		return false
	}
	if !s.b.Scan() {
		if s.err = s.b.Err(); s.err == nil {
			s.err = errEOF
		}
		return false
	}
	s.line++
	header := strings.TrimSpace(s.b.Text())
	if header == "" {
		return s.failf("empty record header")
	}
	// The leading '@' is dropped without being checked; only IsValid
	// enforces it. One rune, not one byte, in case the marker position
	// holds something else.
	_, markerSize := utf8.DecodeRuneInString(header)
	rec.ID, rec.Description = seq.ParseHeader(header[markerSize:])
	if rec.ID == "" {
		return s.failf("record header holds no id")
	}
	if !s.scanLine() {
		if s.err == nil {
			s.failf("truncated record: missing sequence line")
		}
		return false
	}
	rec.Residues = strings.TrimSpace(s.b.Text())
	if !s.scanLine() {
		if s.err == nil {
			s.failf("truncated record: missing separator line")
		}
		return false
	}
	if !s.scanLine() {
		if s.err == nil {
			s.failf("truncated record: missing quality line")
		}
		return false
	}
	rec.Quality = strings.TrimSpace(s.b.Text())
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
		s.err = errors.Wrapf(err, "fastq: %s: line %d", s.where(), s.line)
	}
	return false
}

func (s *Scanner) failf(format string, args ...interface{}) bool {
	prefix := []interface{}{s.where(), s.line}
	s.err = errors.Errorf("fastq: %s: line %d: "+format, append(prefix, args...)...)
	return false
}

func (s *Scanner) where() string {
	if s.path == "" {
		return "input"
	}
	return s.path
}

// ErrDiscordant is returned when two underlying FASTQ files hold different
// numbers of reads.
var ErrDiscordant = errors.New("discordant FASTQ pair")

// PairScanner composes two Scanners to iterate over a pair of FASTQ streams
// in lockstep.
type PairScanner struct {
	r1, r2 *Scanner
	err    error
}

// NewPairScanner creates a PairScanner from the provided R1 and R2 readers.
func NewPairScanner(r1, r2 io.Reader) *PairScanner {
	return &PairScanner{r1: NewScanner(r1), r2: NewScanner(r2)}
}

// OpenPair creates a PairScanner over the files at the two paths.
func OpenPair(path1, path2 string) (*PairScanner, error) {
	s1, err := Open(path1)
	if err != nil {
		return nil, err
	}
	s2, err := Open(path2)
	if err != nil {
		s1.Close()
		return nil, err
	}
	return &PairScanner{r1: s1, r2: s2}, nil
}

// Scan reads the next read pair into rec1, rec2. Once Scan returns false,
// Err reports whether iteration stopped cleanly, on a parse failure, or on a
// length mismatch between the two inputs.
func (p *PairScanner) Scan(rec1, rec2 *seq.Sequence) bool {
	ok1 := p.r1.Scan(rec1)
	ok2 := p.r2.Scan(rec2)
	if ok1 != ok2 && p.r1.Err() == nil && p.r2.Err() == nil {
		p.err = ErrDiscordant
	}
	return ok1 && ok2
}

// Err returns the scanning error, if any.
func (p *PairScanner) Err() error {
	if err := p.r1.Err(); err != nil {
		return err
	}
	if err := p.r2.Err(); err != nil {
		return err
	}
	return p.err
}

// Close releases both underlying files.
func (p *PairScanner) Close() error {
	err := p.r1.Close()
	if cerr := p.r2.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
