// Package seqio picks the right sequence codec for a file by probing its
// content.
package seqio

import (
	"fmt"

	"github.com/toulouse-bioinfo/bio/encoding/fasta"
	"github.com/toulouse-bioinfo/bio/encoding/fastq"
	"github.com/toulouse-bioinfo/bio/seq"
)

// Scanner is the record iterator shared by the FASTA and FASTQ codecs.
type Scanner interface {
	// Scan reads the next record into rec, reporting whether one was read.
	Scan(rec *seq.Sequence) bool
	// Err returns the scanning error, if any; clean end of input is nil.
	Err() error
	// Close releases the underlying file.
	Close() error
}

// Format identifies a sequence file format.
type Format int

const (
	Unknown Format = iota
	FASTQ
	FASTA
)

func (f Format) String() string {
	switch f {
	case FASTQ:
		return "fastq"
	case FASTA:
		return "fasta"
	}
	return "unknown"
}

// UnknownFormatError is returned by Open when neither codec's prober accepts
// the file.
type UnknownFormatError struct {
	Path string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("seqio: %s: format not recognized as FASTQ or FASTA", e.Path)
}

// Detect probes the file at path with each codec's validator, FASTQ first.
func Detect(path string) Format {
	if fastq.IsValid(path) {
		return FASTQ
	}
	if fasta.IsValid(path) {
		return FASTA
	}
	return Unknown
}

// Open probes the file at path and returns the matching codec's scanner.
// FASTQ is probed before FASTA, so an empty file is handed to the FASTQ
// codec, which reports clean end of input on the first Scan.
func Open(path string) (Scanner, error) {
	switch Detect(path) {
	case FASTQ:
		return fastq.Open(path)
	case FASTA:
		return fasta.Open(path)
	}
	return nil, &UnknownFormatError{Path: path}
}
