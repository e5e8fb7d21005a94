package fasta

import (
	"io"

	"github.com/pkg/errors"

	"github.com/toulouse-bioinfo/bio/fileio"
	"github.com/toulouse-bioinfo/bio/seq"
)

// Fasta provides random access to a set of named sequences held in memory.
type Fasta interface {
	// Get returns a substring of the named sequence over the 0-based
	// half-open interval [start, end).
	Get(seqName string, start, end uint64) (string, error)

	// Len returns the length of the named sequence.
	Len(seqName string) (uint64, error)

	// SeqNames returns the names of all sequences, in order of appearance.
	SeqNames() []string
}

type fasta struct {
	seqs     map[string]string
	seqNames []string
}

// New reads all FASTA data from r into memory.
func New(r io.Reader) (Fasta, error) {
	f := &fasta{seqs: make(map[string]string)}
	sc := NewScanner(r)
	var rec seq.Sequence
	for sc.Scan(&rec) {
		if _, ok := f.seqs[rec.ID]; ok {
			return nil, errors.Errorf("fasta: duplicate sequence name: %s", rec.ID)
		}
		f.seqs[rec.ID] = rec.Residues
		f.seqNames = append(f.seqNames, rec.ID)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "couldn't read FASTA data")
	}
	return f, nil
}

// Read is New over a file path, decompressing transparently.
func Read(path string) (Fasta, error) {
	rc, err := fileio.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return New(rc)
}

// Get implements Fasta.Get().
func (f *fasta) Get(seqName string, start, end uint64) (string, error) {
	s, ok := f.seqs[seqName]
	if !ok {
		return "", errors.Errorf("sequence not found: %s", seqName)
	}
	if end <= start {
		return "", errors.Errorf("start must be less than end")
	}
	if end > uint64(len(s)) {
		return "", errors.Errorf("invalid query range %d - %d for sequence %s with length %d",
			start, end, seqName, len(s))
	}
	return s[start:end], nil
}

// Len implements Fasta.Len().
func (f *fasta) Len(seqName string) (uint64, error) {
	s, ok := f.seqs[seqName]
	if !ok {
		return 0, errors.Errorf("sequence not found: %s", seqName)
	}
	return uint64(len(s)), nil
}

// SeqNames implements Fasta.SeqNames().
func (f *fasta) SeqNames() []string {
	return f.seqNames
}
