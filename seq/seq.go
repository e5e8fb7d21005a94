// Package seq defines the sequence record shared by the FASTA and FASTQ
// codecs, along with reverse-complement transforms over the IUPAC
// nucleotide alphabet.
package seq

import (
	"fmt"
	"strings"
)

// Sequence is a single sequence record. Quality is empty for FASTA records;
// for well-formed FASTQ records it has the same length as Residues.
type Sequence struct {
	ID          string
	Description string
	Residues    string
	Quality     string
}

// Complement tables cover the IUPAC ambiguity codes in both cases. The DNA
// table maps both 'T' and 'U' to 'A', so a DNA reverse complement of a
// sequence containing 'U' is not an involution.
var dnaComplement = map[byte]byte{
	'A': 'T', 'T': 'A', 'G': 'C', 'C': 'G', 'U': 'A', 'N': 'N',
	'a': 't', 't': 'a', 'g': 'c', 'c': 'g', 'u': 'a', 'n': 'n',
	'W': 'W', 'S': 'S', 'M': 'K', 'K': 'M', 'R': 'Y', 'Y': 'R', 'B': 'V', 'V': 'B', 'D': 'H', 'H': 'D',
	'w': 'w', 's': 's', 'm': 'k', 'k': 'm', 'r': 'y', 'y': 'r', 'b': 'v', 'v': 'b', 'd': 'h', 'h': 'd',
}

var rnaComplement = map[byte]byte{
	'A': 'U', 'T': 'A', 'G': 'C', 'C': 'G', 'U': 'A', 'N': 'N',
	'a': 'u', 't': 'a', 'g': 'c', 'c': 'g', 'u': 'a', 'n': 'n',
	'W': 'W', 'S': 'S', 'M': 'K', 'K': 'M', 'R': 'Y', 'Y': 'R', 'B': 'V', 'V': 'B', 'D': 'H', 'H': 'D',
	'w': 'w', 's': 's', 'm': 'k', 'k': 'm', 'r': 'y', 'y': 'r', 'b': 'v', 'v': 'b', 'd': 'h', 'h': 'd',
}

// InvalidSymbolError is returned by the reverse-complement transforms when a
// residue has no entry in the complement table.
type InvalidSymbolError struct {
	Symbol byte
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("seq: no complement for symbol %q", e.Symbol)
}

// DNARevComp returns a new record holding the DNA reverse complement of s.
// Quality, if present, is reversed so it stays positionally aligned with the
// reversed residues.
func (s Sequence) DNARevComp() (Sequence, error) {
	return s.revComp(dnaComplement)
}

// RNARevComp returns a new record holding the RNA reverse complement of s.
func (s Sequence) RNARevComp() (Sequence, error) {
	return s.revComp(rnaComplement)
}

func (s Sequence) revComp(table map[byte]byte) (Sequence, error) {
	n := len(s.Residues)
	rc := make([]byte, n)
	for i := 0; i < n; i++ {
		c, ok := table[s.Residues[n-1-i]]
		if !ok {
			return Sequence{}, &InvalidSymbolError{Symbol: s.Residues[n-1-i]}
		}
		rc[i] = c
	}
	out := Sequence{
		ID:          s.ID,
		Description: s.Description,
		Residues:    string(rc),
	}
	if s.Quality != "" {
		out.Quality = reverse(s.Quality)
	}
	return out, nil
}

func reverse(s string) string {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		b[i] = s[len(s)-1-i]
	}
	return string(b)
}

// ParseHeader splits a header line, with its leading '>' or '@' marker
// already removed, into the record id and optional description at the first
// whitespace run.
func ParseHeader(header string) (id, description string) {
	header = strings.TrimSpace(header)
	if i := strings.IndexAny(header, " \t"); i >= 0 {
		return header[:i], strings.TrimSpace(header[i+1:])
	}
	return header, ""
}

// Header formats the record's header fields as "id" or "id description".
func (s Sequence) Header() string {
	if s.Description != "" {
		return s.ID + " " + s.Description
	}
	return s.ID
}
