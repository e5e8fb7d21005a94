package fastq

import (
	"github.com/toulouse-bioinfo/bio/seq"
)

// Phred quality encodings place the lowest possible code at 33 (Sanger,
// Illumina >=1.8) or at 59 (Solexa, Illumina <1.8, both offset 64). Any code
// below 59 therefore identifies offset 33 on its own.
const solexaFloor = 59

// QualOffset infers the Phred offset (33 or 64) used to encode qualities in
// the FASTQ file at path.
//
// Pass 1 scans every quality code and exits at the first code below 59,
// which only offset 33 can produce. Codes of non-'N' bases are meanwhile
// accumulated into a histogram. If no code settles the question, the code at
// the 30th percentile decides: above 84 means Q20 under offset 64 but an
// implausible Q61 under offset 33, so offset 64 is declared; otherwise 33.
//
// ok is false when the file contributes no quality codes at all.
func QualOffset(path string) (offset int, ok bool, err error) {
	sc, err := Open(path)
	if err != nil {
		return 0, false, err
	}
	defer sc.Close()
	var counts [256]int
	total := 0
	var rec seq.Sequence
	for sc.Scan(&rec) {
		n := len(rec.Residues)
		if len(rec.Quality) < n {
			n = len(rec.Quality)
		}
		for i := 0; i < n; i++ {
			q := rec.Quality[i]
			if q < solexaFloor {
				return 33, true, nil
			}
			if rec.Residues[i] != 'N' {
				total++
				counts[q]++
			}
		}
	}
	if err := sc.Err(); err != nil {
		return 0, false, err
	}
	if total == 0 {
		return 0, false, nil
	}
	idx := total * 30 / 100
	sum := 0
	for code, n := range counts {
		sum += n
		if sum >= idx {
			if code > 84 {
				return 64, true, nil
			}
			return 33, true, nil
		}
	}
	return 33, true, nil
}
