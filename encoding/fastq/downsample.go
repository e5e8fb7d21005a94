package fastq

import (
	"io"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/toulouse-bioinfo/bio/seq"
)

// Downsample copies read pairs from r1In and r2In to r1Out and r2Out,
// randomly selecting pairs at the given sampling rate. The selection is
// deterministic across runs (fixed seed). Records are re-emitted through the
// Writer, so separator-line text beyond "+" is not preserved.
func Downsample(rate float64, r1In, r2In io.Reader, r1Out, r2Out io.Writer) error {
	return downsample(rate, NewPairScanner(r1In, r2In), r1Out, r2Out)
}

// DownsamplePath is Downsample over file paths, decompressing the inputs
// transparently.
func DownsamplePath(rate float64, r1Path, r2Path string, r1Out, r2Out io.Writer) error {
	in, err := OpenPair(r1Path, r2Path)
	if err != nil {
		return err
	}
	defer in.Close()
	return downsample(rate, in, r1Out, r2Out)
}

func downsample(rate float64, in *PairScanner, r1Out, r2Out io.Writer) error {
	if rate < 0.0 || rate > 1.0 {
		return errors.New("rate must be between 0 and 1 (inclusive)")
	}
	random := rand.New(rand.NewSource(0))
	w1 := NewWriter(r1Out)
	w2 := NewWriter(r2Out)
	var rec1, rec2 seq.Sequence
	for in.Scan(&rec1, &rec2) {
		if random.Float64() >= rate {
			continue
		}
		if err := w1.Write(&rec1); err != nil {
			return errors.Wrap(err, "downsample: write R1")
		}
		if err := w2.Write(&rec2); err != nil {
			return errors.Wrap(err, "downsample: write R2")
		}
	}
	return in.Err()
}
