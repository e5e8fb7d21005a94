// bio-seqinfo reports the format of sequence files, optionally with record
// counts and the inferred quality offset.
//
// Usage:
//
//	bio-seqinfo [-count] [-head N] file...
//
// Output is one tab-separated line per file: path, format ("fastq" or
// "fasta"), and with -count the record count plus, for FASTQ, the inferred
// Phred offset ("?" when undeterminable). Gzipped inputs are detected by
// content.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/grailbio/base/log"

	"github.com/toulouse-bioinfo/bio/encoding/fasta"
	"github.com/toulouse-bioinfo/bio/encoding/fastq"
	"github.com/toulouse-bioinfo/bio/encoding/seqio"
	"github.com/toulouse-bioinfo/bio/seq"
)

var (
	countFlag = flag.Bool("count", false, "count records and, for FASTQ, infer the quality offset")
	headFlag  = flag.Int("head", 0, "print the ids of the first N records")
)

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		log.Fatal("usage: bio-seqinfo [-count] [-head N] file...")
	}
	for _, path := range flag.Args() {
		if err := report(os.Stdout, path); err != nil {
			log.Fatalf("%s: %v", path, err)
		}
	}
}

func report(w io.Writer, path string) error {
	format := seqio.Detect(path)
	if format == seqio.Unknown {
		return &seqio.UnknownFormatError{Path: path}
	}
	fmt.Fprintf(w, "%s\t%s", path, format)
	if *countFlag {
		if err := reportCounts(w, path, format); err != nil {
			return err
		}
	}
	fmt.Fprintln(w)
	if *headFlag > 0 {
		return head(w, path, *headFlag)
	}
	return nil
}

func reportCounts(w io.Writer, path string, format seqio.Format) error {
	switch format {
	case seqio.FASTQ:
		n, err := fastq.NumRecords(path)
		if err != nil {
			return err
		}
		offset, ok, err := fastq.QualOffset(path)
		if err != nil {
			return err
		}
		qual := "?"
		if ok {
			qual = fmt.Sprint(offset)
		}
		fmt.Fprintf(w, "\t%d\tphred+%s", n, qual)
	case seqio.FASTA:
		n, err := fasta.NumRecords(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\t%d", n)
	}
	return nil
}

func head(w io.Writer, path string, n int) error {
	sc, err := seqio.Open(path)
	if err != nil {
		return err
	}
	defer sc.Close()
	var rec seq.Sequence
	for i := 0; i < n && sc.Scan(&rec); i++ {
		fmt.Fprintf(w, "  %s\t%d bases\n", rec.ID, len(rec.Residues))
	}
	return sc.Err()
}
