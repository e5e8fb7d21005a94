package fasta

import (
	"bufio"
	"strings"

	"github.com/pkg/errors"

	"github.com/toulouse-bioinfo/bio/fileio"
)

const probeHeaders = 10

// IsValid reports whether the file at path plausibly holds FASTA data: the
// first line must be a header, and no header may immediately follow another
// header. It examines at most the first 10 headers and converts every
// failure (including open errors) to false. An empty file is valid.
func IsValid(path string) bool {
	rc, err := fileio.Open(path)
	if err != nil {
		return false
	}
	defer rc.Close()
	b := bufio.NewScanner(rc)
	b.Buffer(make([]byte, 64*1024), maxLineSize)
	headers := 0
	prevIsHeader := false
	for headers < probeHeaders && b.Scan() {
		if strings.HasPrefix(b.Text(), ">") {
			if prevIsHeader {
				return false // header without a sequence body
			}
			prevIsHeader = true
			headers++
		} else {
			if headers == 0 {
				return false // file does not start with '>'
			}
			prevIsHeader = false
		}
	}
	return b.Err() == nil
}

// NumRecords returns the number of records in the file at path, counted as
// lines starting with '>'. Structure is not validated.
func NumRecords(path string) (int, error) {
	rc, err := fileio.Open(path)
	if err != nil {
		return 0, err
	}
	defer rc.Close()
	b := bufio.NewScanner(rc)
	b.Buffer(make([]byte, 64*1024), maxLineSize)
	n := 0
	for b.Scan() {
		if strings.HasPrefix(b.Text(), ">") {
			n++
		}
	}
	if err := b.Err(); err != nil {
		return 0, errors.Wrapf(err, "fasta: count %s", path)
	}
	return n, nil
}
