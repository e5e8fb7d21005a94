package fastq

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/toulouse-bioinfo/bio/fileio"
)

const (
	linesPerRecord = 4
	probeRecords   = 10
)

var seqLineRE = regexp.MustCompile(`^[A-Za-z]*$`)

// IsValid reports whether the file at path plausibly holds FASTQ data. It
// probes at most the first 10 records, so cost is bounded regardless of file
// size, and converts every failure (including open errors) to false. An
// empty file is valid.
//
// Unlike Scan, IsValid checks that each record's quality and sequence lines
// have equal stripped lengths.
func IsValid(path string) bool {
	rc, err := fileio.Open(path)
	if err != nil {
		return false
	}
	defer rc.Close()
	b := bufio.NewScanner(rc)
	b.Buffer(make([]byte, 64*1024), maxLineSize)
	for i := 0; i < probeRecords; i++ {
		if !b.Scan() {
			// Clean end of input at a record boundary.
			return b.Err() == nil
		}
		if !strings.HasPrefix(b.Text(), "@") {
			return false
		}
		if !b.Scan() { // truncated
			return false
		}
		seqLine := strings.TrimSpace(b.Text())
		if !seqLineRE.MatchString(seqLine) {
			return false
		}
		if !b.Scan() { // separator must exist, content unchecked
			return false
		}
		qualLine := ""
		if b.Scan() {
			qualLine = strings.TrimSpace(b.Text())
		} else if b.Err() != nil {
			return false
		}
		if len(seqLine) != len(qualLine) {
			return false
		}
	}
	return true
}

// NumRecords returns the number of records in the file at path, computed as
// the line count divided by 4. Structure is not validated; a trailing
// partial record is not counted.
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
		n++
	}
	if err := b.Err(); err != nil {
		return 0, errors.Wrapf(err, "fastq: count %s", path)
	}
	return n / linesPerRecord, nil
}
