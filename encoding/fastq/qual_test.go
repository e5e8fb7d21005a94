package fastq_test

import (
	"path/filepath"
	"testing"

	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"

	"github.com/toulouse-bioinfo/bio/encoding/fastq"
)

func TestQualOffset(t *testing.T) {
	tests := []struct {
		name    string
		content string
		offset  int
		ok      bool
	}{
		// '!' is 33: far below the Solexa floor, offset 33 immediately.
		{"early-exit-33", "@r1\nACGT\n+\n!!!!\n", 33, true},
		// ':' is 58, one below the floor.
		{"code-58", "@r1\nACGT\n+\nZZZ:\n", 33, true},
		// 'Z' is 90: nothing below 59, 30th percentile above 84.
		{"high-codes-64", "@r1\nACGT\n+\nZZZZ\n", 64, true},
		// 'I' is 73: nothing below 59, percentile at or below 84.
		{"mid-codes-33", "@r1\nACGT\n+\nIIII\n", 33, true},
		// High codes on 'N' bases are not counted; nothing remains.
		{"all-n", "@r1\nNNNN\n+\nZZZZ\n", 0, false},
		{"empty", "", 0, false},
		{"no-quality", "@r1\n\n+\n\n", 0, false},
	}
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	for _, test := range tests {
		path := filepath.Join(tempDir, test.name+".fastq")
		writeFile(t, path, test.content)
		offset, ok, err := fastq.QualOffset(path)
		assert.NoError(t, err, test.name)
		expect.EQ(t, ok, test.ok, test.name)
		expect.EQ(t, offset, test.offset, test.name)
	}
}

func TestQualOffsetEarlyExitBeatsHistogram(t *testing.T) {
	// A single sub-59 code decides the file no matter how many high codes
	// surround it.
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	path := filepath.Join(tempDir, "mixed.fastq")
	content := "@r1\nACGT\n+\nZZZZ\n@r2\nACGT\n+\nZZ:Z\n"
	writeFile(t, path, content)
	offset, ok, err := fastq.QualOffset(path)
	assert.NoError(t, err)
	expect.True(t, ok)
	expect.EQ(t, offset, 33)
}

func TestQualOffsetGzip(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	path := filepath.Join(tempDir, "reads.fastq.gz")
	writeGzFile(t, path, "@r1\nACGT\n+\n!!!!\n")
	offset, ok, err := fastq.QualOffset(path)
	assert.NoError(t, err)
	expect.True(t, ok)
	expect.EQ(t, offset, 33)
}
