package fileio_test

import (
	"bytes"
	"compress/gzip"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/grailbio/testutil"
	"github.com/stretchr/testify/require"

	"github.com/toulouse-bioinfo/bio/fileio"
)

func TestRoundTrip(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	for _, name := range []string{"plain.fa", "compressed.fa.gz"} {
		path := filepath.Join(tempDir, name)
		w, err := fileio.Create(path)
		require.NoError(t, err)
		_, err = w.Write([]byte(">s1\nACGT\n"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		r, err := fileio.Open(path)
		require.NoError(t, err)
		data, err := ioutil.ReadAll(r)
		require.NoError(t, err)
		require.NoError(t, r.Close())
		require.Equal(t, ">s1\nACGT\n", string(data), name)
	}
}

func TestCreateGzipWritesGzip(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	path := filepath.Join(tempDir, "out.fastq.gz")
	w, err := fileio.Create(path)
	require.NoError(t, err)
	_, err = w.Write([]byte("@r1\nACGT\n+\nIIII\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	raw, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	require.True(t, len(raw) > 2 && raw[0] == 0x1f && raw[1] == 0x8b, "missing gzip magic")
}

func TestOpenSniffsContentNotSuffix(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	// Gzipped content behind a suffix-less name must still decompress.
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(">s1\nACGT\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	path := filepath.Join(tempDir, "nosuffix")
	require.NoError(t, ioutil.WriteFile(path, buf.Bytes(), 0600))

	r, err := fileio.Open(path)
	require.NoError(t, err)
	data, err := ioutil.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	require.Equal(t, ">s1\nACGT\n", string(data))
}

func TestAppend(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	for _, name := range []string{"a.fa", "a.fa.gz"} {
		path := filepath.Join(tempDir, name)
		w, err := fileio.Create(path)
		require.NoError(t, err)
		_, err = w.Write([]byte(">s1\nAC\n"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		// A second gzip member must decompress as a continuation.
		w, err = fileio.Append(path)
		require.NoError(t, err)
		_, err = w.Write([]byte(">s2\nGT\n"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		r, err := fileio.Open(path)
		require.NoError(t, err)
		data, err := ioutil.ReadAll(r)
		require.NoError(t, err)
		require.NoError(t, r.Close())
		require.Equal(t, ">s1\nAC\n>s2\nGT\n", string(data), name)
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := fileio.Open("/nonexistent/path/x.fa")
	require.Error(t, err)
}

func TestOpenTinyPlainFile(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	path := filepath.Join(tempDir, "tiny")
	require.NoError(t, ioutil.WriteFile(path, []byte("x"), 0600))
	r, err := fileio.Open(path)
	require.NoError(t, err)
	data, err := ioutil.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	require.Equal(t, "x", string(data))
}
