package netx

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, total int64, src io.Reader) []int {
	t.Helper()
	var got []int
	pr := NewProgressReader(src, total, func(p int) { got = append(got, p) })
	_, err := io.Copy(io.Discard, pr)
	require.NoError(t, err)
	return got
}

func TestProgressReader_OneByteAtATime(t *testing.T) {
	data := bytes.Repeat([]byte("x"), 200)
	got := collect(t, int64(len(data)), iotest.OneByteReader(bytes.NewReader(data)))

	require.NotEmpty(t, got)
	assert.Equal(t, 100, got[len(got)-1])
	for i := 1; i < len(got); i++ {
		assert.Greater(t, got[i], got[i-1], "progress must grow at %d", i)
	}
	// first byte of 200 is floor(100/200) = 0, then one report per percent
	assert.Equal(t, 0, got[0])
	assert.Len(t, got, 101)
}

func TestProgressReader_FloorsPercent(t *testing.T) {
	data := []byte("abc")
	got := collect(t, 3, iotest.OneByteReader(bytes.NewReader(data)))
	assert.Equal(t, []int{33, 66, 100}, got)
}

func TestProgressReader_SingleRead(t *testing.T) {
	data := bytes.Repeat([]byte("y"), 64)
	got := collect(t, 64, bytes.NewReader(data))
	assert.Equal(t, []int{100}, got)
}

func TestProgressReader_PartialTransferNeverReports100(t *testing.T) {
	data := bytes.Repeat([]byte("z"), 100)
	var got []int
	pr := NewProgressReader(bytes.NewReader(data), 100, func(p int) { got = append(got, p) })

	buf := make([]byte, 40)
	_, err := io.ReadFull(pr, buf)
	require.NoError(t, err)

	assert.Equal(t, []int{40}, got)

	_, err = io.ReadFull(pr, buf[:10])
	require.NoError(t, err)
	assert.Equal(t, []int{40, 50}, got)
}

func TestProgressReader_UnknownTotalOrNilFunc(t *testing.T) {
	got := collect(t, 0, bytes.NewReader([]byte("abc")))
	assert.Empty(t, got)

	pr := NewProgressReader(bytes.NewReader([]byte("abc")), 3, nil)
	n, err := io.Copy(io.Discard, pr)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestMultipartFile(t *testing.T) {
	body, contentType, err := MultipartFile("file", `q3 "final".csv`, "text/csv", []byte("a,b\n1,2\n"))
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	r := multipart.NewReader(bytes.NewReader(body), params["boundary"])
	form, err := r.ReadForm(1 << 20)
	require.NoError(t, err)
	defer form.RemoveAll()

	files := form.File["file"]
	require.Len(t, files, 1)
	assert.Equal(t, `q3 "final".csv`, files[0].Filename)
	assert.Equal(t, "text/csv", files[0].Header.Get("Content-Type"))

	f, err := files[0].Open()
	require.NoError(t, err)
	defer f.Close()
	content, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(content))
}

func TestMultipartFile_DefaultContentType(t *testing.T) {
	body, _, err := MultipartFile("file", "blob.bin", "", []byte{1, 2, 3})
	require.NoError(t, err)
	assert.Contains(t, string(body), "Content-Type: application/octet-stream")
}
