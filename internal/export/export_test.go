package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"path/filepath"
	"testing"

	"magnetite/internal/biot"
	"magnetite/internal/grid"
	"magnetite/internal/mathutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult(t *testing.T) *grid.Result {
	t.Helper()
	f := biot.NewField()
	f.AddSegment(biot.MustSegment(mathutil.Location{10, 0.5, 0}, mathutil.Vector{1, 0, 0}, 1))
	g := grid.Grid{Plane: grid.XY, Min: [2]float64{0, -2}, Max: [2]float64{4, 2}, Cols: 4, Rows: 4}
	res, err := grid.Evaluate(context.Background(), f, g)
	require.NoError(t, err)
	return res
}

func TestWriteCSV(t *testing.T) {
	res := sampleResult(t)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, res))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 17)
	assert.Equal(t, csvHeader, records[0])

	assert.Equal(t, []string{"0.5", "-1.5", "0"}, records[1][:3])
	assert.Equal(t, "true", records[1][7])
	assert.Equal(t, "NaN", records[9][3])
	assert.Equal(t, "false", records[9][7])
}

func TestCompressionRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("x,y,z,bx,by,bz\n0.5,1.5,0,1e-07,0,0\n"), 200)

	for _, c := range []Compression{None, Zstd, LZ4} {
		t.Run(string(c), func(t *testing.T) {
			var buf bytes.Buffer
			w, err := NewCompressor(&buf, c)
			require.NoError(t, err)
			_, err = w.Write(payload)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			if c != None {
				assert.Less(t, buf.Len(), len(payload))
			}

			r, err := NewDecompressor(&buf, c)
			require.NoError(t, err)
			defer r.Close()
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, payload, got)
		})
	}
}

func TestParseCompression(t *testing.T) {
	c, err := ParseCompression("")
	require.NoError(t, err)
	assert.Equal(t, None, c)
	assert.Equal(t, "", c.Ext())

	c, err = ParseCompression("ZSTD")
	require.NoError(t, err)
	assert.Equal(t, ".zst", c.Ext())

	_, err = ParseCompression("brotli")
	assert.Error(t, err)

	_, err = NewCompressor(io.Discard, Compression("brotli"))
	assert.Error(t, err)
}

func TestManifest(t *testing.T) {
	res := sampleResult(t)
	m := Manifest{
		Segments:  1,
		Grid:      res.Grid,
		Stats:     res.Stats(),
		Image:     "field.webp",
		ElapsedMS: 12,
	}

	path := filepath.Join(t.TempDir(), "manifest.json")
	require.NoError(t, WriteManifest(path, m))

	got, err := ReadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, m, got)

	_, err = ReadManifest(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
