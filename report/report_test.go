package report

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nathanhack/radioae/benchmarking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func sample() *Results {
	return &Results{
		Title: "hamming",
		Seed:  7,
		Series: []Series{
			{
				Scheme:     "Uncoded BPSK (4,4)",
				BlockSize:  4,
				ChannelUse: 4,
				Points: []benchmarking.Point{
					{SNR: 0, BLER: 0.28, Blocks: 100, Errors: 28},
					{SNR: 4, BLER: 0.05, Blocks: 100, Errors: 5},
				},
			},
			{
				Scheme:     "Autoencoder (7,4)",
				BlockSize:  4,
				ChannelUse: 7,
				Points: []benchmarking.Point{
					{SNR: 0, BLER: 0.1, Blocks: 16, Errors: 2},
					{SNR: 8, BLER: 0, Blocks: 16, Errors: 0},
				},
			},
		},
	}
}

func TestSaveLoadResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, SaveResults(path, sample()))

	loaded, err := LoadResults(path)
	require.NoError(t, err)
	assert.Equal(t, sample(), loaded)

	_, err = LoadResults(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSNRs(t *testing.T) {
	assert.Equal(t, []float64{0, 4, 8}, SNRs(sample()))
	assert.Empty(t, SNRs())
}

func TestWriteCSV(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, WriteCSV(buf, sample()))

	expected := strings.Join([]string{
		"Results,Scheme,0,4,8",
		"hamming,\"Uncoded BPSK (4,4)\",0.28,0.05,",
		"hamming,\"Autoencoder (7,4)\",0.1,,0",
		"",
	}, "\n")
	assert.Equal(t, expected, buf.String())
}

func TestRenderHTML(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, RenderHTML(buf, "BLER vs SNR", sample()))

	html := buf.String()
	assert.Contains(t, html, "Autoencoder (7,4)")
	assert.Contains(t, html, "Block Error Ratio")
	assert.Contains(t, html, "log")
}

func TestLineDataSkipsZero(t *testing.T) {
	s := sample().Series[1]
	data := lineData(s, []float64{0, 4, 8})
	require.Len(t, data, 3)
	assert.Equal(t, 0.1, data[0].Value)
	assert.Nil(t, data[1].Value)
	assert.Nil(t, data[2].Value)
}

func TestRenderPNG(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, RenderPNG(buf, "BLER vs SNR", 4*vg.Inch, 3*vg.Inch, sample()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	// nothing but zero BLER still renders
	buf.Reset()
	empty := &Results{Series: []Series{{Scheme: "zero", Points: []benchmarking.Point{{SNR: 1, BLER: 0}}}}}
	require.NoError(t, RenderPNG(buf, "", 4*vg.Inch, 3*vg.Inch, empty))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}
