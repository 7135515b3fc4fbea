package diagram

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/hooke/internal/spring"
)

func testCurve(t *testing.T, k, xMax float64) spring.ForceCurve {
	t.Helper()
	c, err := spring.NewForceCurve(k, xMax, spring.DefaultPoints)
	require.NoError(t, err)
	return c
}

func TestResample(t *testing.T) {
	c := testCurve(t, 20, 0.5)
	series := resample(c, 56)
	require.Len(t, series, 56)

	assert.Zero(t, series[0])
	// Column j sits at x = j·0.01, the last sample at column 50
	assert.InDelta(t, 20*0.25, series[25], 1e-9)
	assert.InDelta(t, 10.0, series[50], 1e-9)
	for _, v := range series[51:] {
		assert.True(t, math.IsNaN(v))
	}
}

func TestResample_NonPositiveXMax(t *testing.T) {
	c := testCurve(t, 20, 0)
	series := resample(c, 40)
	assert.Len(t, series, 40)
	for _, v := range series {
		assert.Zero(t, v)
	}

	c = testCurve(t, 3, -2)
	series = resample(c, 25)
	require.Len(t, series, 25)
	assert.Zero(t, series[0])
	assert.InDelta(t, -6.0, series[24], 1e-9)
}

func TestDrawASCIIForceCurve_Width(t *testing.T) {
	out := DrawASCIIForceCurve(testCurve(t, 20, 0), 30, 5)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 60, "line %q", line)
	}
}

func TestDrawASCIIForceCurve_Overflow(t *testing.T) {
	cases := []struct {
		name    string
		k, xMax float64
	}{
		{"PositiveK", 1e308, 10},
		{"NegativeK", -1e308, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := testCurve(t, tc.k, tc.xMax)
			var out string
			require.NotPanics(t, func() { out = DrawASCIIForceCurve(c, 60, 10) })
			assert.Contains(t, out, "force out of range")
		})
	}
}

func TestDrawASCIIForceCurve(t *testing.T) {
	out := DrawASCIIForceCurve(testCurve(t, 20, 0.5), 60, 10)
	assert.Contains(t, out, Title)
	assert.Contains(t, out, "x: 0.00 .. 0.55 m")
	assert.Contains(t, out, "F: 0.00 .. 11.00 N")

	// Degenerate inputs still draw
	assert.NotEmpty(t, DrawASCIIForceCurve(testCurve(t, 0, 1), 0, 0))
	assert.NotEmpty(t, DrawASCIIForceCurve(testCurve(t, -20, 0.5), 30, 5))
}

func TestDrawSummaryBox(t *testing.T) {
	box := DrawSummaryBox("SPRING CONSTANT", []string{"k = 20.0000 N/m", "W = ½k(x2² − x1²)"})
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	require.Len(t, lines, 6)

	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), "line %q", l)
	}
}

func TestExportForceCurve(t *testing.T) {
	dir := t.TempDir()
	c := testCurve(t, 20, 0.5)

	for _, name := range []string{"curve.png", "curve.svg", "nested/curve.pdf"} {
		path, err := ExportForceCurve(c, filepath.Join(dir, name), 0, 0)
		require.NoError(t, err)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	path, err := ExportForceCurve(c, filepath.Join(dir, "curve"), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "curve.png"), path)
}

func TestWriteForceCurve(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteForceCurve(&buf, testCurve(t, 20, 0.5), "svg"))
	assert.Contains(t, buf.String(), "<svg")

	assert.Error(t, WriteForceCurve(&buf, testCurve(t, 20, 0.5), "bmp"))
}
