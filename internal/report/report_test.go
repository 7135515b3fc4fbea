package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/hooke/internal/report"
	"github.com/alexiusacademia/hooke/internal/spring"
)

func TestWrite(t *testing.T) {
	k, err := spring.SpringConstant(10, 0.5)
	require.NoError(t, err)
	w := spring.WorkDone(k.K, 0, 0.5)
	c, err := spring.NewForceCurve(k.K, 0.5, spring.DefaultPoints)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = report.Write(&buf, report.Report{
		Project: "Test bench",
		Author:  "QA",
		Date:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Spring:  &k,
		Work:    &w,
		Curve:   &c,
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, report.Write(&buf, report.Report{}), report.ErrEmptyReport)
	assert.Zero(t, buf.Len())
}

func TestSave(t *testing.T) {
	w := spring.WorkDone(20, 0.1, 0.2)
	path := filepath.Join(t.TempDir(), "out", "work.pdf")
	require.NoError(t, report.Save(path, report.Report{Work: &w}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
