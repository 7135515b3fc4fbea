// Package export writes force curve samples to spreadsheet formats.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/hooke/internal/spring"
)

// ErrUnsupportedFormat indicates an output file extension with no writer.
var ErrUnsupportedFormat = errors.New("export: unsupported file format")

// Sheet names used in workbooks
const (
	CurveSheet   = "ForceCurve"
	SummarySheet = "Summary"
)

var header = []string{"displacement_m", "force_n"}

// Save writes the curve to path, choosing the format from the extension
func Save(path string, curve spring.ForceCurve) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := WriteCSV(f, curve); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	case ".xlsx":
		return SaveXLSX(path, curve)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// WriteCSV writes one row per sample after a header row
func WriteCSV(w io.Writer, curve spring.ForceCurve) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, s := range curve.Samples {
		record := []string{
			strconv.FormatFloat(s.Displacement, 'g', -1, 64),
			strconv.FormatFloat(s.Force, 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveXLSX saves the curve as a workbook with the samples on one sheet and
// k and the axis ranges on another
func SaveXLSX(path string, curve spring.ForceCurve) error {
	f, err := newWorkbook(curve)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.SaveAs(path)
}

// WriteXLSX writes the workbook to w
func WriteXLSX(w io.Writer, curve spring.ForceCurve) error {
	f, err := newWorkbook(curve)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}

func newWorkbook(curve spring.ForceCurve) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", CurveSheet); err != nil {
		f.Close()
		return nil, err
	}

	sw, err := f.NewStreamWriter(CurveSheet)
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := sw.SetRow("A1", []interface{}{"Displacement x (m)", "Force F (N)"}); err != nil {
		f.Close()
		return nil, err
	}
	for i, s := range curve.Samples {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, []interface{}{s.Displacement, s.Force}); err != nil {
			f.Close()
			return nil, err
		}
	}
	if err := sw.Flush(); err != nil {
		f.Close()
		return nil, err
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		f.Close()
		return nil, err
	}
	rows := [][]interface{}{
		{"Spring constant k (N/m)", curve.K},
		{"Maximum displacement (m)", curve.XMax},
		{"Points", len(curve.Samples)},
		{"Displacement axis min", curve.XRange.Min},
		{"Displacement axis max", curve.XRange.Max},
		{"Force axis min", curve.YRange.Min},
		{"Force axis max", curve.YRange.Max},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}
