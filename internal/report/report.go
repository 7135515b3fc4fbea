// Package report produces a printable calculation sheet for a spring.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/hooke/internal/diagram"
	"github.com/alexiusacademia/hooke/internal/spring"
)

// ErrEmptyReport indicates a report with no calculation to print.
var ErrEmptyReport = errors.New("report: nothing to report")

const (
	defaultTitle = "Spring Calculation Report"
	chartImage   = "force-curve"

	defaultPrecision = 4

	// Every n-th sample is tabulated
	tableStride = 10
)

// Report is the content of a calculation sheet. Nil sections are omitted.
// Precision is the number of decimals printed.
type Report struct {
	Title     string
	Project   string
	Author    string
	Date      time.Time
	Precision int

	Spring *spring.SpringConstantResult
	Work   *spring.WorkResult
	Curve  *spring.ForceCurve
}

// Write renders the report as an A4 PDF
func Write(w io.Writer, r Report) error {
	if r.Spring == nil && r.Work == nil && r.Curve == nil {
		return ErrEmptyReport
	}
	r = r.withDefaults()

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(r.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if r.Project != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", r.Project)))
		pdf.Ln(6)
	}
	if r.Author != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", r.Author)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", r.Date.Format("2006-01-02")))
	pdf.Ln(10)

	p := r.Precision
	if s := r.Spring; s != nil {
		section(pdf, tr, "Spring Constant (Hooke's Law, F = kx)")
		row(pdf, tr, "Force F", fmt.Sprintf("%.*f N", p, s.Force))
		row(pdf, tr, "Displacement x", fmt.Sprintf("%.*f m", p, s.Displacement))
		row(pdf, tr, "k = F / x", fmt.Sprintf("%.*f N/m", p, s.K))
		pdf.Ln(4)
	}

	if wk := r.Work; wk != nil {
		section(pdf, tr, "Work Done (W = ½·k·(x2² - x1²))")
		row(pdf, tr, "Spring constant k", fmt.Sprintf("%.*f N/m", p, wk.K))
		row(pdf, tr, "Initial displacement x1", fmt.Sprintf("%.*f m", p, wk.X1))
		row(pdf, tr, "Final displacement x2", fmt.Sprintf("%.*f m", p, wk.X2))
		row(pdf, tr, "Work W", fmt.Sprintf("%.*f J", p, wk.Work))
		pdf.Ln(4)
	}

	if c := r.Curve; c != nil {
		section(pdf, tr, diagram.Title)

		var img bytes.Buffer
		if err := diagram.WriteForceCurve(&img, *c, "png"); err != nil {
			return err
		}
		pdf.RegisterImageOptionsReader(chartImage, gofpdf.ImageOptions{ImageType: "PNG"}, &img)
		pdf.ImageOptions(chartImage, pdf.GetX(), pdf.GetY(), 160, 0, true, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		pdf.Ln(4)

		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(50, 7, tr("x (m)"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 7, tr("F (N)"), "1", 1, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for i, s := range c.Samples {
			if i%tableStride != 0 && i != len(c.Samples)-1 {
				continue
			}
			pdf.CellFormat(50, 6, fmt.Sprintf("%.*f", p, s.Displacement), "1", 0, "R", false, 0, "")
			pdf.CellFormat(50, 6, fmt.Sprintf("%.*f", p, s.Force), "1", 1, "R", false, 0, "")
		}
	}

	return pdf.Output(w)
}

// withDefaults fills in the title and date. A negative precision falls back
// to the default; zero means whole numbers.
func (r Report) withDefaults() Report {
	if r.Title == "" {
		r.Title = defaultTitle
	}
	if r.Date.IsZero() {
		r.Date = time.Now()
	}
	if r.Precision < 0 {
		r.Precision = defaultPrecision
	}
	return r
}

// Save writes the report to a file
func Save(path string, r Report) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func section(pdf *gofpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr(title))
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
}

func row(pdf *gofpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.CellFormat(70, 6, tr(label), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(value), "", 1, "L", false, 0, "")
}
