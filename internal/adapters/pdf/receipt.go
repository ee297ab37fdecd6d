// Package pdf renders a calculation breakdown as a one-page A4 receipt.
package pdf

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/ldamico/sueldos-comercio/internal/domain"
)

// TotalLine is one entry of the totals block under the concept table.
type TotalLine struct {
	Concepto string
	Monto    float64
}

// Recibo is a printable breakdown: a concept table plus a totals block.
type Recibo struct {
	Titulo    string
	Subtitulo string
	Rows      []domain.DisplayRow
	Totales   []TotalLine
}

const (
	colConcepto = 80.0
	colMonto    = 36.0
	rowH        = 7.0
)

// Write renders the receipt into w.
func (rc Recibo) Write(w io.Writer) error {
	doc := fpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetTitle(tr(rc.Titulo), true)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 9, tr(rc.Titulo), "", 1, "L", false, 0, "")
	if rc.Subtitulo != "" {
		doc.SetFont("Helvetica", "", 10)
		doc.SetTextColor(90, 90, 90)
		doc.CellFormat(0, 6, tr(rc.Subtitulo), "", 1, "L", false, 0, "")
		doc.SetTextColor(0, 0, 0)
	}
	doc.Ln(3)

	// table header
	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(232, 224, 204)
	doc.CellFormat(colConcepto, rowH, tr("Concepto"), "1", 0, "L", true, 0, "")
	doc.CellFormat(colMonto, rowH, tr("Remunerativo"), "1", 0, "R", true, 0, "")
	doc.CellFormat(colMonto, rowH, tr("No Rem. / Indemniz."), "1", 0, "R", true, 0, "")
	doc.CellFormat(colMonto, rowH, tr("Deducción"), "1", 1, "R", true, 0, "")

	doc.SetFont("Helvetica", "", 9)
	for _, row := range rc.Rows {
		doc.CellFormat(colConcepto, rowH, tr(row.Concepto), "1", 0, "L", false, 0, "")
		doc.CellFormat(colMonto, rowH, monto(row.Remunerativo), "1", 0, "R", false, 0, "")
		doc.CellFormat(colMonto, rowH, monto(row.NoRemunerativo), "1", 0, "R", false, 0, "")
		doc.CellFormat(colMonto, rowH, monto(row.Deduccion), "1", 1, "R", false, 0, "")
	}
	doc.Ln(4)

	for i, t := range rc.Totales {
		style := ""
		if i == len(rc.Totales)-1 {
			style = "B" // the last line is the net
		}
		doc.SetFont("Helvetica", style, 10)
		doc.CellFormat(colConcepto, rowH, tr(t.Concepto), "", 0, "L", false, 0, "")
		doc.CellFormat(colMonto, rowH, monto(t.Monto), "", 1, "R", false, 0, "")
	}

	doc.Ln(6)
	doc.SetFont("Helvetica", "I", 8)
	doc.SetTextColor(120, 120, 120)
	doc.CellFormat(0, 5, tr("Estimación orientativa. No reemplaza el recibo de sueldo oficial."), "", 1, "L", false, 0, "")

	return doc.Output(w)
}

// monto formats a cell amount; zero renders blank to keep the column
// exclusivity of the on-screen table.
func monto(v float64) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%.2f", v)
}
