package infra

// pdf.go — payment receipt generation using go-pdf/fpdf.
// Generates an A5 receipt with payment number, date, amount, method and
// method-specific details. The output file is saved to
// storagePath/recibo_{numero}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/celvintr/arquialum-sub003/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateReciboPDF renders the receipt for a confirmed Pago and returns the
// absolute path of the generated file.
func GenerateReciboPDF(pago *model.Pago, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("recibo_%d.pdf", pago.Numero)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(contentW, 8, "ArquiAlum", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Recibo de Pago", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Payment info ─────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Recibo N° %d", pago.Numero), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, pago.Fecha.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, "Factura: "+pago.FacturaID.String(), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(12, pdf.GetY(), pageW-12, pdf.GetY())
	pdf.Ln(3)

	// ── Amount and method ────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW*0.5, 7, "Monto:", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.5, 7, "$"+pago.Monto.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW*0.5, 5, "Método:", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.5, 5, pago.Metodo, "", 1, "R", false, 0, "")

	// Method details sorted for a stable layout. Keys with a leading
	// underscore are internal bookkeeping and never printed.
	keys := make([]string, 0, len(pago.Detalles))
	for k := range pago.Detalles {
		if len(k) > 0 && k[0] == '_' {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		pdf.CellFormat(contentW*0.5, 5, k+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.5, 5, pago.Detalles[k], "", 1, "R", false, 0, "")
	}

	if pago.Notas != "" {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.MultiCell(contentW, 4, pago.Notas, "", "L", false)
	}

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(5)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 4, "Gracias por su preferencia", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
