package results

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Notas"

var exportHeader = []any{"Aluno", "Acertos", "Total", "Percentual", "Data de envio"}

// WriteXLSX renders recs as a single-sheet workbook, header row first, in the
// order given.
func WriteXLSX(w io.Writer, recs []Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return fmt.Errorf("export: rename sheet: %w", err)
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return fmt.Errorf("export: header: %w", err)
	}
	for i, r := range recs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			r.StudentName,
			r.CorrectCount,
			r.TotalQuestions,
			fmt.Sprintf("%.2f%%", r.Percentage),
			r.SubmittedAt.Format("2006-01-02 15:04:05"),
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("export: row %d: %w", i+2, err)
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("export: write: %w", err)
	}
	return nil
}
