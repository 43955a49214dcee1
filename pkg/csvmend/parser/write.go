package parser

import (
	"encoding/csv"
	"os"

	"github.com/ukaji3/csvmend-go/pkg/csvmend/models"
	"github.com/xuri/excelize/v2"
)

// WriteCSV writes the table as UTF-8 delimited text.
func WriteCSV(path string, t *models.Table, delimiter rune, useCRLF bool) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	w.Comma = delimiter
	w.UseCRLF = useCRLF
	return w.WriteAll(t.Records())
}

// WriteXLSX writes the table to the first sheet of a new workbook.
func WriteXLSX(path string, t *models.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range t.Rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := []string(row)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
