package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ukaji3/csvmend-go/pkg/csvmend/models"
	"github.com/xuri/excelize/v2"
)

// LoadCSV reads a delimited file into a Table. The candidates are tried in
// order and the first one that both decodes the bytes and parses as CSV wins.
func LoadCSV(path string, delimiter rune, candidates []Candidate) (*models.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var attempts []string
	for _, c := range candidates {
		text, err := c.Decode(data)
		if err != nil {
			attempts = append(attempts, fmt.Sprintf("%s: %v", c.Name, err))
			continue
		}
		records, err := ParseCSV(text, delimiter)
		if err != nil {
			attempts = append(attempts, fmt.Sprintf("%s: %v", c.Name, err))
			continue
		}
		table := models.NewTable(records)
		table.Encoding = c.Name
		return table, nil
	}

	if len(attempts) == 0 {
		return nil, ErrUndecodable
	}
	return nil, fmt.Errorf("%w (%s)", ErrUndecodable, strings.Join(attempts, "; "))
}

// ParseCSV splits decoded text into records. Quoted fields may hold the
// delimiter, quotes and line breaks; rows may have any number of cells.
// Blank lines are kept as empty records so row positions match the file.
func ParseCSV(text string, delimiter rune) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var (
		records  [][]string
		consumed int   // lines fully read so far
		offset   int64 // byte offset just past the last record
	)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		// csv.Reader drops empty lines; restore one empty record for each.
		line, _ := r.FieldPos(0)
		for blank := line - consumed - 1; blank > 0; blank-- {
			records = append(records, []string{})
		}
		records = append(records, record)

		next := r.InputOffset()
		consumed += strings.Count(text[offset:next], "\n")
		offset = next
	}

	for blank := strings.Count(text[offset:], "\n"); blank > 0; blank-- {
		records = append(records, []string{})
	}
	return records, nil
}

// LoadXLSX reads the first worksheet of a workbook into a Table.
func LoadXLSX(path string) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	table := models.NewTable(rows)
	table.Encoding = "xlsx"
	return table, nil
}
