// Package parser provides table loading, repair and writing utilities.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ColumnName converts a 0-based column index to its spreadsheet letter
// (0 -> "A", 5 -> "F", 36 -> "AK"). Invalid indexes render as "#<idx>".
func ColumnName(idx int) string {
	name, err := excelize.ColumnNumberToName(idx + 1)
	if err != nil {
		return "#" + strconv.Itoa(idx)
	}
	return name
}

// ParseColumn accepts either a 0-based column index ("19") or a spreadsheet
// column letter ("T") and returns the 0-based index.
func ParseColumn(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty column reference")
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("negative column index %d", n)
		}
		return n, nil
	}
	n, err := excelize.ColumnNameToNumber(s)
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}
