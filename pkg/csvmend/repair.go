package csvmend

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/csvmend-go/pkg/csvmend/models"
	"github.com/ukaji3/csvmend-go/pkg/csvmend/parser"
	"go.uber.org/zap"
)

// OutputSuffix is appended to the input file name to form the output name.
const OutputSuffix = "_LIMPA"

// OutputPath derives the repaired CSV path: the input path with its
// extension replaced by "_LIMPA.csv".
func OutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + OutputSuffix + ".csv"
}

// WorkbookPath derives the path of the optional xlsx copy.
func WorkbookPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + OutputSuffix + ".xlsx"
}

// Repair loads the table at path, merges its fragment rows and writes the
// result next to the input.
func Repair(path string, opts Options) (*models.RepairReport, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	table, err := Load(path, opts)
	if err != nil {
		return nil, err
	}

	report := RepairTable(table, opts)
	report.Input = path
	report.Encoding = table.Encoding

	report.Output = OutputPath(path)
	if err := Save(report.Output, table, opts); err != nil {
		return nil, err
	}

	if opts.WriteWorkbook {
		report.Workbook = WorkbookPath(path)
		if err := parser.WriteXLSX(report.Workbook, table); err != nil {
			return nil, &WriteError{Path: report.Workbook, Err: err}
		}
	}

	return report, nil
}

// Load reads the input table. Workbooks (.xlsx, .xlsm) are read from their
// first sheet; anything else is treated as delimited text.
func Load(path string, opts Options) (*models.Table, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, &LoadError{Path: path, Err: ErrFileNotFound}
	}

	var (
		table *models.Table
		err   error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		table, err = parser.LoadXLSX(path)
	default:
		var candidates []parser.Candidate
		candidates, err = parser.ResolveEncodings(opts.Encodings)
		if err == nil {
			table, err = parser.LoadCSV(path, rune(opts.Delimiter), candidates)
		}
	}
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	opts.logger().Debug("table loaded",
		zap.String("path", path),
		zap.String("encoding", table.Encoding),
		zap.Int("rows", table.Len()),
	)
	return table, nil
}

// RepairTable merges fragment rows of t in place.
func RepairTable(t *models.Table, opts Options) *models.RepairReport {
	return parser.Merge(t, opts.MergeParams(), opts.logger())
}

// Save writes t as UTF-8 delimited text.
func Save(path string, t *models.Table, opts Options) error {
	if err := parser.WriteCSV(path, t, rune(opts.Delimiter), opts.UseCRLF); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
