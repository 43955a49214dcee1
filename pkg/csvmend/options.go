// Package csvmend repairs delimited exports whose records were wrapped onto
// continuation rows.
package csvmend

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/ukaji3/csvmend-go/pkg/csvmend/parser"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Delimiter is the field separator. In YAML it is written as a one-character
// string, or "tab".
type Delimiter rune

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Delimiter) UnmarshalYAML(node *yaml.Node) error {
	switch node.Value {
	case "tab", `\t`:
		*d = '\t'
		return nil
	}
	r, size := utf8.DecodeRuneInString(node.Value)
	if size == 0 || size != len(node.Value) {
		return fmt.Errorf("line %d: delimiter must be a single character, got %q", node.Line, node.Value)
	}
	*d = Delimiter(r)
	return nil
}

// Column is a 0-based column index. In YAML it may be written as an index
// (19) or a spreadsheet column letter (T).
type Column int

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Column) UnmarshalYAML(node *yaml.Node) error {
	n, err := parser.ParseColumn(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = Column(n)
	return nil
}

// String returns the spreadsheet letter of the column.
func (c Column) String() string {
	return parser.ColumnName(int(c))
}

// Options configures repair behavior.
type Options struct {
	// Delimiter separates fields on input and output.
	Delimiter Delimiter `yaml:"delimiter"`
	// NumericColumn receives fragments whose content is a number.
	NumericColumn Column `yaml:"numeric_column"`
	// CategoryColumn receives fragments naming a TITULAR or DEPENDENTE.
	CategoryColumn Column `yaml:"category_column"`
	// TextColumn receives every other fragment.
	TextColumn Column `yaml:"text_column"`
	// PayloadBound is the exclusive upper cell index of a merged payload.
	PayloadBound int `yaml:"payload_bound"`
	// Encodings lists candidate input encodings in the order they are tried.
	Encodings []string `yaml:"encodings"`
	// UseCRLF terminates output lines with \r\n.
	UseCRLF bool `yaml:"crlf"`
	// WriteWorkbook also writes an .xlsx copy of the repaired table.
	WriteWorkbook bool `yaml:"workbook"`
	// Logger receives debug events. If nil, nothing is logged.
	Logger *zap.Logger `yaml:"-"`
}

// DefaultOptions returns default repair options.
func DefaultOptions() Options {
	params := parser.DefaultMergeParams()
	return Options{
		Delimiter:      ';',
		NumericColumn:  Column(params.NumericCol),
		CategoryColumn: Column(params.CategoryCol),
		TextColumn:     Column(params.TextCol),
		PayloadBound:   params.PayloadBound,
		Encodings:      append([]string(nil), parser.DefaultEncodings...),
		UseCRLF:        true,
	}
}

// LoadOptions reads a YAML options file. Keys missing from the file keep
// their default values.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("%w: %s: %v", ErrInvalidOptions, path, err)
	}
	return opts, opts.Validate()
}

// Validate checks that the options describe a usable layout.
func (o Options) Validate() error {
	d := rune(o.Delimiter)
	if d == 0 || d == '"' || d == '\r' || d == '\n' || d == utf8.RuneError || !utf8.ValidRune(d) {
		return invalidOptions("delimiter %q is not usable", d)
	}
	for _, c := range []Column{o.NumericColumn, o.CategoryColumn, o.TextColumn} {
		if c < 0 {
			return invalidOptions("negative destination column %d", int(c))
		}
	}
	if o.PayloadBound < 2 {
		return invalidOptions("payload bound %d leaves no payload cells", o.PayloadBound)
	}
	if len(o.Encodings) == 0 {
		return invalidOptions("no candidate encodings")
	}
	if _, err := parser.ResolveEncodings(o.Encodings); err != nil {
		return invalidOptions("%v", err)
	}
	return nil
}

// MergeParams returns the merge layout described by the options.
func (o Options) MergeParams() parser.MergeParams {
	return parser.MergeParams{
		NumericCol:   int(o.NumericColumn),
		CategoryCol:  int(o.CategoryColumn),
		TextCol:      int(o.TextColumn),
		PayloadBound: o.PayloadBound,
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
