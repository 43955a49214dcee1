package csvmend

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/ukaji3/csvmend-go/pkg/csvmend/parser"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if err := opts.Validate(); err != nil {
		t.Fatalf("default options invalid: %v", err)
	}

	want := parser.MergeParams{NumericCol: 5, CategoryCol: 19, TextCol: 36, PayloadBound: 44}
	if diff := cmp.Diff(want, opts.MergeParams()); diff != "" {
		t.Errorf("merge params mismatch (-want +got):\n%s", diff)
	}
	if opts.Delimiter != ';' {
		t.Errorf("expected ';' delimiter, got %q", rune(opts.Delimiter))
	}
	if opts.CategoryColumn.String() != "T" {
		t.Errorf("expected category column T, got %s", opts.CategoryColumn)
	}
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "csvmend.yaml")
	config := `delimiter: ","
numeric_column: G
category_column: 20
payload_bound: 30
encodings: [UTF-8, ISO-8859-1]
crlf: false
`
	if err := os.WriteFile(path, []byte(config), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions failed: %v", err)
	}

	want := DefaultOptions()
	want.Delimiter = ','
	want.NumericColumn = 6
	want.CategoryColumn = 20
	want.PayloadBound = 30
	want.Encodings = []string{"UTF-8", "ISO-8859-1"}
	want.UseCRLF = false
	if diff := cmp.Diff(want, opts, cmpopts.IgnoreFields(Options{}, "Logger")); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOptionsTabDelimiter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "csvmend.yaml")
	if err := os.WriteFile(path, []byte("delimiter: tab\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions failed: %v", err)
	}
	if opts.Delimiter != '\t' {
		t.Errorf("expected tab delimiter, got %q", rune(opts.Delimiter))
	}
}

func TestLoadOptionsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		config string
	}{
		{"long delimiter", "delimiter: ';;'\n"},
		{"bad column", "text_column: 'A1'\n"},
		{"quote delimiter", "delimiter: '\"'\n"},
		{"unknown encoding", "encodings: [klingon-8]\n"},
		{"no encodings", "encodings: []\n"},
		{"tiny payload", "payload_bound: 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "csvmend.yaml")
			if err := os.WriteFile(path, []byte(tt.config), 0644); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}
			if _, err := LoadOptions(path); !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("expected ErrInvalidOptions, got %v", err)
			}
		})
	}
}
