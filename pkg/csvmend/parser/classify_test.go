package parser

import (
	"testing"

	"github.com/ukaji3/csvmend-go/pkg/csvmend/models"
)

func TestIsFragment(t *testing.T) {
	tests := []struct {
		row      models.Row
		expected bool
	}{
		{models.Row{"", "TITULAR"}, true},
		{models.Row{"   ", "123", "x"}, true},
		{models.Row{"\t", " a "}, true},
		{models.Row{"A1", "B1"}, false},
		{models.Row{"", ""}, false},
		{models.Row{"", "   "}, false},
		{models.Row{""}, false},
		{models.Row{}, false},
		{nil, false},
	}

	for _, tt := range tests {
		result := IsFragment(tt.row)
		if result != tt.expected {
			t.Errorf("IsFragment(%q) = %v, expected %v", tt.row, result, tt.expected)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		value    string
		expected models.Slot
	}{
		{"TITULAR", models.CategorySlot},
		{"Dependente", models.CategorySlot},
		{"  titular do plano ", models.CategorySlot},
		{"1.234,56", models.NumericSlot},
		{"42", models.NumericSlot},
		{" 1,00 ", models.NumericSlot},
		{"", models.TextSlot},
		{".,.", models.TextSlot},
		{"João Silva", models.TextSlot},
		{"-10", models.TextSlot},
		{"12a", models.TextSlot},
		{"²", models.TextSlot},
		{"١٢٣", models.NumericSlot},
	}

	for _, tt := range tests {
		result := Classify(tt.value)
		if result != tt.expected {
			t.Errorf("Classify(%q) = %q, expected %q", tt.value, result, tt.expected)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"123", true},
		{"1.234.567,89", true},
		{"", false},
		{",", false},
		{"1 2", false},
		{"R$ 10", false},
	}

	for _, tt := range tests {
		result := isNumeric(tt.input)
		if result != tt.expected {
			t.Errorf("isNumeric(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}
