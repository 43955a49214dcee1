package parser

import (
	"strings"
	"unicode"

	"github.com/ukaji3/csvmend-go/pkg/csvmend/models"
)

// categoryKeywords mark a fragment as a beneficiary category value.
var categoryKeywords = []string{"TITULAR", "DEPENDENTE"}

// IsFragment reports whether row is the continuation of the previous record:
// an empty first cell followed by a non-empty second cell.
func IsFragment(row models.Row) bool {
	if len(row) < 2 {
		return false
	}
	return strings.TrimSpace(row[0]) == "" && strings.TrimSpace(row[1]) != ""
}

// Classify picks the destination slot for a fragment from the content of its
// second cell.
func Classify(value string) models.Slot {
	upper := strings.ToUpper(strings.TrimSpace(value))

	for _, kw := range categoryKeywords {
		if strings.Contains(upper, kw) {
			return models.CategorySlot
		}
	}

	if isNumeric(value) {
		return models.NumericSlot
	}

	return models.TextSlot
}

// isNumeric reports whether s is made only of decimal digits (category Nd)
// once '.' and ',' separators are removed. An empty remainder is not numeric.
func isNumeric(s string) bool {
	clean := strings.NewReplacer(".", "", ",", "").Replace(s)
	clean = strings.TrimSpace(clean)
	if clean == "" {
		return false
	}
	for _, r := range clean {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
