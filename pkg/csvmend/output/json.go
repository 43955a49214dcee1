// Package output provides serialization of repair results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/csvmend-go/pkg/csvmend/models"
)

// ToJSON serializes a repair report to JSON.
func ToJSON(report *models.RepairReport, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}
