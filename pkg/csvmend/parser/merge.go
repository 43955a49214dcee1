package parser

import (
	"go.uber.org/zap"

	"github.com/ukaji3/csvmend-go/pkg/csvmend/models"
)

// MergeParams holds the destination layout used by Merge.
type MergeParams struct {
	// NumericCol is the 0-based column receiving numeric payloads.
	NumericCol int
	// CategoryCol is the 0-based column receiving category payloads.
	CategoryCol int
	// TextCol is the 0-based column receiving any other payload.
	TextCol int
	// PayloadBound is the exclusive upper cell index of a fragment's payload.
	PayloadBound int
}

// DefaultMergeParams returns the layout of the beneficiary exports.
func DefaultMergeParams() MergeParams {
	return MergeParams{
		NumericCol:   5,
		CategoryCol:  19,
		TextCol:      36,
		PayloadBound: 44,
	}
}

// Column resolves a slot to its 0-based column index.
func (p MergeParams) Column(slot models.Slot) int {
	switch slot {
	case models.NumericSlot:
		return p.NumericCol
	case models.CategorySlot:
		return p.CategoryCol
	default:
		return p.TextCol
	}
}

// Merge repairs t in place. Each fragment row is written into the row placed
// before it and then dropped, so consecutive fragments all land in the same
// target. Row 0 is never examined as a fragment, but it does absorb a
// fragment sitting directly below it.
func Merge(t *models.Table, params MergeParams, logger *zap.Logger) *models.RepairReport {
	if logger == nil {
		logger = zap.NewNop()
	}

	report := &models.RepairReport{RowsIn: len(t.Rows)}
	if len(t.Rows) == 0 {
		return report
	}

	out := make([]models.Row, 1, len(t.Rows))
	out[0] = t.Header()

	for idx := 1; idx < len(t.Rows); idx++ {
		row := t.Rows[idx]
		if !IsFragment(row) {
			out = append(out, row)
			continue
		}

		slot := Classify(row.Cell(1))
		dest := params.Column(slot)
		last := len(out) - 1
		out[last] = mergeInto(out[last], payload(row, params.PayloadBound), dest)
		report.Record(slot)

		logger.Debug("merged fragment",
			zap.Int("row", idx),
			zap.String("slot", string(slot)),
			zap.String("column", ColumnName(dest)),
		)
	}

	t.Rows = out
	report.RowsOut = len(out)
	return report
}

// payload returns the cells of a fragment that take part in a merge:
// index 1 up to, not including, bound.
func payload(row models.Row, bound int) models.Row {
	end := len(row)
	if bound < end {
		end = bound
	}
	if end <= 1 {
		return nil
	}
	return row[1:end]
}

// mergeInto writes block into target starting at dest, extending target with
// empty cells first when it is too short. Existing cells are overwritten.
func mergeInto(target, block models.Row, dest int) models.Row {
	needed := dest + len(block)
	if len(target) < needed {
		target = append(target, make(models.Row, needed-len(target))...)
	}
	copy(target[dest:], block)
	return target
}
