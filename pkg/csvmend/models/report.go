package models

// RepairReport summarizes a repair run.
type RepairReport struct {
	// Input is the path of the repaired file.
	Input string `json:"input"`
	// Output is the path of the written CSV file.
	Output string `json:"output"`
	// Workbook is the path of the optional xlsx copy.
	Workbook string `json:"workbook,omitempty"`
	// Encoding is the encoding the input was decoded with.
	Encoding string `json:"encoding,omitempty"`
	// RowsIn is the row count before repair, header included.
	RowsIn int `json:"rows_in"`
	// RowsOut is the row count after repair, header included.
	RowsOut int `json:"rows_out"`
	// Merged is the number of fragment rows absorbed into a target row.
	Merged int `json:"merged"`
	// BySlot counts merged fragments per destination slot.
	BySlot map[Slot]int `json:"by_slot,omitempty"`
}

// Record counts one merged fragment.
func (r *RepairReport) Record(slot Slot) {
	if r.BySlot == nil {
		r.BySlot = make(map[Slot]int)
	}
	r.BySlot[slot]++
	r.Merged++
}
