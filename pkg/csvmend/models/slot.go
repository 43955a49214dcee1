package models

// Slot identifies the destination a fragment payload is relocated to.
type Slot string

const (
	// NumericSlot receives numeric or financial values.
	NumericSlot Slot = "numeric"
	// CategorySlot receives beneficiary categories (TITULAR, DEPENDENTE).
	CategorySlot Slot = "category"
	// TextSlot receives any other text.
	TextSlot Slot = "text"
)

// Slots lists every destination slot in column order.
var Slots = []Slot{NumericSlot, CategorySlot, TextSlot}
