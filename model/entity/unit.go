package entity

// Unit is the unit of measurement attached to catalog rows and transaction
// entries. The set is fixed; free-text units are rejected at validation time.
type Unit = string

const (
	UnitPcs    Unit = "pcs"
	UnitKg     Unit = "kg"
	UnitLiters Unit = "liters"
	UnitBoxes  Unit = "boxes"
	UnitPacks  Unit = "packs"
)

// UnitChoices lists every accepted unit, in display order.
func UnitChoices() []Unit {
	return []Unit{UnitPcs, UnitKg, UnitLiters, UnitBoxes, UnitPacks}
}

// ValidUnit reports whether u is one of the accepted units.
func ValidUnit(u Unit) bool {
	switch u {
	case UnitPcs, UnitKg, UnitLiters, UnitBoxes, UnitPacks:
		return true
	}
	return false
}
