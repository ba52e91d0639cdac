package nutrition

// gramsPerUnit maps an ingredient unit to its gram equivalent.
// The ml and piece entries are approximations (water density, average item
// weight) rather than exact conversions.
var gramsPerUnit = map[string]float64{
	"g":     1,
	"kg":    1000,
	"ml":    1,
	"l":     1000,
	"cup":   240,
	"tbsp":  15,
	"tsp":   5,
	"oz":    28.35,
	"lb":    453.59,
	"piece": 100,
}

// unknownUnitFactor is the fallback multiplier applied to units outside the
// conversion table. Keeping it here means changing the policy is a one-line
// edit.
func unknownUnitFactor(unit string) float64 {
	return 1
}

// GramsFor converts a quantity in the given unit to grams. Unknown units fall
// back to a 1:1 multiplier instead of failing.
func GramsFor(quantity float64, unit string) float64 {
	if factor, ok := gramsPerUnit[unit]; ok {
		return quantity * factor
	}
	return quantity * unknownUnitFactor(unit)
}

// KnownUnit reports whether the unit has an entry in the conversion table.
func KnownUnit(unit string) bool {
	_, ok := gramsPerUnit[unit]
	return ok
}
