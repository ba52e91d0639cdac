package nutrition

import "math"

// Totals holds the four tracked nutrition values for a meal or a day.
type Totals struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// Link is one ingredient line of a meal: a quantity in a unit plus the
// ingredient's per-100g nutrition values.
type Link struct {
	Quantity        float64
	Unit            string
	CaloriesPer100g float64
	ProteinPer100g  float64
	CarbsPer100g    float64
	FatPer100g      float64
}

// ForLinks computes the nutrition totals for a set of ingredient links.
// Each quantity is converted to grams and scaled against the per-100g values;
// the final totals are rounded to one decimal place. An empty set yields all
// zeros.
func ForLinks(links []Link) Totals {
	var t Totals
	for _, l := range links {
		factor := GramsFor(l.Quantity, l.Unit) / 100
		t.Calories += l.CaloriesPer100g * factor
		t.ProteinG += l.ProteinPer100g * factor
		t.CarbsG += l.CarbsPer100g * factor
		t.FatG += l.FatPer100g * factor
	}
	t.Calories = Round1(t.Calories)
	t.ProteinG = Round1(t.ProteinG)
	t.CarbsG = Round1(t.CarbsG)
	t.FatG = Round1(t.FatG)
	return t
}

// Round1 rounds to one decimal place, half away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
