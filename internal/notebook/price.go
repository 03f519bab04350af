package notebook

// Pricing for the checkout summary. Derived on every call, never stored.
const (
	BasePrice            = 29.99
	PricePerExercise     = 0.5
	PersonalizationBonus = 5.0
)

// PriceSummary is the checkout-facing breakdown of the notebook price.
type PriceSummary struct {
	Base                 float64 `json:"base"`
	ExerciseCount        int     `json:"exerciseCount"`
	ExerciseTotal        float64 `json:"exerciseTotal"`
	PersonalizationBonus float64 `json:"personalizationBonus"`
	Total                float64 `json:"total"`
}

// Price computes the notebook price: base, plus a per-exercise charge, plus
// a flat bonus when a personalization name is set.
func Price(doc Document) float64 {
	return Summarize(doc).Total
}

// Summarize returns the full pricing breakdown for the order summary view.
func Summarize(doc Document) PriceSummary {
	s := PriceSummary{
		Base:          BasePrice,
		ExerciseCount: len(doc.Exercises),
	}
	s.ExerciseTotal = float64(s.ExerciseCount) * PricePerExercise
	if doc.Personalization.Name != "" {
		s.PersonalizationBonus = PersonalizationBonus
	}
	s.Total = s.Base + s.ExerciseTotal + s.PersonalizationBonus
	return s
}
