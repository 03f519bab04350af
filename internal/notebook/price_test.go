package notebook

import (
	"math"
	"testing"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		name      string
		exercises int
		owner     string
		want      float64
	}{
		{"empty", 0, "", 29.99},
		{"exercises only", 4, "", 31.99},
		{"personalized", 4, "Alex", 36.99},
		{"personalized empty page", 0, "Alex", 34.99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := DefaultDocument()
			doc.Exercises = make([]Entry, tt.exercises)
			doc.Personalization.Name = tt.owner

			if got := Price(doc); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Price() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	doc := DefaultDocument()
	doc.Exercises = make([]Entry, 3)
	doc.Personalization.Name = "Sam"

	s := Summarize(doc)
	if s.Base != 29.99 {
		t.Errorf("base = %v, want 29.99", s.Base)
	}
	if s.ExerciseCount != 3 {
		t.Errorf("exerciseCount = %d, want 3", s.ExerciseCount)
	}
	if s.ExerciseTotal != 1.5 {
		t.Errorf("exerciseTotal = %v, want 1.5", s.ExerciseTotal)
	}
	if s.PersonalizationBonus != 5 {
		t.Errorf("personalizationBonus = %v, want 5", s.PersonalizationBonus)
	}
	if math.Abs(s.Total-36.49) > 1e-9 {
		t.Errorf("total = %v, want 36.49", s.Total)
	}
}
