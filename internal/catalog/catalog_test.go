package catalog

import "testing"

func TestExerciseByID(t *testing.T) {
	ex, ok := ExerciseByID("bench-press")
	if !ok {
		t.Fatal("ExerciseByID(bench-press) not found")
	}
	if ex.Name != "Bench Press" || ex.Category != CategoryStrength {
		t.Errorf("exercise = %+v", ex)
	}
	if ex.DefaultSets != 3 || ex.DefaultReps != 8 {
		t.Errorf("defaults = %d/%d, want 3/8", ex.DefaultSets, ex.DefaultReps)
	}

	if _, ok := ExerciseByID("nope"); ok {
		t.Error("ExerciseByID(nope) = ok")
	}
}

func TestTemplateByID(t *testing.T) {
	tpl, ok := TemplateByID("progressive")
	if !ok {
		t.Fatal("TemplateByID(progressive) not found")
	}
	if !tpl.HasTable || len(tpl.TableColumns) != 6 {
		t.Errorf("progressive template = %+v", tpl)
	}

	if _, ok := TemplateByID("nope"); ok {
		t.Error("TemplateByID(nope) = ok")
	}
}

func TestDefaultTemplate(t *testing.T) {
	if got := DefaultTemplate().ID; got != "table" {
		t.Errorf("DefaultTemplate().ID = %q, want table", got)
	}
}

func TestCatalogIntegrity(t *testing.T) {
	if len(Exercises) != 20 {
		t.Errorf("exercises = %d, want 20", len(Exercises))
	}
	if len(Templates) != 8 {
		t.Errorf("templates = %d, want 8", len(Templates))
	}

	seen := make(map[string]bool)
	for _, e := range Exercises {
		if e.ID == "" || e.Name == "" {
			t.Errorf("exercise missing id or name: %+v", e)
		}
		if seen[e.ID] {
			t.Errorf("duplicate exercise id %q", e.ID)
		}
		seen[e.ID] = true
	}

	for _, tpl := range Templates {
		if tpl.HasTable && len(tpl.TableColumns) == 0 {
			t.Errorf("template %q has a table but no columns", tpl.ID)
		}
	}
}
