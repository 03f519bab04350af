package catalog

// Exercises is the built-in exercise library.
var Exercises = []Exercise{
	// Strength
	{ID: "bench-press", Name: "Bench Press", Category: CategoryStrength, DefaultSets: 3, DefaultReps: 8},
	{ID: "squat", Name: "Squat", Category: CategoryStrength, DefaultSets: 3, DefaultReps: 10},
	{ID: "deadlift", Name: "Deadlift", Category: CategoryStrength, DefaultSets: 3, DefaultReps: 5},
	{ID: "overhead-press", Name: "Overhead Press", Category: CategoryStrength, DefaultSets: 3, DefaultReps: 8},
	{ID: "barbell-row", Name: "Barbell Row", Category: CategoryStrength, DefaultSets: 3, DefaultReps: 8},
	{ID: "pull-ups", Name: "Pull-ups", Category: CategoryStrength, DefaultSets: 3, DefaultReps: 8},
	{ID: "dips", Name: "Dips", Category: CategoryStrength, DefaultSets: 3, DefaultReps: 10},
	{ID: "lunges", Name: "Lunges", Category: CategoryStrength, DefaultSets: 3, DefaultReps: 12},
	{ID: "bicep-curl", Name: "Bicep Curl", Category: CategoryStrength, DefaultSets: 3, DefaultReps: 12},
	{ID: "tricep-extension", Name: "Tricep Extension", Category: CategoryStrength, DefaultSets: 3, DefaultReps: 12},

	// Cardio
	{ID: "running", Name: "Running", Category: CategoryCardio, DefaultSets: 1},
	{ID: "cycling", Name: "Cycling", Category: CategoryCardio, DefaultSets: 1},
	{ID: "swimming", Name: "Swimming", Category: CategoryCardio, DefaultSets: 1},
	{ID: "rowing", Name: "Rowing", Category: CategoryCardio, DefaultSets: 1},
	{ID: "jump-rope", Name: "Jump Rope", Category: CategoryCardio, DefaultSets: 1},
	{ID: "hiit", Name: "HIIT", Category: CategoryCardio, DefaultSets: 1},

	// Flexibility
	{ID: "yoga", Name: "Yoga", Category: CategoryFlexibility, DefaultSets: 1},
	{ID: "stretching", Name: "Stretching", Category: CategoryFlexibility, DefaultSets: 1},
	{ID: "pilates", Name: "Pilates", Category: CategoryFlexibility, DefaultSets: 1},
	{ID: "mobility-work", Name: "Mobility Work", Category: CategoryFlexibility, DefaultSets: 1},
}

// Categories is the display list for the exercise library sidebar.
var Categories = []CategoryInfo{
	{ID: CategoryStrength, Name: "Strength", Icon: "💪"},
	{ID: CategoryCardio, Name: "Cardio", Icon: "🏃"},
	{ID: CategoryFlexibility, Name: "Flexibility", Icon: "🧘"},
	{ID: CategoryCustom, Name: "Custom", Icon: "➕"},
}
