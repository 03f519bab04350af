package catalog

// Templates is the fixed template catalog. Order matters: the first entry is
// the default template a fresh or unrecoverable document falls back to.
var Templates = []Template{
	{
		ID:           "table",
		Name:         "Workout Log Table",
		Description:  "Classic table format for tracking exercises",
		Layout:       "table",
		Sections:     []string{},
		HasTable:     true,
		TableColumns: []string{"Exercise", "Sets", "Reps", "Weight (kg)", "Notes"},
	},
	{
		ID:           "weekly",
		Name:         "Weekly Workout Planner",
		Description:  "Plan your entire week with day-by-day structure",
		Layout:       "weekly",
		Sections:     []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
		HasTable:     true,
		TableColumns: []string{"Day", "Exercise", "Sets", "Reps", "Weight"},
	},
	{
		ID:           "tracker",
		Name:         "Exercise Progress Tracker",
		Description:  "Track multiple exercises over time",
		Layout:       "tracker",
		Sections:     []string{},
		HasTable:     true,
		TableColumns: []string{"Exercise", "Week 1", "Week 2", "Week 3", "Week 4", "Progress"},
	},
	{
		ID:          "log",
		Name:        "Daily Workout Log",
		Description: "Structured daily workout tracking",
		Layout:      "log",
		Sections:    []string{"Warm-up", "Main Workout", "Cool-down", "Notes"},
	},
	{
		ID:          "split",
		Name:        "Split Routine Planner",
		Description: "Push/Pull/Legs split with muscle groups",
		Layout:      "split",
		Sections:    []string{"Push Day", "Pull Day", "Legs Day"},
	},
	{
		ID:           "progressive",
		Name:         "Progressive Overload Table",
		Description:  "Track progressive overload with detailed table",
		Layout:       "progressive",
		Sections:     []string{},
		HasTable:     true,
		TableColumns: []string{"Exercise", "Set 1", "Set 2", "Set 3", "Set 4", "Total Volume"},
	},
	{
		ID:          "fullbody",
		Name:        "Full Body Workout",
		Description: "Complete full body workout session",
		Layout:      "fullbody",
		Sections:    []string{"Upper Body", "Lower Body", "Core"},
	},
	{
		ID:          "planner",
		Name:        "Workout Planner",
		Description: "Simple workout planning template",
		Layout:      "planner",
		Sections:    []string{},
	},
}
