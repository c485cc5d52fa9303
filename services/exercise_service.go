package services

import "strings"

type LibraryExercise struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	VideoURL      string   `json:"videoUrl"`
	Difficulty    string   `json:"difficulty"` // beginner | intermediate | advanced
	TargetMuscles []string `json:"targetMuscles"`
	Instructions  []string `json:"instructions"`
}

var exerciseLibrary = []LibraryExercise{
	{
		ID:            "1",
		Name:          "Barbell Bench Press",
		Description:   "The king of chest exercises. Builds overall chest mass and strength.",
		VideoURL:      "https://www.youtube.com/embed/rT7DgCr-3pg",
		Difficulty:    "intermediate",
		TargetMuscles: []string{"Chest", "Triceps", "Shoulders"},
		Instructions: []string{
			"Lie flat on a bench with your feet firmly on the ground",
			"Grip the bar slightly wider than shoulder-width",
			"Unrack the bar and lower it to your mid-chest",
			"Press the bar back up to the starting position",
			"Keep your shoulder blades retracted throughout",
		},
	},
	{
		ID:            "2",
		Name:          "Push-Ups",
		Description:   "A classic bodyweight exercise that builds chest, shoulders, and triceps.",
		VideoURL:      "https://www.youtube.com/embed/IODxDxX7oi4",
		Difficulty:    "beginner",
		TargetMuscles: []string{"Chest", "Triceps", "Shoulders", "Core"},
		Instructions: []string{
			"Start in a plank position with hands shoulder-width apart",
			"Keep your body in a straight line from head to heels",
			"Lower your chest to the ground by bending your elbows",
			"Push back up to the starting position",
			"Keep your core tight throughout the movement",
		},
	},
	{
		ID:            "3",
		Name:          "Dumbbell Flyes",
		Description:   "Isolation exercise that targets the chest muscles with a stretch.",
		VideoURL:      "https://www.youtube.com/embed/eozdVDA78K0",
		Difficulty:    "intermediate",
		TargetMuscles: []string{"Chest"},
		Instructions: []string{
			"Lie on a flat bench holding dumbbells above your chest",
			"Keep a slight bend in your elbows",
			"Lower the weights out to the sides in an arc motion",
			"Feel a stretch in your chest at the bottom",
			"Bring the weights back together at the top",
		},
	},
	{
		ID:            "4",
		Name:          "Deadlift",
		Description:   "The ultimate full-body strength builder. Targets the entire posterior chain.",
		VideoURL:      "https://www.youtube.com/embed/op9kVnSso6Q",
		Difficulty:    "advanced",
		TargetMuscles: []string{"Back", "Glutes", "Hamstrings", "Core"},
		Instructions: []string{
			"Stand with feet hip-width apart, bar over mid-foot",
			"Bend down and grip the bar just outside your legs",
			"Keep your back straight and chest up",
			"Drive through your heels and stand up with the bar",
			"Lower the bar back down with control",
		},
	},
	{
		ID:            "5",
		Name:          "Pull-Ups",
		Description:   "Classic bodyweight exercise for building a wide, strong back.",
		VideoURL:      "https://www.youtube.com/embed/eGo4IYlbE5g",
		Difficulty:    "intermediate",
		TargetMuscles: []string{"Back", "Biceps", "Shoulders"},
		Instructions: []string{
			"Hang from a pull-up bar with hands slightly wider than shoulders",
			"Pull your body up until your chin is over the bar",
			"Keep your core tight and avoid swinging",
			"Lower yourself back down with control",
			"Fully extend your arms at the bottom",
		},
	},
	{
		ID:            "8",
		Name:          "Barbell Squats",
		Description:   "The king of leg exercises. Builds massive quads, glutes, and overall leg strength.",
		VideoURL:      "https://www.youtube.com/embed/ultWZbUMPL8",
		Difficulty:    "intermediate",
		TargetMuscles: []string{"Quads", "Glutes", "Hamstrings", "Core"},
		Instructions: []string{
			"Position the bar on your upper back/traps",
			"Stand with feet shoulder-width apart",
			"Lower your hips back and down as if sitting in a chair",
			"Keep your chest up and knees tracking over toes",
			"Drive through your heels to stand back up",
		},
	},
	{
		ID:            "9",
		Name:          "Romanian Deadlift",
		Description:   "Targets hamstrings and glutes with a hip hinge movement.",
		VideoURL:      "https://www.youtube.com/embed/2SHsk9AzdjA",
		Difficulty:    "intermediate",
		TargetMuscles: []string{"Hamstrings", "Glutes", "Lower Back"},
		Instructions: []string{
			"Stand holding a barbell at hip level",
			"Keep a slight bend in your knees",
			"Hinge at the hips and lower the bar down your legs",
			"Feel a stretch in your hamstrings",
			"Drive your hips forward to return to standing",
		},
	},
	{
		ID:            "12",
		Name:          "Overhead Press",
		Description:   "Compound movement for building strong, well-rounded shoulders.",
		VideoURL:      "https://www.youtube.com/embed/2yjwXTZQDDI",
		Difficulty:    "intermediate",
		TargetMuscles: []string{"Shoulders", "Triceps", "Core"},
		Instructions: []string{
			"Stand holding a barbell at shoulder height",
			"Keep your core tight and glutes engaged",
			"Press the bar straight overhead",
			"Lock out your elbows at the top",
			"Lower the bar back to your shoulders with control",
		},
	},
	{
		ID:            "13",
		Name:          "Lateral Raises",
		Description:   "Isolation exercise for building shoulder width and definition.",
		VideoURL:      "https://www.youtube.com/embed/3VcKaXpzqRo",
		Difficulty:    "beginner",
		TargetMuscles: []string{"Shoulders"},
		Instructions: []string{
			"Stand holding dumbbells at your sides",
			"Keep a slight bend in your elbows",
			"Raise the weights out to the sides until shoulder height",
			"Lead with your elbows, not your hands",
			"Lower back down with control",
		},
	},
	{
		ID:            "18",
		Name:          "Planks",
		Description:   "Isometric core exercise for building stability and endurance.",
		VideoURL:      "https://www.youtube.com/embed/ASdvN_XEl_c",
		Difficulty:    "beginner",
		TargetMuscles: []string{"Core", "Abs", "Lower Back"},
		Instructions: []string{
			"Start in a forearm plank position",
			"Keep your body in a straight line from head to heels",
			"Engage your core and glutes",
			"Hold the position without sagging or piking",
			"Breathe steadily throughout",
		},
	},
	{
		ID:            "19",
		Name:          "Russian Twists",
		Description:   "Dynamic core exercise that targets the obliques.",
		VideoURL:      "https://www.youtube.com/embed/wkD8rjkodUI",
		Difficulty:    "beginner",
		TargetMuscles: []string{"Core", "Obliques"},
		Instructions: []string{
			"Sit on the ground with knees bent and feet elevated",
			"Lean back slightly and hold a weight at your chest",
			"Twist your torso to one side",
			"Touch the weight to the ground beside you",
			"Twist to the other side and repeat",
		},
	},
	{
		ID:            "20",
		Name:          "Hanging Leg Raises",
		Description:   "Advanced ab exercise for building core strength.",
		VideoURL:      "https://www.youtube.com/embed/Pr1ieGZ5atk",
		Difficulty:    "advanced",
		TargetMuscles: []string{"Abs", "Hip Flexors"},
		Instructions: []string{
			"Hang from a pull-up bar with straight arms",
			"Keep your legs straight and together",
			"Raise your legs until parallel to the ground or higher",
			"Lower them back down with control",
			"Avoid swinging for momentum",
		},
	},
}

// search terms match name, description, or a target muscle, ignoring case,
// spaces, hyphens, and a trailing plural "s"
var searchNormalizer = strings.NewReplacer(" ", "", "-", "")

func normalizeTerm(s string) string {
	return searchNormalizer.Replace(strings.ToLower(s))
}

func matchesTerm(candidate, search, singular string) bool {
	lower := strings.ToLower(candidate)
	norm := normalizeTerm(candidate)
	return strings.Contains(lower, search) ||
		strings.Contains(lower, singular) ||
		strings.Contains(norm, normalizeTerm(search)) ||
		strings.Contains(norm, normalizeTerm(singular))
}

// SearchExercises filters the static library by free-text search and
// difficulty. Both filters are optional.
func SearchExercises(search, difficulty string) []LibraryExercise {
	search = strings.ToLower(strings.TrimSpace(search))
	difficulty = strings.ToLower(strings.TrimSpace(difficulty))
	singular := strings.TrimSuffix(search, "s")

	out := make([]LibraryExercise, 0, len(exerciseLibrary))
	for _, ex := range exerciseLibrary {
		if search != "" {
			matched := matchesTerm(ex.Name, search, singular) ||
				matchesTerm(ex.Description, search, singular)
			for _, m := range ex.TargetMuscles {
				if matched {
					break
				}
				matched = matchesTerm(m, search, singular)
			}
			if !matched {
				continue
			}
		}
		if difficulty != "" && ex.Difficulty != difficulty {
			continue
		}
		out = append(out, ex)
	}
	return out
}
