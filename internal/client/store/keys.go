package store

// One key per logical state slice. The names are stable: backup documents
// reference them, so renaming a key orphans previously exported data.
const (
	KeyXP             = "lifeos_xp"
	KeyBodyHistory    = "lifeos_body_history"
	KeyWeightDraft    = "lifeos_weight_draft"
	KeyMealsDraft     = "lifeos_meals_draft_v3"
	KeyWorkoutsDraft  = "lifeos_workouts_draft"
	KeyBurnTarget     = "lifeos_burn_target"
	KeyMindEntries    = "lifeos_mind"
	KeyMindDraft      = "lifeos_mind_draft"
	KeyMusicLogs      = "lifeos_music_logs"
	KeyHabitsToday    = "lifeos_habits_today"
	KeyHabitsArchive  = "lifeos_habits_archive"
	KeyFoodLibrary    = "lifeos_food_library"
	KeyWorkoutLibrary = "lifeos_workout_library"
	KeyCategories     = "lifeos_categories"
)
