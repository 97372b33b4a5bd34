package models

// Habit is one checklist item.
type Habit struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// HabitDailyState is today's checked-habit set. A single record, overwritten
// when the day rolls over; the previous day is appended to the archive first.
type HabitDailyState struct {
	Date         string   `json:"date"`
	CompletedIDs []string `json:"completedIds"`
}

// Completed reports whether the habit id is checked.
func (s HabitDailyState) Completed(id string) bool {
	for _, c := range s.CompletedIDs {
		if c == id {
			return true
		}
	}
	return false
}

// HabitArchiveRecord is one closed day in the append-only archive.
type HabitArchiveRecord struct {
	Date         string   `json:"date"`
	CompletedIDs []string `json:"completedIds"`
	Count        int      `json:"count"`
}

// DefaultHabits seeds the checklist on first run.
func DefaultHabits() []Habit {
	return []Habit{
		{ID: "water", Label: "Drink 2L water"},
		{ID: "stretch", Label: "Morning stretch"},
		{ID: "read", Label: "Read 20 minutes"},
		{ID: "sleep", Label: "In bed before 23:00"},
	}
}
