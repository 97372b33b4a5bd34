package models

// MacroCategory groups food items for the nutrition aggregate.
type MacroCategory string

const (
	MacroCarb    MacroCategory = "Carb"
	MacroProtein MacroCategory = "Protein"
	MacroVeggie  MacroCategory = "Veggie"
	MacroFruit   MacroCategory = "Fruit"
)

// MacroCategories is the fixed display order of the nutrition aggregate.
var MacroCategories = []MacroCategory{MacroCarb, MacroProtein, MacroVeggie, MacroFruit}

// Slot is one meal period.
type Slot string

const (
	SlotBreakfast Slot = "breakfast"
	SlotLunch     Slot = "lunch"
	SlotDinner    Slot = "dinner"
)

// Slots is the fixed slot order.
var Slots = []Slot{SlotBreakfast, SlotLunch, SlotDinner}

// FoodItem is a library entry. Adding it to a meal copies name and calories
// into the MealItem; later library edits never rewrite past logs.
type FoodItem struct {
	Name     string        `json:"name"`
	Calories int           `json:"calories"`
	Category MacroCategory `json:"category"`
}

// MealItem is one food line within a slot.
type MealItem struct {
	ID       int64         `json:"id"`
	Name     string        `json:"name"`
	Calories int           `json:"cal"`
	Category MacroCategory `json:"cat"`
	Quantity int           `json:"qty"`
}

// MealPlan is the ephemeral daily build state, one list per slot.
type MealPlan struct {
	Breakfast []MealItem `json:"breakfast"`
	Lunch     []MealItem `json:"lunch"`
	Dinner    []MealItem `json:"dinner"`
}

// Items returns the list for the given slot. Unknown slots return nil.
func (p *MealPlan) Items(slot Slot) []MealItem {
	switch slot {
	case SlotBreakfast:
		return p.Breakfast
	case SlotLunch:
		return p.Lunch
	case SlotDinner:
		return p.Dinner
	}
	return nil
}

// SetItems replaces the list for the given slot.
func (p *MealPlan) SetItems(slot Slot, items []MealItem) {
	switch slot {
	case SlotBreakfast:
		p.Breakfast = items
	case SlotLunch:
		p.Lunch = items
	case SlotDinner:
		p.Dinner = items
	}
}

// All returns every item across the three slots, breakfast first.
func (p *MealPlan) All() []MealItem {
	all := make([]MealItem, 0, len(p.Breakfast)+len(p.Lunch)+len(p.Dinner))
	all = append(all, p.Breakfast...)
	all = append(all, p.Lunch...)
	all = append(all, p.Dinner...)
	return all
}

// DailyBodyLog is an immutable snapshot of one day: meal plan, weight,
// workout selections and the computed totals. Appended on save, deletable
// by id, never edited.
type DailyBodyLog struct {
	ID          int64    `json:"id"`
	Date        string   `json:"date"`
	Weight      float64  `json:"weight"`
	Meals       MealPlan `json:"meals"`
	Workouts    []string `json:"workouts"`
	TotalIntake int      `json:"totalIntake"`
	Deficit     int      `json:"deficit"`
}

// MusicLog is one practice session.
type MusicLog struct {
	ID         int64  `json:"id"`
	Date       string `json:"date"`
	Instrument string `json:"inst"`
	Minutes    int    `json:"dur"`
	Note       string `json:"note"`
}

// DefaultFoodLibrary seeds the food table on first run.
func DefaultFoodLibrary() []FoodItem {
	return []FoodItem{
		{Name: "Corn", Calories: 100, Category: MacroCarb},
		{Name: "Purple yam", Calories: 130, Category: MacroCarb},
		{Name: "Wholegrain bread", Calories: 250, Category: MacroCarb},
		{Name: "Oats", Calories: 370, Category: MacroCarb},
		{Name: "Egg", Calories: 70, Category: MacroProtein},
		{Name: "Chicken breast", Calories: 165, Category: MacroProtein},
		{Name: "Beef", Calories: 250, Category: MacroProtein},
		{Name: "Shrimp", Calories: 90, Category: MacroProtein},
		{Name: "Broccoli", Calories: 35, Category: MacroVeggie},
		{Name: "Cucumber", Calories: 16, Category: MacroVeggie},
		{Name: "Tomato", Calories: 18, Category: MacroVeggie},
		{Name: "Lettuce", Calories: 15, Category: MacroVeggie},
		{Name: "Apple", Calories: 50, Category: MacroFruit},
		{Name: "Blueberries", Calories: 57, Category: MacroFruit},
		{Name: "Banana", Calories: 90, Category: MacroFruit},
	}
}

// DefaultWorkoutLibrary seeds the workout table on first run.
func DefaultWorkoutLibrary() []string {
	return []string{"Jogging", "Pilates", "Glute machine", "Weightlifting"}
}
