// Package models defines the record types kept in the local store.
package models

import (
	"encoding/json"
	"time"
)

// Category classifies a journal entry.
type Category string

const (
	CategoryReading    Category = "reading"
	CategoryReflection Category = "reflection"
	CategoryLogic      Category = "logic"
	CategoryMusic      Category = "music"
	CategoryGeneric    Category = "generic"
)

// Entry is one journal record. Category-specific fields live in Details and
// are decoded on demand via Unwrap.
type Entry struct {
	ID        int64           `json:"id"`
	Category  Category        `json:"category"`
	CreatedAt string          `json:"createdAt"`
	Completed bool            `json:"completed"`
	Details   json.RawMessage `json:"details"`
}

// NewID derives an id from the creation time, in Unix milliseconds.
// Two submissions within the same millisecond collide; accepted edge case.
func NewID(now time.Time) int64 {
	return now.UnixMilli()
}

// DisplayDateLayout is the layout for the human-readable date strings stored
// on records. History matching (heatmap, streaks) compares these strings.
const DisplayDateLayout = "1/2/2006"

// DisplayDate formats t the way records store their creation date.
func DisplayDate(t time.Time) string {
	return t.Format(DisplayDateLayout)
}

type TypedDetails interface {
	GetCategory() Category
}

// Reading captures a book excerpt and the reader's thoughts.
type Reading struct {
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Thoughts string `json:"thoughts"`
}

func (x Reading) GetCategory() Category { return CategoryReading }

// Reflection pairs an observed trigger with its correction.
type Reflection struct {
	Trigger    string `json:"trigger"`
	Correction string `json:"correction"`
}

func (x Reflection) GetCategory() Category { return CategoryReflection }

// Logic records a premise/conclusion pair.
type Logic struct {
	Premise    string `json:"premise"`
	Conclusion string `json:"conclusion"`
}

func (x Logic) GetCategory() Category { return CategoryLogic }

// MusicFlow holds a recorded voice memo, base64-encoded.
type MusicFlow struct {
	Audio string `json:"audio"`
	Note  string `json:"note"`
}

func (x MusicFlow) GetCategory() Category { return CategoryMusic }

// Generic is a free-form note.
type Generic struct {
	Note string `json:"note"`
}

func (x Generic) GetCategory() Category { return CategoryGeneric }

// Wrap builds an Entry around category-specific details.
func Wrap[T TypedDetails](id int64, createdAt string, v T) (Entry, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return Entry{}, err
	}
	return Entry{ID: id, Category: v.GetCategory(), CreatedAt: createdAt, Details: b}, nil
}

// Unwrap decodes the category-specific details. An entry whose category is
// unknown (e.g. its definition was deleted) decodes as Generic.
func (e Entry) Unwrap() (any, error) {
	switch e.Category {
	case CategoryReading:
		var v Reading
		return v, json.Unmarshal(e.Details, &v)
	case CategoryReflection:
		var v Reflection
		return v, json.Unmarshal(e.Details, &v)
	case CategoryLogic:
		var v Logic
		return v, json.Unmarshal(e.Details, &v)
	case CategoryMusic:
		var v MusicFlow
		return v, json.Unmarshal(e.Details, &v)
	default:
		var v Generic
		return v, json.Unmarshal(e.Details, &v)
	}
}

// MindDraft is the in-progress journal form, persisted so a half-written
// entry survives a restart. Saving an entry clears it.
type MindDraft struct {
	Title      string `json:"title"`
	Excerpt    string `json:"excerpt"`
	Thoughts   string `json:"thoughts"`
	Trigger    string `json:"trigger"`
	Correction string `json:"correction"`
	Premise    string `json:"premise"`
	Conclusion string `json:"conclusion"`
	Audio      string `json:"audio"`
	Note       string `json:"note"`
}

// CategoryDefinition is a user-extensible display definition for a category.
// Entries reference it by loose string match; an entry whose definition was
// deleted falls back to the generic one.
type CategoryDefinition struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	IconRef    string `json:"iconRef"`
	ColorTheme string `json:"colorTheme"`
}

// DefaultCategories seeds the category table on first run.
func DefaultCategories() []CategoryDefinition {
	return []CategoryDefinition{
		{ID: string(CategoryReading), Label: "Reading", IconRef: "book-open", ColorTheme: "blue"},
		{ID: string(CategoryReflection), Label: "Weakness", IconRef: "alert-triangle", ColorTheme: "red"},
		{ID: string(CategoryLogic), Label: "Logic", IconRef: "lightbulb", ColorTheme: "purple"},
		{ID: string(CategoryMusic), Label: "Flow", IconRef: "mic", ColorTheme: "amber"},
		{ID: string(CategoryGeneric), Label: "Note", IconRef: "file-text", ColorTheme: "gray"},
	}
}

// ResolveCategory finds the definition for id, falling back to the generic
// definition when the id is unknown.
func ResolveCategory(defs []CategoryDefinition, id Category) CategoryDefinition {
	var generic CategoryDefinition
	for _, d := range defs {
		if d.ID == string(id) {
			return d
		}
		if d.ID == string(CategoryGeneric) {
			generic = d
		}
	}
	if generic.ID == "" {
		generic = CategoryDefinition{ID: string(CategoryGeneric), Label: "Note", IconRef: "file-text", ColorTheme: "gray"}
	}
	return generic
}
