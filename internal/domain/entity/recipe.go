package entity

import "time"

// Difficulty bounds for recipes, inclusive.
const (
	DifficultyMin = 1
	DifficultyMax = 5
)

// Recipe is a localized catalog entry. Every recipe belongs to exactly one
// category; the reference is checked at the service layer on create and
// update, not only by the database constraint.
type Recipe struct {
	ID              int64     `json:"id"`
	TitlePT         string    `json:"title_pt"`
	TitleEN         string    `json:"title_en"`
	TitleES         string    `json:"title_es"`
	DescriptionPT   string    `json:"description_pt"`
	DescriptionEN   string    `json:"description_en"`
	DescriptionES   string    `json:"description_es"`
	ImageURL        string    `json:"image_url,omitempty"` // Cloudinary public id or a full URL.
	Difficulty      int       `json:"difficulty"`          // In [DifficultyMin, DifficultyMax].
	PrepTimeMinutes int       `json:"prep_time_minutes"`
	CategoryID      int64     `json:"category_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// DifficultyInRange reports whether the recipe difficulty lies within the
// allowed bounds.
func (r *Recipe) DifficultyInRange() bool {
	return r.Difficulty >= DifficultyMin && r.Difficulty <= DifficultyMax
}
