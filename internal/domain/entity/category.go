package entity

import "time"

// Category groups recipes under a name localized in the three catalog
// languages. A category that still has recipes cannot be deleted.
type Category struct {
	ID        int64     `json:"id"`
	NamePT    string    `json:"name_pt"`
	NameEN    string    `json:"name_en"`
	NameES    string    `json:"name_es"`
	CreatedAt time.Time `json:"created_at"`
}
