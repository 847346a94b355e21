package model

import "time"

type Restaurant struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	PostCode  string    `gorm:"index;not null" json:"post_code"`
	Bio       string    `gorm:"type:text" json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Derived allergy ratings. Written only by the rating recompute from the
	// approved review set; nil means no approved data for that category.
	PeanutRating  *float64 `json:"peanut_rating,omitempty"`
	EggRating     *float64 `json:"egg_rating,omitempty"`
	DairyRating   *float64 `json:"dairy_rating,omitempty"`
	OverallRating *float64 `json:"overall_rating,omitempty"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}
