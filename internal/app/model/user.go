package model

import "time"

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"` // display name, immutable
	City      string    `json:"city,omitempty"`
	County    string    `json:"county,omitempty"`
	PostCode  string    `json:"post_code,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Active allergy flags, used to tailor search results client-side
	ActivePeanutAllergy bool `gorm:"default:false" json:"active_peanut_allergy"`
	ActiveEggAllergy    bool `gorm:"default:false" json:"active_egg_allergy"`
	ActiveDairyAllergy  bool `gorm:"default:false" json:"active_dairy_allergy"`
}

func (User) TableName() string {
	return "users"
}
