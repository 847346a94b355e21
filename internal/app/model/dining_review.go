package model

import "time"

// ReviewStatus is the moderation state of a dining review
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "PENDING"  // awaiting an admin decision
	ReviewStatusApproved ReviewStatus = "APPROVED" // counts toward restaurant ratings
	ReviewStatusRejected ReviewStatus = "REJECTED" // never counts toward ratings
)

// IsTerminal reports whether no further moderation transition is allowed.
func (s ReviewStatus) IsTerminal() bool {
	return s == ReviewStatusApproved || s == ReviewStatusRejected
}

type DiningReview struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Author    string    `gorm:"not null;index" json:"author"` // references users.username
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	RestaurantID uint       `gorm:"not null;index:idx_reviews_restaurant_status" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID" json:"-"`

	// Allergy scores (1-5); nil means the author did not rate that category
	PeanutScore *int `json:"peanut_score,omitempty"`
	EggScore    *int `json:"egg_score,omitempty"`
	DairyScore  *int `json:"dairy_score,omitempty"`

	Comment string `gorm:"type:text" json:"comment,omitempty"`

	// Indexed so the pending moderation queue is a keyed lookup, not a scan
	Status ReviewStatus `gorm:"type:varchar(20);not null;index;index:idx_reviews_restaurant_status" json:"status"`
}

func (DiningReview) TableName() string {
	return "dining_reviews"
}
