package domain

import "time"

// VisaCategory groups visa products for navigation (tourist, student, work…).
type VisaCategory struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Name          string    `json:"name" bson:"name"`
	NameBn        string    `json:"name_bn,omitempty" bson:"nameBn,omitempty"`
	Slug          string    `json:"slug" bson:"slug"`
	Description   string    `json:"description,omitempty" bson:"description,omitempty"`
	Icon          string    `json:"icon,omitempty" bson:"icon,omitempty"`
	Image         string    `json:"image,omitempty" bson:"image,omitempty"`
	IsActive      bool      `json:"is_active" bson:"isActive"`
	Order         int       `json:"order" bson:"order"`
	CreatedAt     time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updatedAt"`
}
