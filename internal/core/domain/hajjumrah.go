package domain

import "time"

// PackageType distinguishes Hajj packages from Umrah packages.
type PackageType string

const (
	PackageHajj  PackageType = "hajj"
	PackageUmrah PackageType = "umrah"
)

// HajjUmrahPackage is a pilgrimage package listing. It shares the tour
// status lifecycle.
type HajjUmrahPackage struct {
	ID       string      `json:"id" bson:"_id,omitempty"`
	Name     string      `json:"name" bson:"name"`
	NameBn   string      `json:"name_bn,omitempty" bson:"nameBn,omitempty"`
	Slug     string      `json:"slug" bson:"slug"`
	Type     PackageType `json:"type" bson:"type"`
	Subtitle string      `json:"subtitle,omitempty" bson:"subtitle,omitempty"`
	Image    string      `json:"image,omitempty" bson:"image,omitempty"`

	Duration string  `json:"duration" bson:"duration"`
	Price    float64 `json:"price" bson:"price"`
	OldPrice float64 `json:"old_price,omitempty" bson:"oldPrice,omitempty"`
	Currency string  `json:"currency,omitempty" bson:"currency,omitempty"`

	GroupSize      int      `json:"group_size,omitempty" bson:"groupSize,omitempty"`
	Bookings       int      `json:"bookings,omitempty" bson:"bookings,omitempty"`
	DepartureDates []string `json:"departure_dates,omitempty" bson:"departureDates,omitempty"`

	Hotel    string `json:"hotel,omitempty" bson:"hotel,omitempty"`
	Distance string `json:"distance,omitempty" bson:"distance,omitempty"`
	Meals    string `json:"meals,omitempty" bson:"meals,omitempty"`

	Description     string `json:"description,omitempty" bson:"description,omitempty"`
	LongDescription string `json:"long_description,omitempty" bson:"longDescription,omitempty"`

	Features []string `json:"features,omitempty" bson:"features,omitempty"`
	Excludes []string `json:"excludes,omitempty" bson:"excludes,omitempty"`
	Tags     []string `json:"tags,omitempty" bson:"tags,omitempty"`

	MetaTitle       string `json:"meta_title,omitempty" bson:"metaTitle,omitempty"`
	MetaDescription string `json:"meta_description,omitempty" bson:"metaDescription,omitempty"`

	IsPopular  bool       `json:"is_popular" bson:"isPopular"`
	Status     TourStatus `json:"status" bson:"status"`
	IsActive   bool       `json:"is_active" bson:"isActive"`
	IsFeatured bool       `json:"is_featured" bson:"isFeatured"`
	Order      int        `json:"order" bson:"order"`
	CreatedAt  time.Time  `json:"created_at" bson:"createdAt"`
	UpdatedAt  time.Time  `json:"updated_at" bson:"updatedAt"`
}
