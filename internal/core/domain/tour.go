package domain

import "time"

// TourStatus is the scheduling state of a tour.
type TourStatus string

const (
	TourActive    TourStatus = "active"
	TourUpcoming  TourStatus = "upcoming"
	TourCompleted TourStatus = "completed"
	TourCancelled TourStatus = "cancelled"
)

// ItineraryItem is one day of a tour plan.
type ItineraryItem struct {
	Day         int    `json:"day" bson:"day"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

// Tour is an organised trip listing.
type Tour struct {
	ID      string   `json:"id" bson:"_id,omitempty"`
	Title   string   `json:"title" bson:"title"`
	TitleBn string   `json:"title_bn,omitempty" bson:"titleBn,omitempty"`
	Slug    string   `json:"slug" bson:"slug"`
	Image   string   `json:"image,omitempty" bson:"image,omitempty"`
	Gallery []string `json:"gallery,omitempty" bson:"gallery,omitempty"`

	Destination string `json:"destination" bson:"destination"`
	Category    string `json:"category" bson:"category"`
	TourType    string `json:"tour_type,omitempty" bson:"tourType,omitempty"`

	Duration       string   `json:"duration" bson:"duration"`
	DepartureDates []string `json:"departure_dates,omitempty" bson:"departureDates,omitempty"`

	Price    float64 `json:"price" bson:"price"`
	OldPrice float64 `json:"old_price,omitempty" bson:"oldPrice,omitempty"`
	Currency string  `json:"currency,omitempty" bson:"currency,omitempty"`

	GroupSize int `json:"group_size,omitempty" bson:"groupSize,omitempty"`
	Bookings  int `json:"bookings,omitempty" bson:"bookings,omitempty"`
	MinAge    int `json:"min_age,omitempty" bson:"minAge,omitempty"`
	MaxAge    int `json:"max_age,omitempty" bson:"maxAge,omitempty"`

	Description     string `json:"description,omitempty" bson:"description,omitempty"`
	LongDescription string `json:"long_description,omitempty" bson:"longDescription,omitempty"`

	Itinerary []ItineraryItem `json:"itinerary,omitempty" bson:"itinerary,omitempty"`
	Includes  []string        `json:"includes,omitempty" bson:"includes,omitempty"`
	Excludes  []string        `json:"excludes,omitempty" bson:"excludes,omitempty"`
	Faqs      []Faq           `json:"faqs,omitempty" bson:"faqs,omitempty"`
	Tags      []string        `json:"tags,omitempty" bson:"tags,omitempty"`

	Rating       float64 `json:"rating,omitempty" bson:"rating,omitempty"`
	ReviewsCount int     `json:"reviews_count,omitempty" bson:"reviewsCount,omitempty"`

	MetaTitle       string `json:"meta_title,omitempty" bson:"metaTitle,omitempty"`
	MetaDescription string `json:"meta_description,omitempty" bson:"metaDescription,omitempty"`

	Status     TourStatus `json:"status" bson:"status"`
	IsActive   bool       `json:"is_active" bson:"isActive"`
	IsFeatured bool       `json:"is_featured" bson:"isFeatured"`
	Order      int        `json:"order" bson:"order"`
	CreatedAt  time.Time  `json:"created_at" bson:"createdAt"`
	UpdatedAt  time.Time  `json:"updated_at" bson:"updatedAt"`
}
