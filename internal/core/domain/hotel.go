package domain

import "time"

// Faq is a question/answer pair shown on entity detail pages.
type Faq struct {
	Question string `json:"question" bson:"question"`
	Answer   string `json:"answer" bson:"answer"`
}

// HotelStatus is the operational state of a hotel listing.
type HotelStatus string

const (
	HotelActive      HotelStatus = "active"
	HotelInactive    HotelStatus = "inactive"
	HotelMaintenance HotelStatus = "maintenance"
)

// Hotel is an accommodation listing, typically bundled with packages.
type Hotel struct {
	ID      string   `json:"id" bson:"_id,omitempty"`
	Name    string   `json:"name" bson:"name"`
	NameBn  string   `json:"name_bn,omitempty" bson:"nameBn,omitempty"`
	Slug    string   `json:"slug" bson:"slug"`
	Image   string   `json:"image,omitempty" bson:"image,omitempty"`
	Gallery []string `json:"gallery,omitempty" bson:"gallery,omitempty"`

	Location string `json:"location" bson:"location"`
	City     string `json:"city" bson:"city"`
	Country  string `json:"country,omitempty" bson:"country,omitempty"`

	StarRating    int    `json:"star_rating" bson:"starRating"`
	HotelCategory string `json:"hotel_category" bson:"hotelCategory"`
	RoomType      string `json:"room_type,omitempty" bson:"roomType,omitempty"`

	PricePerNight float64 `json:"price_per_night" bson:"pricePerNight"`
	OldPrice      float64 `json:"old_price,omitempty" bson:"oldPrice,omitempty"`
	Currency      string  `json:"currency,omitempty" bson:"currency,omitempty"`

	TotalRooms     int `json:"total_rooms,omitempty" bson:"totalRooms,omitempty"`
	AvailableRooms int `json:"available_rooms,omitempty" bson:"availableRooms,omitempty"`
	Bookings       int `json:"bookings,omitempty" bson:"bookings,omitempty"`

	CheckInTime  string `json:"check_in_time,omitempty" bson:"checkInTime,omitempty"`
	CheckOutTime string `json:"check_out_time,omitempty" bson:"checkOutTime,omitempty"`

	Amenities []string `json:"amenities,omitempty" bson:"amenities,omitempty"`

	Description     string `json:"description,omitempty" bson:"description,omitempty"`
	LongDescription string `json:"long_description,omitempty" bson:"longDescription,omitempty"`

	Faqs []Faq    `json:"faqs,omitempty" bson:"faqs,omitempty"`
	Tags []string `json:"tags,omitempty" bson:"tags,omitempty"`

	Rating       float64 `json:"rating,omitempty" bson:"rating,omitempty"`
	ReviewsCount int     `json:"reviews_count,omitempty" bson:"reviewsCount,omitempty"`

	MetaTitle       string `json:"meta_title,omitempty" bson:"metaTitle,omitempty"`
	MetaDescription string `json:"meta_description,omitempty" bson:"metaDescription,omitempty"`

	Status     HotelStatus `json:"status" bson:"status"`
	IsActive   bool        `json:"is_active" bson:"isActive"`
	IsFeatured bool        `json:"is_featured" bson:"isFeatured"`
	Order      int         `json:"order" bson:"order"`
	CreatedAt  time.Time   `json:"created_at" bson:"createdAt"`
	UpdatedAt  time.Time   `json:"updated_at" bson:"updatedAt"`
}
