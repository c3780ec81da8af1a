package domain

import "time"

// EntryType distinguishes single-entry from multiple-entry visas.
type EntryType string

const (
	EntrySingle   EntryType = "single"
	EntryMultiple EntryType = "multiple"
)

// SubmissionType describes how a visa application is lodged.
type SubmissionType string

const (
	SubmissionEVisa    SubmissionType = "e-visa"
	SubmissionInPerson SubmissionType = "in-person"
	SubmissionFlexible SubmissionType = "flexible"
)

// VisaType is one visa product offered for a country.
type VisaType struct {
	Name           string    `json:"name" bson:"name"`
	NameBn         string    `json:"name_bn,omitempty" bson:"nameBn,omitempty"`
	ProcessingTime string    `json:"processing_time,omitempty" bson:"processingTime,omitempty"`
	Fee            float64   `json:"fee,omitempty" bson:"fee,omitempty"`
	GovernmentFee  float64   `json:"government_fee,omitempty" bson:"governmentFee,omitempty"`
	Duration       string    `json:"duration,omitempty" bson:"duration,omitempty"`
	EntryType      EntryType `json:"entry_type" bson:"entryType"`
	IsAvailable    bool      `json:"is_available" bson:"isAvailable"`
}

// DocumentRequirement is a single item on a country's checklist.
type DocumentRequirement struct {
	Title       string `json:"title" bson:"title"`
	TitleBn     string `json:"title_bn,omitempty" bson:"titleBn,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	IsRequired  bool   `json:"is_required" bson:"isRequired"`
}

// EmbassyInfo holds contact details for a country's embassy.
type EmbassyInfo struct {
	Name         string `json:"name,omitempty" bson:"name,omitempty"`
	Address      string `json:"address,omitempty" bson:"address,omitempty"`
	Phone        string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email        string `json:"email,omitempty" bson:"email,omitempty"`
	Website      string `json:"website,omitempty" bson:"website,omitempty"`
	WorkingHours string `json:"working_hours,omitempty" bson:"workingHours,omitempty"`
	MapURL       string `json:"map_url,omitempty" bson:"mapUrl,omitempty"`
}

// Country is a visa destination with its offered visa products.
type Country struct {
	ID            string `json:"id" bson:"_id,omitempty"`
	Name          string `json:"name" bson:"name"`
	NameBn        string `json:"name_bn,omitempty" bson:"nameBn,omitempty"`
	Slug          string `json:"slug" bson:"slug"`
	Flag          string `json:"flag,omitempty" bson:"flag,omitempty"`
	Image         string `json:"image,omitempty" bson:"image,omitempty"`
	Region        string `json:"region,omitempty" bson:"region,omitempty"`
	Capital       string `json:"capital,omitempty" bson:"capital,omitempty"`
	Currency      string `json:"currency,omitempty" bson:"currency,omitempty"`
	Timezone      string `json:"timezone,omitempty" bson:"timezone,omitempty"`
	TouristsPerYr string `json:"tourists_per_year,omitempty" bson:"touristsPerYear,omitempty"`

	Description   string `json:"description,omitempty" bson:"description,omitempty"`
	DescriptionBn string `json:"description_bn,omitempty" bson:"descriptionBn,omitempty"`

	VisaTypes            []VisaType            `json:"visa_types,omitempty" bson:"visaTypes,omitempty"`
	DocumentRequirements []DocumentRequirement `json:"document_requirements,omitempty" bson:"documentRequirements,omitempty"`
	EmbassyInfo          *EmbassyInfo          `json:"embassy_info,omitempty" bson:"embassyInfo,omitempty"`

	StartingPrice  float64        `json:"starting_price,omitempty" bson:"startingPrice,omitempty"`
	SubmissionType SubmissionType `json:"submission_type" bson:"submissionType"`

	MetaTitle       string `json:"meta_title,omitempty" bson:"metaTitle,omitempty"`
	MetaDescription string `json:"meta_description,omitempty" bson:"metaDescription,omitempty"`

	IsActive   bool      `json:"is_active" bson:"isActive"`
	IsFeatured bool      `json:"is_featured" bson:"isFeatured"`
	Order      int       `json:"order" bson:"order"`
	CreatedAt  time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updatedAt"`
}
