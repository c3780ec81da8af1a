package domain

import "time"

// DocumentStatus tracks a visa document through processing.
type DocumentStatus string

const (
	DocumentPending    DocumentStatus = "pending"
	DocumentProcessing DocumentStatus = "processing"
	DocumentDelivered  DocumentStatus = "delivered"
)

// VisaDocument is a customer's visa record kept on file. Unlike the listing
// entities it has no slug; it is addressed by id and a generated reference
// number, and is owned by a user.
type VisaDocument struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Reference string `json:"reference" bson:"reference"`
	UserID    string `json:"user_id" bson:"user"`

	ApplicantName string `json:"applicant_name" bson:"applicantName"`
	Phone         string `json:"phone,omitempty" bson:"phone,omitempty"`
	PassportNo    string `json:"passport_no,omitempty" bson:"passportNo,omitempty"`

	VisaType   string     `json:"visa_type,omitempty" bson:"visaType,omitempty"`
	Country    string     `json:"country,omitempty" bson:"country,omitempty"`
	VisaNo     string     `json:"visa_no,omitempty" bson:"visaNo,omitempty"`
	IssueDate  *time.Time `json:"issue_date,omitempty" bson:"issueDate,omitempty"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty" bson:"expiryDate,omitempty"`
	EntryType  EntryType  `json:"entry_type,omitempty" bson:"entryType,omitempty"`

	Images []string `json:"images,omitempty" bson:"images,omitempty"`
	Notes  string   `json:"notes,omitempty" bson:"notes,omitempty"`

	Status    DocumentStatus `json:"status" bson:"status"`
	CreatedBy string         `json:"created_by,omitempty" bson:"createdBy,omitempty"`
	CreatedAt time.Time      `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time      `json:"updated_at" bson:"updatedAt"`
}
