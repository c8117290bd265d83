package models

import (
	"time"
)

// ContactStatus tracks where a submission sits in the sales funnel.
// Transitions are curated by admins; order is not enforced by the store.
type ContactStatus string

const (
	ContactStatusNew       ContactStatus = "new"
	ContactStatusContacted ContactStatus = "contacted"
	ContactStatusQualified ContactStatus = "qualified"
	ContactStatusClosed    ContactStatus = "closed"
)

// ValidContactStatuses defines allowed contact submission statuses
var ValidContactStatuses = map[ContactStatus]bool{
	ContactStatusNew:       true,
	ContactStatusContacted: true,
	ContactStatusQualified: true,
	ContactStatusClosed:    true,
}

// ContactSubmission represents a contact form submission
type ContactSubmission struct {
	ID        int64         `json:"id" db:"id"`
	Name      string        `json:"name" db:"name"`
	Email     string        `json:"email" db:"email"`
	Company   *string       `json:"company" db:"company"`
	Phone     *string       `json:"phone" db:"phone"`
	Message   string        `json:"message" db:"message"`
	ProductID *int64        `json:"product_id" db:"product_id"`
	Status    ContactStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
}

// CreateContactSubmissionInput is the accepted payload for createContactSubmission
type CreateContactSubmissionInput struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Company   *string `json:"company"`
	Phone     *string `json:"phone"`
	Message   string  `json:"message"`
	ProductID *int64  `json:"product_id"`
}
