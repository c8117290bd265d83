package models

import (
	"time"
)

// EventType classifies an analytics event
type EventType string

const (
	EventPageView    EventType = "page_view"
	EventProductView EventType = "product_view"
	EventContactForm EventType = "contact_form"
	EventDownload    EventType = "download"
	EventSignup      EventType = "signup"
)

// ValidEventTypes defines allowed analytics event types
var ValidEventTypes = map[EventType]bool{
	EventPageView:    true,
	EventProductView: true,
	EventContactForm: true,
	EventDownload:    true,
	EventSignup:      true,
}

// EntityType classifies what a page-level event refers to
type EntityType string

const (
	EntityProduct     EntityType = "product"
	EntityBlogPost    EntityType = "blog_post"
	EntityCaseStudy   EntityType = "case_study"
	EntityLandingPage EntityType = "landing_page"
)

// ValidEntityTypes defines allowed analytics entity types
var ValidEntityTypes = map[EntityType]bool{
	EntityProduct:     true,
	EntityBlogPost:    true,
	EntityCaseStudy:   true,
	EntityLandingPage: true,
}

// AnalyticsEvent is an append-only record of a client interaction.
// entity_type/entity_id loosely reference content rows; no FK is enforced.
type AnalyticsEvent struct {
	ID         int64       `json:"id" db:"id"`
	EventType  EventType   `json:"event_type" db:"event_type"`
	EntityType *EntityType `json:"entity_type" db:"entity_type"`
	EntityID   *int64      `json:"entity_id" db:"entity_id"`
	UserID     *int64      `json:"user_id" db:"user_id"`
	SessionID  string      `json:"session_id" db:"session_id"`
	IPAddress  string      `json:"ip_address" db:"ip_address"`
	UserAgent  string      `json:"user_agent" db:"user_agent"`
	Referrer   *string     `json:"referrer" db:"referrer"`
	Metadata   Metadata    `json:"metadata" db:"metadata"`
	CreatedAt  time.Time   `json:"created_at" db:"created_at"`
}

// CreateAnalyticsEventInput is the accepted payload for createAnalyticsEvent
type CreateAnalyticsEventInput struct {
	EventType  EventType   `json:"event_type"`
	EntityType *EntityType `json:"entity_type"`
	EntityID   *int64      `json:"entity_id"`
	UserID     *int64      `json:"user_id"`
	SessionID  string      `json:"session_id"`
	IPAddress  string      `json:"ip_address"`
	UserAgent  string      `json:"user_agent"`
	Referrer   *string     `json:"referrer"`
	Metadata   Metadata    `json:"metadata"`
}

// ApplyDefaults fills omitted optional fields with their schema defaults
func (in *CreateAnalyticsEventInput) ApplyDefaults() {
	if in.Metadata == nil {
		in.Metadata = Metadata{}
	}
}

// ProductViews is one entry in the analytics summary product ranking
type ProductViews struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Views       int64  `json:"views"`
}

// DailyEventCount is a per-day, per-type event count within the summary window
type DailyEventCount struct {
	EventType EventType `json:"event_type"`
	Count     int64     `json:"count"`
	Date      string    `json:"date"` // YYYY-MM-DD
}

// AnalyticsSummary aggregates event activity over a trailing day window
type AnalyticsSummary struct {
	TotalPageViews    int64             `json:"total_page_views"`
	TotalProductViews int64             `json:"total_product_views"`
	TotalContactForms int64             `json:"total_contact_forms"`
	TotalDownloads    int64             `json:"total_downloads"`
	TotalSignups      int64             `json:"total_signups"`
	TopProducts       []ProductViews    `json:"top_products"`
	RecentEvents      []DailyEventCount `json:"recent_events"`
}
