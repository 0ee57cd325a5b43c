package model

import (
	"fmt"
	"slices"
	"time"

	"adscape/shared/constant"
	"adscape/shared/failure"
	"adscape/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldAdvertiserID = "advertiser_id"
	FieldBillboardID  = "billboard_id"
	FieldStartDate    = "start_date"
	FieldEndDate      = "end_date"
	FieldStatus       = "status"
	FieldCancelledAt  = "cancelled_at"
)

const (
	StatusPending   = "Pending"
	StatusScheduled = "Scheduled"
	StatusCancelled = "Cancelled"
)

const (
	CacheKeyGet    = "booking:get"
	CacheKeyGetAll = "booking:gets"
	CacheKeyCount  = "booking:count"

	// CacheKeyBroadcast prefixes every query-side projection of bookings.
	CacheKeyBroadcast = "broadcast"
)

const (
	EventCreated   = "booking.created"
	EventCancelled = "booking.cancelled"
	EventScheduled = "booking.scheduled"
)

var Statuses = []string{StatusPending, StatusScheduled, StatusCancelled}

type Booking struct {
	ID           string     `db:"id"`
	AdvertiserID string     `db:"advertiser_id"`
	BillboardID  string     `db:"billboard_id"`
	StartDate    time.Time  `db:"start_date"`
	EndDate      time.Time  `db:"end_date"`
	Status       string     `db:"status"`
	CancelledAt  *time.Time `db:"cancelled_at"`
	model.Metadata
}

// Validate checks row shape only. Availability is not the ledger's concern.
func (b Booking) Validate() error {
	switch {
	case b.ID == constant.Empty:
		return failure.BadRequestFromString("booking id is required")
	case b.AdvertiserID == constant.Empty:
		return failure.BadRequestFromString("advertiser_id is required")
	case b.BillboardID == constant.Empty:
		return failure.BadRequestFromString("billboard_id is required")
	case !slices.Contains(Statuses, b.Status):
		return failure.BadRequestFromString(fmt.Sprintf("unknown booking status %q", b.Status))
	}

	return ValidateRange(b.StartDate, b.EndDate)
}

func (b Booking) Active() bool {
	return b.ID != constant.Empty && b.Status != StatusCancelled
}

// ValidateRange rejects a range whose start is after its end. Equal dates book a single day.
func ValidateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return failure.BadRequestFromString("start_date and end_date are required")
	}

	if start.After(end) {
		return failure.BadRequestFromString("invalid range: start_date must not be after end_date")
	}

	return nil
}

// Detail is one booking joined with its billboard, advertiser and asset.
type Detail struct {
	BookingID         string    `column:"id"           db:"booking_id"`
	AdvertiserID      string    `db:"advertiser_id"`
	AdvertiserName    *string   `column:"company_name" db:"advertiser_name"    table:"advertisers"`
	BillboardID       string    `db:"billboard_id"`
	BillboardLocation string    `column:"location"     db:"billboard_location" table:"billboards"`
	StartDate         time.Time `db:"start_date"`
	EndDate           time.Time `db:"end_date"`
	Status            string    `db:"status"`
	FileURL           *string   `db:"file_url"         table:"ad_assets"`
	CreatedAt         time.Time `db:"created_at"`
}

func (Detail) GetJoinQuery() string {
	return "JOIN billboards ON billboards.billboard_id = bookings.billboard_id " +
		"LEFT JOIN advertisers ON advertisers.id = bookings.advertiser_id " +
		"LEFT JOIN ad_assets ON ad_assets.booking_id = bookings.id"
}

// Event is published after a booking transition commits.
type Event struct {
	Type         string    `json:"type"`
	BookingID    string    `json:"booking_id"`
	BillboardID  string    `json:"billboard_id"`
	AdvertiserID string    `json:"advertiser_id"`
	Status       string    `json:"status"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func NewEvent(eventType string, booking Booking, at time.Time) Event {
	return Event{
		Type:         eventType,
		BookingID:    booking.ID,
		BillboardID:  booking.BillboardID,
		AdvertiserID: booking.AdvertiserID,
		Status:       booking.Status,
		OccurredAt:   at,
	}
}

// Approval is the payload consumed from the approvals topic.
type Approval struct {
	BookingID string `json:"booking_id"`
}
