package model

import "adscape/shared/model"

const (
	TableName  = "ad_assets"
	EntityName = "asset"

	FieldBookingID = "booking_id"
	FieldFileURL   = "file_url"

	// Directory is the object prefix creatives are uploaded under.
	Directory = "creatives"
)

// Asset links a booking to its creative. FileURL is nil when nothing was attached.
type Asset struct {
	BookingID string  `db:"booking_id"`
	FileURL   *string `db:"file_url"`
	model.Metadata
}
