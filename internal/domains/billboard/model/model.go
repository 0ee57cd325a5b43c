package model

import "adscape/shared/model"

const (
	TableName  = "billboards"
	EntityName = "billboard"

	FieldID           = "billboard_id"
	FieldLocation     = "location"
	FieldPricePerDay  = "price_per_day"
	FieldResolution   = "resolution"
	FieldAvailability = "availability"
	FieldContactPhone = "contact_phone"
	FieldContactEmail = "contact_email"
)

const (
	CacheKeyGet    = "billboard:get"
	CacheKeyGetAll = "billboard:gets"
	CacheKeyCount  = "billboard:count"
)

// Billboard is a registered screen. Availability is false exactly while one
// non-cancelled booking holds it.
type Billboard struct {
	ID           string   `db:"billboard_id"`
	Location     string   `db:"location"`
	PricePerDay  *float64 `db:"price_per_day"`
	Resolution   string   `db:"resolution"`
	Availability bool     `db:"availability"`
	ContactPhone *string  `db:"contact_phone"`
	ContactEmail *string  `db:"contact_email"`
	model.Metadata
}
