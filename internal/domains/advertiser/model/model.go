package model

import "adscape/shared/model"

const (
	TableName  = "advertisers"
	EntityName = "advertiser"

	FieldID           = "id"
	FieldCompanyName  = "company_name"
	FieldContactEmail = "contact_email"
)

const (
	CacheKeyGet    = "advertiser:get"
	CacheKeyGetAll = "advertiser:gets"
	CacheKeyCount  = "advertiser:count"
)

type Advertiser struct {
	ID           string  `db:"id"`
	CompanyName  string  `db:"company_name"`
	ContactEmail *string `db:"contact_email"`
	model.Metadata
}
