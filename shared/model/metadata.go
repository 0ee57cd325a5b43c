package model

import "time"

// Metadata is the audit block carried by every row. CreatedBy and ModifiedBy hold the acting
// client id, "guest" or "internal".
type Metadata struct {
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
	ModifiedAt time.Time `db:"modified_at" json:"modified_at"`
	CreatedBy  string    `db:"created_by"  json:"created_by"`
	ModifiedBy string    `db:"modified_by" json:"modified_by"`
}
