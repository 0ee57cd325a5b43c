package dto

import (
	"net/http"
	"strconv"
	"strings"

	"adscape/shared/constant"
	"adscape/shared/model"
	"adscape/shared/timezone"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// Metadata is the audit block of every response. Actors are client ids, "guest" or "internal".
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedBy string `json:"modified_by"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	m.ModifiedAt = timezone.Format(model.ModifiedAt, constant.DateFormat)
	m.CreatedBy = model.CreatedBy
	m.ModifiedBy = model.ModifiedBy
}

// QueryParams is the paging and sorting part of a listing request. SortBy is checked against the
// table's columns by the repository.
type QueryParams struct {
	Page    int    `json:"page"`
	Limit   int    `json:"limit"`
	SortBy  string `json:"sort_by"`
	SortDir string `json:"sort_dir"`
}

// FromRequest reads page, limit, sort_by and sort_dir. Malformed numbers are ignored and limit is
// capped at constant.MaxValueLimit. With withDefaults the first page of DefaultValueLimit rows is used.
func (q *QueryParams) FromRequest(r *http.Request, withDefaults bool) {
	query := r.URL.Query()

	if page := positive(query.Get(constant.RequestParamPage)); page > 0 {
		q.Page = page
	}

	if limit := positive(query.Get(constant.RequestParamLimit)); limit > 0 {
		q.Limit = min(limit, constant.MaxValueLimit)
	}

	if sortBy := strings.TrimSpace(query.Get(constant.RequestParamSortBy)); sortBy != "" {
		q.SortBy = sortBy
	}

	if sortDir := strings.ToUpper(query.Get(constant.RequestParamSortDir)); sortDir == SortDirAsc || sortDir == SortDirDesc {
		q.SortDir = sortDir
	}

	if !withDefaults {
		return
	}

	if q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}
}

func positive(value string) int {
	number, err := strconv.Atoi(value)
	if err != nil || number < 0 {
		return 0
	}

	return number
}
