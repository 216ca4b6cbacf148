package v1

import (
	ez_uuid "github.com/spendwell/backend/internal/uuid"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// URIYearMonth binds the /:year/:month path used by the budget and
// report endpoints. Non-numeric values fail the binding, out-of-range
// values the validation tags.
type URIYearMonth struct {
	Year  int `uri:"year" binding:"required,min=1000,max=9999" example:"2024"` // Four-digit year
	Month int `uri:"month" binding:"required,min=1,max=12" example:"3"`        // Month of the year, 1 is January
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}
