package v1

import (
	"github.com/spendguard/backend/internal/tracker"
	ez_uuid "github.com/spendguard/backend/internal/uuid"
)

// Controller bundles the dependencies of the API handlers.
type Controller struct {
	Tracker *tracker.Tracker
}

// NewController returns a Controller using the given tracker.
func NewController(t *tracker.Tracker) Controller {
	return Controller{Tracker: t}
}

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// Pagination contains information about the pagination for collection endpoints
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}
