package models

import "time"

type CatwayType string

const (
	CatwayLong  CatwayType = "long"
	CatwayShort CatwayType = "short"
)

// Valid reports whether t is one of the known catway types.
func (t CatwayType) Valid() bool {
	return t == CatwayLong || t == CatwayShort
}

// Catway is a berth, identified by its number.
type Catway struct {
	CatwayNumber int        `json:"catwayNumber"`
	CatwayType   CatwayType `json:"catwayType"`
	CatwayState  string     `json:"catwayState"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// CatwayPatch carries the fields of a catway update. Nil means "unchanged".
type CatwayPatch struct {
	CatwayNumber *int        `json:"catwayNumber,omitempty"`
	CatwayType   *CatwayType `json:"catwayType,omitempty"`
	CatwayState  *string     `json:"catwayState,omitempty"`
}
