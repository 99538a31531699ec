package models

import "time"

// Reservation books a catway for [StartDate, EndDate].
type Reservation struct {
	ID           string    `json:"id"`
	CatwayNumber int       `json:"catwayNumber"`
	ClientName   string    `json:"clientName"`
	BoatName     string    `json:"boatName"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ActiveAt reports whether the reservation covers t (bounds included).
func (r Reservation) ActiveAt(t time.Time) bool {
	return !t.Before(r.StartDate) && !t.After(r.EndDate)
}

// ReservationPatch carries the fields of a reservation update. Nil means "unchanged".
type ReservationPatch struct {
	CatwayNumber *int       `json:"catwayNumber,omitempty"`
	ClientName   *string    `json:"clientName,omitempty"`
	BoatName     *string    `json:"boatName,omitempty"`
	StartDate    *time.Time `json:"startDate,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`
}

// Apply returns a copy of r with the present patch fields set.
func (p ReservationPatch) Apply(r Reservation) Reservation {
	if p.CatwayNumber != nil {
		r.CatwayNumber = *p.CatwayNumber
	}
	if p.ClientName != nil {
		r.ClientName = *p.ClientName
	}
	if p.BoatName != nil {
		r.BoatName = *p.BoatName
	}
	if p.StartDate != nil {
		r.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		r.EndDate = *p.EndDate
	}
	return r
}
