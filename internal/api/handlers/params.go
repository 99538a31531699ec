package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/marina-backend/internal/models"
	"github.com/baharkarakas/marina-backend/internal/validate"
)

func catwayNumberParam(r *http.Request) (int, error) {
	n, err := strconv.ParseInt(chi.URLParam(r, "catwayNumber"), 10, 32)
	if errors.Is(err, strconv.ErrRange) {
		return 0, validate.Field("catwayNumber", validate.RuleMax, "out of range")
	}
	if err != nil {
		return 0, validate.Field("catwayNumber", validate.RuleFormat, "must be a number")
	}
	return int(n), nil
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"}

// date accepts RFC 3339 timestamps and the shorter forms HTML date inputs
// send. Zone-less values are read as UTC.
type date time.Time

func (d *date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*d = date(t)
			return nil
		}
	}
	return &time.ParseError{Layout: time.RFC3339, Value: s, Message: ": unsupported date format"}
}

func (d *date) ptr() *time.Time {
	if d == nil {
		return nil
	}
	t := time.Time(*d)
	return &t
}

type reservationBody struct {
	CatwayNumber *int    `json:"catwayNumber"`
	ClientName   *string `json:"clientName"`
	BoatName     *string `json:"boatName"`
	StartDate    *date   `json:"startDate"`
	EndDate      *date   `json:"endDate"`
}

func (b reservationBody) patch() models.ReservationPatch {
	return models.ReservationPatch{
		CatwayNumber: b.CatwayNumber,
		ClientName:   b.ClientName,
		BoatName:     b.BoatName,
		StartDate:    b.StartDate.ptr(),
		EndDate:      b.EndDate.ptr(),
	}
}

// reservation leaves absent fields zero so validation reports them.
func (b reservationBody) reservation() models.Reservation {
	return b.patch().Apply(models.Reservation{})
}
