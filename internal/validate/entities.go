package validate

import (
	"math"
	"strings"

	"github.com/baharkarakas/marina-backend/internal/models"
)

const (
	MinUsernameLength = 3
	MinPasswordLength = 6
	// bcrypt ignores everything past 72 bytes.
	MaxPasswordBytes = 72
	// catway_number is a Postgres INTEGER.
	MaxCatwayNumber = math.MaxInt32
)

// Catway checks a full catway record before it is created.
func Catway(c models.Catway) error {
	var errs Errs
	errs.Add(catwayNumber(c.CatwayNumber))
	if c.CatwayType == "" {
		errs.Add(Required("catwayType", ""))
	} else {
		errs.Add(OneOf("catwayType", string(c.CatwayType), string(models.CatwayLong), string(models.CatwayShort)))
	}
	errs.Add(Required("catwayState", c.CatwayState))
	return errs.Err()
}

// CatwayPatch checks an update against the stored catway. Number and type are
// fixed at creation: repeating the stored value is accepted, changing it is not.
func CatwayPatch(current models.Catway, p models.CatwayPatch) error {
	var errs Errs
	if p.CatwayNumber != nil && *p.CatwayNumber != current.CatwayNumber {
		errs.Add(&ErrField{Field: "catwayNumber", Rule: RuleImmutable, Msg: "cannot be changed"})
	}
	if p.CatwayType != nil && *p.CatwayType != current.CatwayType {
		errs.Add(&ErrField{Field: "catwayType", Rule: RuleImmutable, Msg: "cannot be changed"})
	}
	if p.CatwayState != nil {
		errs.Add(Required("catwayState", *p.CatwayState))
	}
	return errs.Err()
}

// Reservation checks a full reservation record, on create and on the merged
// record of an update. The catway existence check is the service's job.
func Reservation(r models.Reservation) error {
	var errs Errs
	errs.Add(catwayNumber(r.CatwayNumber))
	errs.Add(Required("clientName", r.ClientName))
	errs.Add(Required("boatName", r.BoatName))
	if r.StartDate.IsZero() {
		errs.Add(&ErrField{Field: "startDate", Rule: RuleRequired, Msg: "required"})
	}
	if r.EndDate.IsZero() {
		errs.Add(&ErrField{Field: "endDate", Rule: RuleRequired, Msg: "required"})
	}
	if !r.StartDate.IsZero() && !r.EndDate.IsZero() && !r.EndDate.After(r.StartDate) {
		errs.Add(&ErrField{Field: "endDate", Rule: RuleInvalidDateRange, Msg: "must be after startDate"})
	}
	return errs.Err()
}

func catwayNumber(n int) *ErrField {
	if n == 0 {
		return &ErrField{Field: "catwayNumber", Rule: RuleRequired, Msg: "required"}
	}
	if f := MinInt("catwayNumber", int64(n), 1); f != nil {
		return f
	}
	return MaxInt("catwayNumber", int64(n), MaxCatwayNumber)
}

// NormalizeEmail trims and lowercases, as emails are stored.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewUser checks signup fields. username and email must already be normalized.
func NewUser(username, email, password string) error {
	var errs Errs
	if f := Required("username", username); f != nil {
		errs.Add(f)
	} else {
		errs.Add(MinLen("username", username, MinUsernameLength))
	}
	if f := Required("email", email); f != nil {
		errs.Add(f)
	} else {
		errs.Add(Email("email", email))
	}
	errs = append(errs, checkPassword(password)...)
	return errs.Err()
}

// UserPatch checks the fields present in a user update.
func UserPatch(p models.UserPatch) error {
	var errs Errs
	if p.Username != nil {
		username := strings.TrimSpace(*p.Username)
		if f := Required("username", username); f != nil {
			errs.Add(f)
		} else {
			errs.Add(MinLen("username", username, MinUsernameLength))
		}
	}
	if p.Password != nil {
		errs = append(errs, checkPassword(*p.Password)...)
	}
	return errs.Err()
}

func checkPassword(p string) Errs {
	var errs Errs
	if p == "" {
		errs.Add(&ErrField{Field: "password", Rule: RuleRequired, Msg: "required"})
		return errs
	}
	errs.Add(MinLen("password", p, MinPasswordLength))
	errs.Add(MaxBytes("password", p, MaxPasswordBytes))
	return errs
}
