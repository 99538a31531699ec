// Package validate holds the pure field and cross-field checks run before
// every write. Nothing here performs I/O.
package validate

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrValidation matches any Errs value with errors.Is.
var ErrValidation = errors.New("validation failed")

// Rule identifies the violated constraint.
type Rule string

const (
	RuleRequired         Rule = "required"
	RuleMin              Rule = "min"
	RuleMax              Rule = "max"
	RuleMinLength        Rule = "min_length"
	RuleMaxLength        Rule = "max_length"
	RuleOneOf            Rule = "one_of"
	RuleEmail            Rule = "email"
	RuleInvalidDateRange Rule = "invalid_date_range"
	RuleImmutable        Rule = "immutable"
	RuleFormat           Rule = "format"
)

type ErrField struct {
	Field string `json:"field"`
	Rule  Rule   `json:"rule"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string {
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

func (e Errs) Is(target error) bool { return target == ErrValidation }

// Has reports whether any violation carries rule.
func (e Errs) Has(rule Rule) bool {
	for _, ef := range e {
		if ef.Rule == rule {
			return true
		}
	}
	return false
}

// Add appends f when it is non-nil.
func (e *Errs) Add(f *ErrField) {
	if f != nil {
		*e = append(*e, *f)
	}
}

// Err returns nil for an empty list so callers never get a typed nil.
func (e Errs) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Field builds a single-violation error.
func Field(field string, rule Rule, msg string) error {
	return Errs{{Field: field, Rule: rule, Msg: msg}}
}

// Helpers

func Required(field, value string) *ErrField {
	if strings.TrimSpace(value) == "" {
		return &ErrField{Field: field, Rule: RuleRequired, Msg: "required"}
	}
	return nil
}

func MinInt(field string, v, min int64) *ErrField {
	if v < min {
		return &ErrField{Field: field, Rule: RuleMin, Msg: "must be >= " + strconv.FormatInt(min, 10)}
	}
	return nil
}

func MaxInt(field string, v, max int64) *ErrField {
	if v > max {
		return &ErrField{Field: field, Rule: RuleMax, Msg: "must be <= " + strconv.FormatInt(max, 10)}
	}
	return nil
}

// MinLen counts runes, not bytes.
func MinLen(field, value string, n int) *ErrField {
	if len([]rune(value)) < n {
		return &ErrField{Field: field, Rule: RuleMinLength, Msg: "must contain at least " + strconv.Itoa(n) + " characters"}
	}
	return nil
}

func MaxBytes(field, value string, n int) *ErrField {
	if len(value) > n {
		return &ErrField{Field: field, Rule: RuleMaxLength, Msg: "must be at most " + strconv.Itoa(n) + " bytes"}
	}
	return nil
}

func OneOf(field, value string, allowed ...string) *ErrField {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &ErrField{Field: field, Rule: RuleOneOf, Msg: "must be one of " + strings.Join(allowed, ", ")}
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func Email(field, value string) *ErrField {
	if !emailRe.MatchString(value) {
		return &ErrField{Field: field, Rule: RuleEmail, Msg: "must be a valid email"}
	}
	return nil
}
