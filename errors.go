package dateformat

import (
	"errors"
	"fmt"
)

// ErrNoCandidates indicates the candidate provider has no name list for the
// requested unit/width/locale combination.
var ErrNoCandidates = errors.New("dateformat: no locale candidates")

// ErrUnknownLocale indicates no candidate bundle could be resolved for a
// locale, directly or through its parent chain.
var ErrUnknownLocale = errors.New("dateformat: unknown locale")

// TemplateError reports a format template that cannot be compiled. It is
// returned synchronously and never reaches the matcher.
type TemplateError struct {
	Token  string
	Reason string
}

func (e *TemplateError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("dateformat: invalid template: %s", e.Reason)
	}
	return fmt.Sprintf("dateformat: invalid template: %s %q", e.Reason, e.Token)
}

// InvalidReason classifies why an input failed to become a valid date. It is
// carried on the Result value, never raised as an error: runtime parse
// invalidity is an ordinary outcome, not a fault.
type InvalidReason string

const (
	// ReasonNoMatch means the composite pattern did not match the input.
	ReasonNoMatch InvalidReason = "no match"
	// ReasonFieldConflict means two sources claimed the same field with
	// different values, for example an explicit weekday contradicting the
	// weekday computed from the matched date.
	ReasonFieldConflict InvalidReason = "field conflict"
	// ReasonZoneNotMatched means the captured zone name is unknown to the
	// calendar engine's zone registry.
	ReasonZoneNotMatched InvalidReason = "zone not matched"
)

// reasonNotMatched marks a capture that matched lexically but has no
// corresponding candidate, e.g. a month name absent from the locale's list.
func reasonNotMatched(f Field) InvalidReason {
	return InvalidReason(string(f) + " not matched")
}

// reasonOutOfRange is produced by the calendar engine for fields outside
// their calendar-valid range.
func reasonOutOfRange(unit string) InvalidReason {
	return InvalidReason(unit + " out of range")
}
