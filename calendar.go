package dateformat

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tkuchiki/go-timezone"
)

// CivilFields is the reconciled field set handed to the calendar engine for
// range validation and instant construction.
type CivilFields struct {
	Year        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

// CalendarEngine owns calendar-range math and the zone registry. The
// reconciler performs structural merging only and delegates every range or
// conversion decision here, so an alternative calendar can be substituted
// without touching the pipeline.
type CalendarEngine interface {
	// Construct validates ranges (month 1-12, day within the month's length
	// including leap years, time bounds) and builds the instant, or reports
	// why it is invalid.
	Construct(f CivilFields, loc *time.Location) (time.Time, InvalidReason)
	// WeekToDate converts an ISO week date (week-year, week 1-53, weekday
	// 1-7 Monday-first) to year/month/day.
	WeekToDate(weekYear, week, weekday int) (int, int, int, InvalidReason)
	// OrdinalToDate converts a day-of-year ordinal to month/day.
	OrdinalToDate(year, ordinal int) (int, int, InvalidReason)
	// Weekday reports the 1-7 Monday-first weekday of a date.
	Weekday(year, month, day int) int
	// ResolveZone maps a captured zone name to a location.
	ResolveZone(name string) (*time.Location, bool)
}

// GregorianEngine is the default CalendarEngine built on the proleptic
// Gregorian calendar. Zone names resolve through the IANA database first and
// fall back to unambiguous timezone abbreviations.
type GregorianEngine struct {
	tzdb *timezone.Timezone
}

var _ CalendarEngine = (*GregorianEngine)(nil)

func NewGregorianEngine() *GregorianEngine {
	return &GregorianEngine{tzdb: timezone.New()}
}

var (
	defaultEngineOnce sync.Once
	defaultEngine     *GregorianEngine
)

// DefaultEngine returns the shared Gregorian engine.
func DefaultEngine() *GregorianEngine {
	defaultEngineOnce.Do(func() {
		defaultEngine = NewGregorianEngine()
	})
	return defaultEngine
}

func (e *GregorianEngine) Construct(f CivilFields, loc *time.Location) (time.Time, InvalidReason) {
	if loc == nil {
		loc = time.UTC
	}
	if f.Month < 1 || f.Month > 12 {
		return time.Time{}, reasonOutOfRange("month")
	}
	if f.Day < 1 || f.Day > daysInMonth(f.Year, f.Month) {
		return time.Time{}, reasonOutOfRange("day")
	}
	if f.Hour < 0 || f.Hour > 23 {
		return time.Time{}, reasonOutOfRange("hour")
	}
	if f.Minute < 0 || f.Minute > 59 {
		return time.Time{}, reasonOutOfRange("minute")
	}
	if f.Second < 0 || f.Second > 59 {
		return time.Time{}, reasonOutOfRange("second")
	}
	if f.Millisecond < 0 || f.Millisecond > 999 {
		return time.Time{}, reasonOutOfRange("millisecond")
	}
	t := time.Date(f.Year, time.Month(f.Month), f.Day, f.Hour, f.Minute, f.Second, f.Millisecond*int(time.Millisecond), loc)
	return t, ""
}

func (e *GregorianEngine) WeekToDate(weekYear, week, weekday int) (int, int, int, InvalidReason) {
	if week < 1 || week > weeksInWeekYear(weekYear) {
		return 0, 0, 0, reasonOutOfRange("week")
	}
	if weekday < 1 || weekday > 7 {
		return 0, 0, 0, reasonOutOfRange("weekday")
	}

	// January 4 is always inside ISO week 1.
	jan4 := time.Date(weekYear, time.January, 4, 0, 0, 0, 0, time.UTC)
	week1Monday := jan4.AddDate(0, 0, -(isoWeekday(jan4) - 1))
	t := week1Monday.AddDate(0, 0, (week-1)*7+(weekday-1))
	return t.Year(), int(t.Month()), t.Day(), ""
}

func (e *GregorianEngine) OrdinalToDate(year, ordinal int) (int, int, InvalidReason) {
	max := 365
	if isLeapYear(year) {
		max = 366
	}
	if ordinal < 1 || ordinal > max {
		return 0, 0, reasonOutOfRange("ordinal")
	}
	t := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, ordinal-1)
	return int(t.Month()), t.Day(), ""
}

func (e *GregorianEngine) Weekday(year, month, day int) int {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return isoWeekday(t)
}

func (e *GregorianEngine) ResolveZone(name string) (*time.Location, bool) {
	if name == "" {
		return nil, false
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc, true
	}
	if e.tzdb == nil {
		return nil, false
	}
	// An abbreviation resolves only when it denotes a single offset; an
	// ambiguous one like CST stays unresolved.
	infos, err := e.tzdb.GetTzAbbreviationInfo(strings.ToUpper(name))
	if err != nil || len(infos) != 1 {
		return nil, false
	}
	return time.FixedZone(strings.ToUpper(name), infos[0].Offset()), true
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInMonth(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// isoWeekday maps time.Weekday (Sunday=0) to the 1-7 Monday-first numbering.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func weeksInWeekYear(weekYear int) int {
	// A week-year has 53 weeks when December 28 lands in week 53.
	dec28 := time.Date(weekYear, time.December, 28, 0, 0, 0, 0, time.UTC)
	_, week := dec28.ISOWeek()
	return week
}

// fixedOffsetZone builds a display location for an offset capture.
func fixedOffsetZone(minutes int) *time.Location {
	if minutes == 0 {
		return time.UTC
	}
	sign := "+"
	abs := minutes
	if minutes < 0 {
		sign = "-"
		abs = -minutes
	}
	name := fmt.Sprintf("UTC%s%02d:%02d", sign, abs/60, abs%60)
	return time.FixedZone(name, minutes*60)
}
