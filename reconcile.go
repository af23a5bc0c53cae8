package dateformat

import "time"

// hierarchy orders the civil units from largest to smallest. During default
// filling, units above the highest matched unit come from the reference
// date-time and units below it drop to their floor, so "May 1982" resolves to
// May 1, 1982 00:00:00 rather than inheriting the reference day and time.
var hierarchy = []struct {
	field Field
	floor int
}{
	{FieldYear, 1},
	{FieldMonth, 1},
	{FieldDay, 1},
	{FieldHour, 0},
	{FieldMinute, 0},
	{FieldSecond, 0},
	{FieldMillisecond, 0},
}

// reconcile merges the interpreted field record into one resolved field set,
// detects conflicts between redundant representations, fills gaps from the
// reference date-time and hands the result to the calendar engine. It never
// returns an error: every failure here is an ordinary invalid outcome.
func reconcile(fv fieldValues, cfg *config) Result {
	engine := cfg.engine
	ref := cfg.referenceTime()

	var loc *time.Location
	switch {
	case fv.zone != "":
		resolved, ok := engine.ResolveZone(fv.zone)
		if !ok {
			return Result{Reason: ReasonZoneNotMatched}
		}
		loc = resolved
	case fv.has(FieldOffset):
		loc = fixedOffsetZone(fv.get(FieldOffset))
	default:
		loc = ref.Location()
	}

	vals := make(map[Field]int, 8)
	set := make(map[Field]bool, 8)
	for _, unit := range hierarchy {
		if unit.field == FieldHour {
			continue
		}
		if fv.has(unit.field) {
			vals[unit.field] = fv.get(unit.field)
			set[unit.field] = true
		}
	}

	// Era converts to the astronomical year: 1 BC is year 0.
	if fv.has(FieldEra) && fv.get(FieldEra) == 0 && set[FieldYear] {
		vals[FieldYear] = 1 - vals[FieldYear]
	}

	// Merge the 12-hour clock with the meridiem, then cross-check against an
	// explicit 24-hour value.
	if fv.has(FieldHour) {
		vals[FieldHour] = fv.get(FieldHour)
		set[FieldHour] = true
	}
	if fv.has(FieldHour12) {
		h24 := fv.get(FieldHour12)
		if fv.has(FieldMeridiem) {
			pm := fv.get(FieldMeridiem) == 1
			switch {
			case h24 == 12 && pm:
				h24 = 12
			case h24 == 12 && !pm:
				h24 = 0
			case pm:
				h24 += 12
			}
		}
		if set[FieldHour] && vals[FieldHour] != h24 {
			return Result{Reason: ReasonFieldConflict}
		}
		vals[FieldHour] = h24
		set[FieldHour] = true
	}

	weekdayConsumed := false

	// A week-date representation fully determines year/month/day. When the
	// calendar representation is present too, both must agree.
	if fv.has(FieldWeekYear) || fv.has(FieldWeekNumber) {
		weekYear := ref.Year()
		if fv.has(FieldWeekYear) {
			weekYear = fv.get(FieldWeekYear)
		} else if set[FieldYear] {
			weekYear = vals[FieldYear]
		}
		week := 1
		if fv.has(FieldWeekNumber) {
			week = fv.get(FieldWeekNumber)
		}
		weekday := 1
		if fv.has(FieldWeekday) {
			weekday = fv.get(FieldWeekday)
			weekdayConsumed = true
		}

		y, m, d, reason := engine.WeekToDate(weekYear, week, weekday)
		if reason != "" {
			return Result{Reason: reason}
		}
		if (set[FieldYear] && vals[FieldYear] != y) ||
			(set[FieldMonth] && vals[FieldMonth] != m) ||
			(set[FieldDay] && vals[FieldDay] != d) {
			return Result{Reason: ReasonFieldConflict}
		}
		vals[FieldYear], vals[FieldMonth], vals[FieldDay] = y, m, d
		set[FieldYear], set[FieldMonth], set[FieldDay] = true, true, true
	}

	// An ordinal day determines month/day within its year.
	if fv.has(FieldOrdinal) {
		year := ref.Year()
		if set[FieldYear] {
			year = vals[FieldYear]
		}
		m, d, reason := engine.OrdinalToDate(year, fv.get(FieldOrdinal))
		if reason != "" {
			return Result{Reason: reason}
		}
		if (set[FieldMonth] && vals[FieldMonth] != m) ||
			(set[FieldDay] && vals[FieldDay] != d) {
			return Result{Reason: ReasonFieldConflict}
		}
		vals[FieldYear], vals[FieldMonth], vals[FieldDay] = year, m, d
		set[FieldYear], set[FieldMonth], set[FieldDay] = true, true, true
	}

	refVals := map[Field]int{
		FieldYear:        ref.Year(),
		FieldMonth:       int(ref.Month()),
		FieldDay:         ref.Day(),
		FieldHour:        ref.Hour(),
		FieldMinute:      ref.Minute(),
		FieldSecond:      ref.Second(),
		FieldMillisecond: ref.Nanosecond() / int(time.Millisecond),
	}
	higherSet := false
	for _, unit := range hierarchy {
		if set[unit.field] {
			higherSet = true
			continue
		}
		if higherSet {
			vals[unit.field] = unit.floor
		} else {
			vals[unit.field] = refVals[unit.field]
		}
	}

	// An explicit weekday that was not consumed by the week-date conversion
	// must agree with the weekday of the resolved date.
	if fv.has(FieldWeekday) && !weekdayConsumed {
		if engine.Weekday(vals[FieldYear], vals[FieldMonth], vals[FieldDay]) != fv.get(FieldWeekday) {
			return Result{Reason: ReasonFieldConflict}
		}
	}

	t, reason := engine.Construct(CivilFields{
		Year:        vals[FieldYear],
		Month:       vals[FieldMonth],
		Day:         vals[FieldDay],
		Hour:        vals[FieldHour],
		Minute:      vals[FieldMinute],
		Second:      vals[FieldSecond],
		Millisecond: vals[FieldMillisecond],
	}, loc)
	if reason != "" {
		return Result{Reason: reason}
	}
	return Result{Time: t, Zone: loc}
}
