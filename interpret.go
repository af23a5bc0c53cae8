package dateformat

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// fieldValues is the interpreted field record: integer values keyed by field,
// plus the zone name passed through for the calendar engine to resolve.
// Meridiem and era are stored as candidate indexes (0=AM/BC, 1=PM/AD).
type fieldValues struct {
	ints map[Field]int
	zone string
}

func newFieldValues() fieldValues {
	return fieldValues{ints: make(map[Field]int)}
}

func (fv fieldValues) has(f Field) bool {
	_, ok := fv.ints[f]
	return ok
}

func (fv fieldValues) get(f Field) int {
	return fv.ints[f]
}

// interpretCaptures converts raw captures into semantic values, group by
// group in token order. A reverse lookup miss or an unparsable number is a
// parse invalidity, not a fault; duplicate claims on one field with different
// values are a field conflict.
func interpretCaptures(ct *compiledTemplate, captures []string, cutoff int) (fieldValues, InvalidReason) {
	fv := newFieldValues()
	folder := cases.Fold()

	for i, group := range ct.groups {
		raw := captures[i]
		switch group.spec.kind {
		case kindNumeric:
			n, err := strconv.Atoi(raw)
			if err != nil {
				return fv, reasonNotMatched(group.Field)
			}
			if group.spec.truncated && len(raw) == 2 {
				n = untruncateYear(n, cutoff)
			}
			if reason := fv.setInt(group.Field, n); reason != "" {
				return fv, reason
			}
		case kindNamed:
			idx := -1
			folded := folder.String(raw)
			for j, candidate := range group.candidates {
				if folder.String(candidate) == folded {
					idx = j
					break
				}
			}
			if idx < 0 {
				return fv, reasonNotMatched(group.Field)
			}
			value := idx
			switch group.spec.unit {
			case UnitMonth, UnitWeekday:
				value = idx + 1
			}
			if reason := fv.setInt(group.Field, value); reason != "" {
				return fv, reason
			}
		case kindOffset:
			minutes, ok := parseOffset(raw, group.spec.form)
			if !ok {
				return fv, reasonNotMatched(group.Field)
			}
			if reason := fv.setInt(group.Field, minutes); reason != "" {
				return fv, reason
			}
		case kindZone:
			if fv.zone != "" && !strings.EqualFold(fv.zone, raw) {
				return fv, ReasonFieldConflict
			}
			fv.zone = raw
		}
	}
	return fv, ""
}

func (fv fieldValues) setInt(f Field, value int) InvalidReason {
	if existing, ok := fv.ints[f]; ok && existing != value {
		return ReasonFieldConflict
	}
	fv.ints[f] = value
	return ""
}

// untruncateYear widens a two-digit year using the century cutoff: values at
// or below the cutoff land in the 2000s, the rest in the 1900s.
func untruncateYear(year, cutoff int) int {
	if year > 99 {
		return year
	}
	if year > cutoff {
		return 1900 + year
	}
	return 2000 + year
}

// parseOffset converts a matched offset capture into total minutes east of
// UTC. The narrow form carries hours only; short and techie forms carry
// explicit hour and minute groups.
func parseOffset(raw string, form offsetForm) (int, bool) {
	if len(raw) < 2 {
		return 0, false
	}
	sign := 1
	if raw[0] == '-' {
		sign = -1
	}
	body := raw[1:]

	var hours, minutes int
	var err error
	switch form {
	case offsetNarrow:
		hours, err = strconv.Atoi(body)
		if err != nil {
			return 0, false
		}
	case offsetShort:
		parts := strings.SplitN(body, ":", 2)
		if len(parts) != 2 {
			return 0, false
		}
		if hours, err = strconv.Atoi(parts[0]); err != nil {
			return 0, false
		}
		if minutes, err = strconv.Atoi(parts[1]); err != nil {
			return 0, false
		}
	case offsetTechie:
		if len(body) != 4 {
			return 0, false
		}
		if hours, err = strconv.Atoi(body[:2]); err != nil {
			return 0, false
		}
		if minutes, err = strconv.Atoi(body[2:]); err != nil {
			return 0, false
		}
	}
	return sign * (hours*60 + minutes), true
}
