package dateformat

import (
	"testing"
	"time"
)

func testConfig(ref time.Time) config {
	cfg := defaultCallConfig()
	cfg.reference = ref
	return cfg
}

func fields(pairs map[Field]int) fieldValues {
	fv := newFieldValues()
	for f, v := range pairs {
		fv.ints[f] = v
	}
	return fv
}

func TestReconcileDefaultsHierarchy(t *testing.T) {
	ref := time.Date(2020, time.March, 15, 10, 30, 45, 0, time.UTC)

	tests := []struct {
		name string
		fv   fieldValues
		want time.Time
	}{
		{
			name: "month_and_year_floor_the_rest",
			fv:   fields(map[Field]int{FieldYear: 1982, FieldMonth: 5}),
			want: time.Date(1982, time.May, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "hour_inherits_date_from_reference",
			fv:   fields(map[Field]int{FieldHour: 14}),
			want: time.Date(2020, time.March, 15, 14, 0, 0, 0, time.UTC),
		},
		{
			name: "day_inherits_year_and_month",
			fv:   fields(map[Field]int{FieldDay: 9}),
			want: time.Date(2020, time.March, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "nothing_set_returns_reference",
			fv:   newFieldValues(),
			want: ref,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(ref)
			res := reconcile(tt.fv, &cfg)
			if !res.Valid() {
				t.Fatalf("reconcile: reason %q", res.Reason)
			}
			if !res.Time.Equal(tt.want) {
				t.Errorf("time = %v; want %v", res.Time, tt.want)
			}
		})
	}
}

func TestReconcileHour12(t *testing.T) {
	ref := time.Date(2020, time.March, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		fv     fieldValues
		hour   int
		reason InvalidReason
	}{
		{"noon", fields(map[Field]int{FieldHour12: 12, FieldMeridiem: 1}), 12, ""},
		{"midnight", fields(map[Field]int{FieldHour12: 12, FieldMeridiem: 0}), 0, ""},
		{"afternoon", fields(map[Field]int{FieldHour12: 7, FieldMeridiem: 1}), 19, ""},
		{"morning", fields(map[Field]int{FieldHour12: 7, FieldMeridiem: 0}), 7, ""},
		{
			"agrees_with_explicit_hour",
			fields(map[Field]int{FieldHour12: 11, FieldMeridiem: 1, FieldHour: 23}),
			23, "",
		},
		{
			"conflicts_with_explicit_hour",
			fields(map[Field]int{FieldHour12: 11, FieldMeridiem: 1, FieldHour: 22}),
			0, ReasonFieldConflict,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(ref)
			res := reconcile(tt.fv, &cfg)
			if res.Reason != tt.reason {
				t.Fatalf("reason = %q; want %q", res.Reason, tt.reason)
			}
			if tt.reason == "" && res.Time.Hour() != tt.hour {
				t.Errorf("hour = %d; want %d", res.Time.Hour(), tt.hour)
			}
		})
	}
}

func TestReconcileEra(t *testing.T) {
	cfg := testConfig(time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC))

	fv := fields(map[Field]int{FieldEra: 0, FieldYear: 44, FieldMonth: 3, FieldDay: 15})
	res := reconcile(fv, &cfg)
	if !res.Valid() {
		t.Fatalf("reconcile: reason %q", res.Reason)
	}
	// 44 BC is astronomical year -43.
	if res.Time.Year() != -43 {
		t.Errorf("year = %d; want -43", res.Time.Year())
	}

	fv = fields(map[Field]int{FieldEra: 1, FieldYear: 44})
	res = reconcile(fv, &cfg)
	if !res.Valid() || res.Time.Year() != 44 {
		t.Errorf("AD year = %d (reason %q); want 44", res.Time.Year(), res.Reason)
	}
}

func TestReconcileWeekDate(t *testing.T) {
	ref := time.Date(2020, time.March, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		fv     fieldValues
		want   time.Time
		reason InvalidReason
	}{
		{
			name: "midyear_week",
			fv:   fields(map[Field]int{FieldWeekYear: 2016, FieldWeekNumber: 21, FieldWeekday: 3}),
			want: time.Date(2016, time.May, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "week_53_spills_into_next_year",
			fv:   fields(map[Field]int{FieldWeekYear: 2015, FieldWeekNumber: 53, FieldWeekday: 5}),
			want: time.Date(2016, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "weekday_defaults_to_monday",
			fv:   fields(map[Field]int{FieldWeekYear: 2016, FieldWeekNumber: 21}),
			want: time.Date(2016, time.May, 23, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "week_beyond_year_length",
			fv:     fields(map[Field]int{FieldWeekYear: 2016, FieldWeekNumber: 53}),
			reason: reasonOutOfRange("week"),
		},
		{
			name:   "disagrees_with_calendar_date",
			fv:     fields(map[Field]int{FieldWeekYear: 2016, FieldWeekNumber: 21, FieldWeekday: 3, FieldDay: 26}),
			reason: ReasonFieldConflict,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(ref)
			res := reconcile(tt.fv, &cfg)
			if res.Reason != tt.reason {
				t.Fatalf("reason = %q; want %q", res.Reason, tt.reason)
			}
			if tt.reason == "" && !res.Time.Equal(tt.want) {
				t.Errorf("time = %v; want %v", res.Time, tt.want)
			}
		})
	}
}

func TestReconcileOrdinal(t *testing.T) {
	cfg := testConfig(time.Date(2020, time.March, 15, 0, 0, 0, 0, time.UTC))

	fv := fields(map[Field]int{FieldYear: 1982, FieldOrdinal: 218})
	res := reconcile(fv, &cfg)
	if !res.Valid() {
		t.Fatalf("reconcile: reason %q", res.Reason)
	}
	want := time.Date(1982, time.August, 6, 0, 0, 0, 0, time.UTC)
	if !res.Time.Equal(want) {
		t.Errorf("time = %v; want %v", res.Time, want)
	}

	fv = fields(map[Field]int{FieldYear: 1982, FieldOrdinal: 366})
	res = reconcile(fv, &cfg)
	if res.Reason != reasonOutOfRange("ordinal") {
		t.Errorf("reason = %q; want %q", res.Reason, reasonOutOfRange("ordinal"))
	}
}

func TestReconcileWeekdayCrossCheck(t *testing.T) {
	cfg := testConfig(time.Date(2020, time.March, 15, 0, 0, 0, 0, time.UTC))

	// 1982-05-25 was a Tuesday.
	fv := fields(map[Field]int{FieldYear: 1982, FieldMonth: 5, FieldDay: 25, FieldWeekday: 2})
	if res := reconcile(fv, &cfg); !res.Valid() {
		t.Errorf("matching weekday: reason %q", res.Reason)
	}

	fv = fields(map[Field]int{FieldYear: 1982, FieldMonth: 5, FieldDay: 25, FieldWeekday: 1})
	if res := reconcile(fv, &cfg); res.Reason != ReasonFieldConflict {
		t.Errorf("mismatched weekday: reason = %q; want %q", res.Reason, ReasonFieldConflict)
	}
}

func TestReconcileZones(t *testing.T) {
	cfg := testConfig(time.Date(2020, time.March, 15, 0, 0, 0, 0, time.UTC))

	fv := fields(map[Field]int{FieldYear: 1982, FieldMonth: 5, FieldDay: 25})
	fv.zone = "Europe/Paris"
	res := reconcile(fv, &cfg)
	if !res.Valid() {
		t.Fatalf("reconcile: reason %q", res.Reason)
	}
	if res.Zone.String() != "Europe/Paris" {
		t.Errorf("zone = %q; want Europe/Paris", res.Zone.String())
	}

	fv = fields(map[Field]int{FieldYear: 1982})
	fv.zone = "Nowhere/Imaginary"
	if res := reconcile(fv, &cfg); res.Reason != ReasonZoneNotMatched {
		t.Errorf("reason = %q; want %q", res.Reason, ReasonZoneNotMatched)
	}

	fv = fields(map[Field]int{FieldYear: 1982, FieldMonth: 5, FieldDay: 25, FieldOffset: 390})
	res = reconcile(fv, &cfg)
	if !res.Valid() {
		t.Fatalf("offset reconcile: reason %q", res.Reason)
	}
	if _, secs := res.Time.Zone(); secs != 390*60 {
		t.Errorf("offset = %ds; want %d", secs, 390*60)
	}
}

func TestReconcileOutOfRange(t *testing.T) {
	cfg := testConfig(time.Date(2020, time.March, 15, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name   string
		fv     fieldValues
		reason InvalidReason
	}{
		{"day_32", fields(map[Field]int{FieldYear: 1982, FieldMonth: 8, FieldDay: 32}), reasonOutOfRange("day")},
		{"feb_29_common_year", fields(map[Field]int{FieldYear: 1983, FieldMonth: 2, FieldDay: 29}), reasonOutOfRange("day")},
		{"feb_29_leap_year", fields(map[Field]int{FieldYear: 1984, FieldMonth: 2, FieldDay: 29}), ""},
		{"month_13", fields(map[Field]int{FieldYear: 1982, FieldMonth: 13}), reasonOutOfRange("month")},
		{"hour_24", fields(map[Field]int{FieldHour: 24}), reasonOutOfRange("hour")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := reconcile(tt.fv, &cfg)
			if res.Reason != tt.reason {
				t.Errorf("reason = %q; want %q", res.Reason, tt.reason)
			}
		})
	}
}
