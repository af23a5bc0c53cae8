package dateformat

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var parseRef = time.Date(2020, time.March, 15, 10, 30, 45, 0, time.UTC)

func TestParseValid(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format string
		opts   []Option
		want   time.Time
	}{
		{
			name:   "long_month_name",
			input:  "May 25 1982",
			format: "LLLL dd yyyy",
			want:   time.Date(1982, time.May, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "french_month_name",
			input:  "mai 25 1982",
			format: "LLLL dd yyyy",
			opts:   []Option{WithLocale("fr")},
			want:   time.Date(1982, time.May, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "russian_genitive_in_sentence",
			input:  "25 мая 1982",
			format: "dd MMMM yyyy",
			opts:   []Option{WithLocale("ru")},
			want:   time.Date(1982, time.May, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "russian_nominative_standalone",
			input:  "май 1982",
			format: "LLLL yyyy",
			opts:   []Option{WithLocale("ru")},
			want:   time.Date(1982, time.May, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "numeric_with_time",
			input:  "1982-05-25 09:10:11.445",
			format: "yyyy-MM-dd HH:mm:ss.SSS",
			want:   time.Date(1982, time.May, 25, 9, 10, 11, 445*int(time.Millisecond), time.UTC),
		},
		{
			name:   "twelve_hour_clock",
			input:  "05/25/1982 9:10 PM",
			format: "MM/dd/yyyy h:mm a",
			want:   time.Date(1982, time.May, 25, 21, 10, 0, 0, time.UTC),
		},
		{
			name:   "twelve_am_is_midnight",
			input:  "12:30 AM",
			format: "h:mm a",
			want:   time.Date(2020, time.March, 15, 0, 30, 0, 0, time.UTC),
		},
		{
			name:   "two_digit_year_default_cutoff",
			input:  "25/05/82",
			format: "dd/MM/yy",
			want:   time.Date(1982, time.May, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "two_digit_year_custom_cutoff",
			input:  "25/05/82",
			format: "dd/MM/yy",
			opts:   []Option{WithTwoDigitYearCutoff(90)},
			want:   time.Date(2082, time.May, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "weekday_cross_check_passes",
			input:  "Tuesday, May 25, 1982",
			format: "EEEE, MMMM d, yyyy",
			want:   time.Date(1982, time.May, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "ordinal_day",
			input:  "1982-218",
			format: "yyyy-ooo",
			want:   time.Date(1982, time.August, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "iso_week_date",
			input:  "2016-W21-3",
			format: "kkkk-'W'WW-E",
			want:   time.Date(2016, time.May, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "localized_short_date",
			input:  "5/25/1982",
			format: "D",
			want:   time.Date(1982, time.May, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "quoted_literal",
			input:  "at 09 hours",
			format: "'at' HH 'hours'",
			want:   time.Date(2020, time.March, 15, 9, 0, 0, 0, time.UTC),
		},
		{
			name:   "partial_date_uses_reference_above_and_floor_below",
			input:  "May 1982",
			format: "MMMM yyyy",
			want:   time.Date(1982, time.May, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "era_bc",
			input:  "44 BC",
			format: "y G",
			want:   time.Date(-43, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "case_insensitive_names",
			input:  "MAY 25 1982",
			format: "LLLL dd yyyy",
			want:   time.Date(1982, time.May, 25, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]Option{WithReferenceTime(parseRef)}, tt.opts...)
			res, err := Parse(tt.input, tt.format, opts...)
			require.NoError(t, err)
			require.True(t, res.Valid(), "reason: %s", res.Reason)
			assert.True(t, res.Time.Equal(tt.want), "got %v, want %v", res.Time, tt.want)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format string
		opts   []Option
		reason InvalidReason
	}{
		{
			name:   "abbreviation_against_long_token",
			input:  "Aug 6 1982",
			format: "MMMM d yyyy",
			reason: ReasonNoMatch,
		},
		{
			name:   "trailing_garbage",
			input:  "May 25 1982 tralala",
			format: "LLLL dd yyyy",
			reason: ReasonNoMatch,
		},
		{
			name:   "day_out_of_range",
			input:  "August 32 1982",
			format: "MMMM d yyyy",
			reason: reasonOutOfRange("day"),
		},
		{
			name:   "leap_day_in_common_year",
			input:  "1983-02-29",
			format: "yyyy-MM-dd",
			reason: reasonOutOfRange("day"),
		},
		{
			name:   "hour_conflicts_with_meridiem",
			input:  "22 11 PM",
			format: "HH h a",
			reason: ReasonFieldConflict,
		},
		{
			name:   "duplicate_field_disagrees",
			input:  "1982 1983",
			format: "yyyy yyyy",
			reason: ReasonFieldConflict,
		},
		{
			name:   "weekday_cross_check_fails",
			input:  "Monday, May 25, 1982",
			format: "EEEE, MMMM d, yyyy",
			reason: ReasonFieldConflict,
		},
		{
			name:   "unknown_zone",
			input:  "1982-05-25 Nowhere/Imaginary",
			format: "yyyy-MM-dd z",
			reason: ReasonZoneNotMatched,
		},
		{
			name:   "french_name_under_english_locale",
			input:  "mai 25 1982",
			format: "LLLL dd yyyy",
			reason: ReasonNoMatch,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]Option{WithReferenceTime(parseRef)}, tt.opts...)
			res, err := Parse(tt.input, tt.format, opts...)
			require.NoError(t, err)
			assert.False(t, res.Valid())
			assert.Equal(t, tt.reason, res.Reason)
		})
	}
}

func TestParseZoneAndOffset(t *testing.T) {
	res, err := Parse("1982-05-25 14:00 Europe/Paris", "yyyy-MM-dd HH:mm z", WithReferenceTime(parseRef))
	require.NoError(t, err)
	require.True(t, res.Valid(), "reason: %s", res.Reason)
	assert.Equal(t, "Europe/Paris", res.Zone.String())
	assert.Equal(t, 14, res.Time.Hour())

	res, err = Parse("1982-05-25 14:00 +06:30", "yyyy-MM-dd HH:mm ZZ", WithReferenceTime(parseRef))
	require.NoError(t, err)
	require.True(t, res.Valid(), "reason: %s", res.Reason)
	_, secs := res.Time.Zone()
	assert.Equal(t, 390*60, secs)

	res, err = Parse("1982-05-25 14:00 -0800", "yyyy-MM-dd HH:mm ZZZ", WithReferenceTime(parseRef))
	require.NoError(t, err)
	require.True(t, res.Valid(), "reason: %s", res.Reason)
	_, secs = res.Time.Zone()
	assert.Equal(t, -8*3600, secs)
}

func TestParseTemplateErrors(t *testing.T) {
	for _, format := range []string{"EEEEE", "MMMMM", "x", "HH 'hours"} {
		_, err := Parse("anything", format)
		require.Error(t, err, "format %q", format)
		var terr *TemplateError
		assert.True(t, errors.As(err, &terr), "format %q: %v", format, err)
	}
}

func TestParseUnknownLocaleIsError(t *testing.T) {
	_, err := Parse("May 25 1982", "LLLL dd yyyy", WithLocale("xx"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownLocale), "err: %v", err)
}

func TestParserReusesCompiledTemplates(t *testing.T) {
	p := New(WithReferenceTime(parseRef))

	_, err := p.Parse("May 25 1982", "LLLL dd yyyy")
	require.NoError(t, err)

	p.mu.RLock()
	cached := len(p.cache)
	p.mu.RUnlock()
	require.Equal(t, 1, cached)

	// Same (locale, format) pair does not grow the cache; a new locale does.
	_, err = p.Parse("May 26 1982", "LLLL dd yyyy")
	require.NoError(t, err)
	_, err = p.Parse("mai 25 1982", "LLLL dd yyyy", WithLocale("fr"))
	require.NoError(t, err)

	p.mu.RLock()
	cached = len(p.cache)
	p.mu.RUnlock()
	assert.Equal(t, 2, cached)
}

func TestParserPerCallProviderBypassesCache(t *testing.T) {
	p := New(WithReferenceTime(parseRef))
	store := NewBundleStore(&CandidateBundle{
		Locale: "en",
		MonthsLong: []string{
			"Uno", "Dos", "Tres", "Cuatro", "Cinco", "Seis",
			"Siete", "Ocho", "Nueve", "Diez", "Once", "Doce",
		},
	})

	res, err := p.Parse("Cinco 25 1982", "MMMM dd yyyy", WithCandidateProvider(NewBundleProvider(store)))
	require.NoError(t, err)
	require.True(t, res.Valid(), "reason: %s", res.Reason)
	assert.Equal(t, time.May, res.Time.Month())

	p.mu.RLock()
	cached := len(p.cache)
	p.mu.RUnlock()
	assert.Equal(t, 0, cached)

	// The default provider still governs calls without the override.
	res, err = p.Parse("May 25 1982", "MMMM dd yyyy")
	require.NoError(t, err)
	assert.True(t, res.Valid(), "reason: %s", res.Reason)
}

func TestParseConcurrent(t *testing.T) {
	p := New(WithReferenceTime(parseRef))
	want := time.Date(1982, time.May, 25, 0, 0, 0, 0, time.UTC)

	done := make(chan error, 16)
	for i := 0; i < 16; i++ {
		go func() {
			res, err := p.Parse("May 25 1982", "LLLL dd yyyy")
			if err == nil && !res.Time.Equal(want) {
				err = errors.New("wrong instant")
			}
			done <- err
		}()
	}
	for i := 0; i < 16; i++ {
		require.NoError(t, <-done)
	}
}
