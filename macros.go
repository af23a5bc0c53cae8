package dateformat

// Field names one semantic date/time unit captured from the input.
type Field string

const (
	FieldYear        Field = "year"
	FieldMonth       Field = "month"
	FieldDay         Field = "day"
	FieldWeekday     Field = "weekday"
	FieldOrdinal     Field = "ordinal"
	FieldWeekYear    Field = "weekYear"
	FieldWeekNumber  Field = "weekNumber"
	FieldHour        Field = "hour"
	FieldHour12      Field = "hour12"
	FieldMinute      Field = "minute"
	FieldSecond      Field = "second"
	FieldMillisecond Field = "millisecond"
	FieldMeridiem    Field = "meridiem"
	FieldEra         Field = "era"
	FieldOffset      Field = "offsetMinutes"
	FieldZone        Field = "zoneName"
)

type tokenKind int

const (
	kindNumeric tokenKind = iota
	kindNamed
	kindOffset
	kindZone
	// kindComposite marks localized date macros (D..DDDD) that expand into a
	// locale-specific token sequence before compilation.
	kindComposite
)

type offsetForm int

const (
	offsetNarrow offsetForm = iota // sign plus 1-2 digit hour
	offsetShort                    // sign plus HH:MM
	offsetTechie                   // sign plus HHMM
)

// macroSpec is the static description of one macro code. The table below is
// the single place a token's unit, width and match behavior is declared;
// adding a token means adding a row here.
type macroSpec struct {
	field      Field
	kind       tokenKind
	unit       Unit
	width      Width
	standalone bool
	minDigits  int
	maxDigits  int
	// truncated marks two-digit year forms that are widened through the
	// configured century cutoff after capture.
	truncated bool
	form      offsetForm
}

var macroTable = map[string]macroSpec{
	"S":   {field: FieldMillisecond, kind: kindNumeric, minDigits: 1, maxDigits: 3},
	"SSS": {field: FieldMillisecond, kind: kindNumeric, minDigits: 3, maxDigits: 3},
	"s":   {field: FieldSecond, kind: kindNumeric, minDigits: 1, maxDigits: 2},
	"ss":  {field: FieldSecond, kind: kindNumeric, minDigits: 2, maxDigits: 2},
	"m":   {field: FieldMinute, kind: kindNumeric, minDigits: 1, maxDigits: 2},
	"mm":  {field: FieldMinute, kind: kindNumeric, minDigits: 2, maxDigits: 2},
	"h":   {field: FieldHour12, kind: kindNumeric, minDigits: 1, maxDigits: 2},
	"hh":  {field: FieldHour12, kind: kindNumeric, minDigits: 2, maxDigits: 2},
	"H":   {field: FieldHour, kind: kindNumeric, minDigits: 1, maxDigits: 2},
	"HH":  {field: FieldHour, kind: kindNumeric, minDigits: 2, maxDigits: 2},

	"Z":   {field: FieldOffset, kind: kindOffset, form: offsetNarrow},
	"ZZ":  {field: FieldOffset, kind: kindOffset, form: offsetShort},
	"ZZZ": {field: FieldOffset, kind: kindOffset, form: offsetTechie},
	"z":   {field: FieldZone, kind: kindZone},

	"a": {field: FieldMeridiem, kind: kindNamed, unit: UnitMeridiem, width: WidthShort},

	"d":  {field: FieldDay, kind: kindNumeric, minDigits: 1, maxDigits: 2},
	"dd": {field: FieldDay, kind: kindNumeric, minDigits: 2, maxDigits: 2},

	"E":    {field: FieldWeekday, kind: kindNumeric, minDigits: 1, maxDigits: 1},
	"c":    {field: FieldWeekday, kind: kindNumeric, minDigits: 1, maxDigits: 1, standalone: true},
	"EEE":  {field: FieldWeekday, kind: kindNamed, unit: UnitWeekday, width: WidthShort},
	"ccc":  {field: FieldWeekday, kind: kindNamed, unit: UnitWeekday, width: WidthShort, standalone: true},
	"EEEE": {field: FieldWeekday, kind: kindNamed, unit: UnitWeekday, width: WidthLong},
	"cccc": {field: FieldWeekday, kind: kindNamed, unit: UnitWeekday, width: WidthLong, standalone: true},

	"M":    {field: FieldMonth, kind: kindNumeric, minDigits: 1, maxDigits: 2},
	"L":    {field: FieldMonth, kind: kindNumeric, minDigits: 1, maxDigits: 2, standalone: true},
	"MM":   {field: FieldMonth, kind: kindNumeric, minDigits: 2, maxDigits: 2},
	"LL":   {field: FieldMonth, kind: kindNumeric, minDigits: 2, maxDigits: 2, standalone: true},
	"MMM":  {field: FieldMonth, kind: kindNamed, unit: UnitMonth, width: WidthShort},
	"LLL":  {field: FieldMonth, kind: kindNamed, unit: UnitMonth, width: WidthShort, standalone: true},
	"MMMM": {field: FieldMonth, kind: kindNamed, unit: UnitMonth, width: WidthLong},
	"LLLL": {field: FieldMonth, kind: kindNamed, unit: UnitMonth, width: WidthLong, standalone: true},

	"y":    {field: FieldYear, kind: kindNumeric, minDigits: 1, maxDigits: 6},
	"yy":   {field: FieldYear, kind: kindNumeric, minDigits: 2, maxDigits: 4, truncated: true},
	"yyyy": {field: FieldYear, kind: kindNumeric, minDigits: 4, maxDigits: 6},

	"G":     {field: FieldEra, kind: kindNamed, unit: UnitEra, width: WidthShort},
	"GG":    {field: FieldEra, kind: kindNamed, unit: UnitEra, width: WidthLong},
	"GGGGG": {field: FieldEra, kind: kindNamed, unit: UnitEra, width: WidthNarrow},

	"kk":   {field: FieldWeekYear, kind: kindNumeric, minDigits: 2, maxDigits: 4, truncated: true},
	"kkkk": {field: FieldWeekYear, kind: kindNumeric, minDigits: 4, maxDigits: 6},

	"W":  {field: FieldWeekNumber, kind: kindNumeric, minDigits: 1, maxDigits: 2},
	"WW": {field: FieldWeekNumber, kind: kindNumeric, minDigits: 2, maxDigits: 2},

	"o":   {field: FieldOrdinal, kind: kindNumeric, minDigits: 1, maxDigits: 3},
	"ooo": {field: FieldOrdinal, kind: kindNumeric, minDigits: 3, maxDigits: 3},

	"D":    {kind: kindComposite, width: WidthShort},
	"DD":   {kind: kindComposite, width: WidthMedium},
	"DDD":  {kind: kindComposite, width: WidthLong},
	"DDDD": {kind: kindComposite, width: WidthFull},
}

// expandComposites replaces localized date macros with the token sequence of
// the locale's date pattern for that width. Patterns come from providers that
// also implement DatePatternProvider; a provider without patterns for the
// locale makes the macro an unsupported token.
func expandComposites(tokens []Token, locale string, provider CandidateProvider) ([]Token, error) {
	patterns, _ := provider.(DatePatternProvider)

	var out []Token
	for _, tok := range tokens {
		if tok.Literal {
			out = append(out, tok)
			continue
		}
		spec, ok := macroTable[tok.Value]
		if !ok || spec.kind != kindComposite {
			out = append(out, tok)
			continue
		}
		if patterns == nil {
			return nil, &TemplateError{Token: tok.Value, Reason: "unsupported token"}
		}
		pattern, ok := patterns.DatePattern(spec.width, locale)
		if !ok {
			return nil, &TemplateError{Token: tok.Value, Reason: "unsupported token"}
		}
		sub, err := Tokenize(pattern)
		if err != nil {
			return nil, err
		}
		for _, s := range sub {
			if !s.Literal {
				if nested, known := macroTable[s.Value]; known && nested.kind == kindComposite {
					return nil, &TemplateError{Token: tok.Value, Reason: "recursive date pattern for token"}
				}
			}
			out = append(out, s)
		}
	}
	return out, nil
}
