package dateformat

// ExplainRecord is a diagnostic snapshot of every pipeline stage, populated
// as far as the pipeline got regardless of success. Its shape is stable for
// tooling to depend on: Tokens, RawMatches and Fields are always non-nil, and
// compile failures land in Err instead of being raised.
type ExplainRecord struct {
	Input      string
	Locale     string
	Tokens     []Token
	Pattern    string
	RawMatches map[Field]string
	// Fields holds interpreted values: integers for numeric units, "AM"/"PM"
	// for the meridiem, the era and zone as strings.
	Fields map[Field]any
	// Zone is the raw captured zone name, before registry resolution.
	Zone   string
	Result Result
	Err    error
}

// Explain runs the full pipeline up to whatever stage succeeds and packages
// every intermediate artifact. It never returns an error and never panics on
// template problems; this path is strictly more permissive than Parse.
func (p *Parser) Explain(input, format string, opts ...Option) ExplainRecord {
	cfg := p.cfg.with(opts)
	rec := ExplainRecord{
		Input:      input,
		Locale:     cfg.locale,
		Tokens:     []Token{},
		RawMatches: map[Field]string{},
		Fields:     map[Field]any{},
	}

	if tokens, err := Tokenize(format); err == nil {
		rec.Tokens = tokens
	} else {
		rec.Err = err
		return rec
	}

	ct, err := p.compiled(&cfg, format)
	if err != nil {
		rec.Err = err
		return rec
	}
	rec.Tokens = ct.tokens
	rec.Pattern = ct.pattern

	captures, ok, err := ct.match(input)
	if err != nil {
		rec.Err = err
		return rec
	}
	if !ok {
		rec.Result = Result{Reason: ReasonNoMatch}
		return rec
	}
	rec.RawMatches = ct.rawMatches(captures)
	rec.Zone = rec.RawMatches[FieldZone]

	fv, reason := interpretCaptures(ct, captures, cfg.cutoff)
	rec.Fields = renderFields(fv)
	if reason != "" {
		rec.Result = Result{Reason: reason}
		return rec
	}

	rec.Result = reconcile(fv, &cfg)
	return rec
}

func renderFields(fv fieldValues) map[Field]any {
	out := make(map[Field]any, len(fv.ints)+1)
	for field, value := range fv.ints {
		switch field {
		case FieldMeridiem:
			if value == 1 {
				out[field] = "PM"
			} else {
				out[field] = "AM"
			}
		case FieldEra:
			if value == 1 {
				out[field] = "AD"
			} else {
				out[field] = "BC"
			}
		default:
			out[field] = value
		}
	}
	if fv.zone != "" {
		out[FieldZone] = fv.zone
	}
	return out
}
