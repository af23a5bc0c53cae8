// Package dateformat parses date/time strings against explicit format
// templates, with locale-aware month, weekday, era and meridiem names.
//
// A template like "LLLL dd yyyy" is tokenized, compiled into one composite
// anchored pattern using the locale's candidate name lists, matched against
// the whole input, and the captured fields are reconciled into a calendar
// valid instant. Matching is exact: there is no fuzzy or natural-language
// interpretation, and inputs that do not consume the template entirely are
// reported as invalid rather than partially parsed.
//
//	res, err := dateformat.Parse("mai 25 1982", "LLLL dd yyyy", dateformat.WithLocale("fr"))
//
// Template problems (unsupported tokens, unterminated quotes) are returned as
// errors; runtime parse failures are ordinary Result values carrying an
// InvalidReason. Explain runs the same pipeline but captures every
// intermediate artifact for inspection and never fails.
package dateformat

import (
	"sync"
	"time"
)

const defaultTwoDigitCutoff = 49

type config struct {
	locale    string
	reference time.Time
	provider  CandidateProvider
	engine    CalendarEngine
	cutoff    int
	// providerOverridden marks a per-call provider swap; such calls bypass
	// the compiled-template cache since the cache key only carries locale
	// and format.
	providerOverridden bool
}

func defaultCallConfig() config {
	return config{
		locale:   "en",
		provider: DefaultProvider(),
		engine:   DefaultEngine(),
		cutoff:   defaultTwoDigitCutoff,
	}
}

func (c config) with(opts []Option) config {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&c)
	}
	return c
}

// referenceTime returns the date-time that fills fields absent from the
// template. An unset reference means "now" at call time.
func (c *config) referenceTime() time.Time {
	if c.reference.IsZero() {
		return time.Now()
	}
	return c.reference
}

// Option configures a Parser or a single Parse/Explain call.
type Option func(*config)

// WithLocale selects the locale whose candidate name lists drive compilation
// and reverse lookup.
func WithLocale(locale string) Option {
	return func(c *config) {
		if locale != "" {
			c.locale = normalizeLocale(locale)
		}
	}
}

// WithReferenceTime sets the date-time that supplies any field the template
// cannot determine. Callers that need reproducible output should always set
// it; otherwise the current time is used.
func WithReferenceTime(t time.Time) Option {
	return func(c *config) {
		c.reference = t
	}
}

// WithCandidateProvider replaces the source of locale name lists.
func WithCandidateProvider(provider CandidateProvider) Option {
	return func(c *config) {
		if provider != nil {
			c.provider = provider
			c.providerOverridden = true
		}
	}
}

// WithCalendarEngine replaces the calendar validation and zone registry.
func WithCalendarEngine(engine CalendarEngine) Option {
	return func(c *config) {
		if engine != nil {
			c.engine = engine
		}
	}
}

// WithTwoDigitYearCutoff sets the century pivot for two-digit year tokens:
// captured values at or below the cutoff land in the 2000s.
func WithTwoDigitYearCutoff(cutoff int) Option {
	return func(c *config) {
		if cutoff >= 0 && cutoff <= 99 {
			c.cutoff = cutoff
		}
	}
}

// Result is the outcome of a parse: either a resolved instant with its zone,
// or an invalid marker with the reason. Template errors are not Results; they
// are returned as errors before matching starts.
type Result struct {
	Time   time.Time
	Zone   *time.Location
	Reason InvalidReason
}

// Valid reports whether the parse produced a calendar-valid instant.
func (r Result) Valid() bool {
	return r.Reason == ""
}

// Parser runs the template pipeline with a fixed configuration and caches
// compiled templates per (locale, format). It is safe for concurrent use;
// two goroutines racing to compile the same template may both compile, and
// the first stored result wins.
type Parser struct {
	cfg config

	mu    sync.RWMutex
	cache map[string]*compiledTemplate
}

// New builds a Parser. Options given here become the parser's baseline and
// can still be overridden per call.
func New(opts ...Option) *Parser {
	cfg := defaultCallConfig().with(opts)
	cfg.providerOverridden = false
	return &Parser{
		cfg:   cfg,
		cache: make(map[string]*compiledTemplate),
	}
}

// Parse matches input against the format template and returns the outcome.
// The returned error covers template compilation problems and provider
// faults only; every runtime parse failure is reported through the Result's
// Reason with a nil error.
func (p *Parser) Parse(input, format string, opts ...Option) (Result, error) {
	cfg := p.cfg.with(opts)

	ct, err := p.compiled(&cfg, format)
	if err != nil {
		return Result{}, err
	}

	captures, ok, err := ct.match(input)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Result{Reason: ReasonNoMatch}, nil
	}

	fv, reason := interpretCaptures(ct, captures, cfg.cutoff)
	if reason != "" {
		return Result{Reason: reason}, nil
	}
	return reconcile(fv, &cfg), nil
}

// compiled returns the cached template for (locale, format), compiling on
// miss. Compilation is idempotent, so racing compilations are not an error.
func (p *Parser) compiled(cfg *config, format string) (*compiledTemplate, error) {
	if cfg.providerOverridden {
		return compileTemplate(format, cfg.locale, cfg.provider)
	}

	key := cfg.locale + "\x1f" + format
	p.mu.RLock()
	ct, ok := p.cache[key]
	p.mu.RUnlock()
	if ok {
		return ct, nil
	}

	ct, err := compileTemplate(format, cfg.locale, cfg.provider)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	if existing, ok := p.cache[key]; ok {
		ct = existing
	} else {
		p.cache[key] = ct
	}
	p.mu.Unlock()
	return ct, nil
}

var (
	sharedOnce   sync.Once
	sharedParser *Parser
)

func defaultParser() *Parser {
	sharedOnce.Do(func() {
		sharedParser = New()
	})
	return sharedParser
}

// Parse is the package-level convenience around a shared Parser.
func Parse(input, format string, opts ...Option) (Result, error) {
	return defaultParser().Parse(input, format, opts...)
}

// Explain is the package-level convenience around a shared Parser.
func Explain(input, format string, opts ...Option) ExplainRecord {
	return defaultParser().Explain(input, format, opts...)
}
