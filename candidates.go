package dateformat

import (
	"fmt"
	"sort"
	"sync"
)

// Unit selects which localized name list a candidate lookup targets.
type Unit string

const (
	UnitMonth    Unit = "month"
	UnitWeekday  Unit = "weekday"
	UnitMeridiem Unit = "meridiem"
	UnitEra      Unit = "era"
)

// Width selects how long a localized form is: narrow single letters, short
// abbreviations, or long full names. Medium and full widths only occur in
// locale date patterns.
type Width string

const (
	WidthNarrow Width = "narrow"
	WidthShort  Width = "short"
	WidthMedium Width = "medium"
	WidthLong   Width = "long"
	WidthFull   Width = "full"
)

// CandidateProvider supplies ordered, locale-specific name lists for named
// units. Lists must be ordered by calendar position (January first, Monday
// first) since position encodes the semantic value, and must be deterministic
// for a given (unit, width, standalone, locale) tuple within a process run.
type CandidateProvider interface {
	Candidates(unit Unit, width Width, standalone bool, locale string) ([]string, error)
}

// DatePatternProvider is implemented by providers that can also supply the
// locale's date layout for each width, which backs the localized date macros
// D through DDDD.
type DatePatternProvider interface {
	DatePattern(width Width, locale string) (string, bool)
}

// CandidateBundle holds every localized name list for one locale. Standalone
// lists cover grammatical forms that differ from the in-sentence ones; an
// empty standalone list inherits the format list.
type CandidateBundle struct {
	Locale string `yaml:"-" json:"-"`

	MonthsLong            []string `yaml:"months_long" json:"months_long"`
	MonthsShort           []string `yaml:"months_short" json:"months_short"`
	MonthsLongStandalone  []string `yaml:"months_long_standalone" json:"months_long_standalone"`
	MonthsShortStandalone []string `yaml:"months_short_standalone" json:"months_short_standalone"`

	WeekdaysLong            []string `yaml:"weekdays_long" json:"weekdays_long"`
	WeekdaysShort           []string `yaml:"weekdays_short" json:"weekdays_short"`
	WeekdaysLongStandalone  []string `yaml:"weekdays_long_standalone" json:"weekdays_long_standalone"`
	WeekdaysShortStandalone []string `yaml:"weekdays_short_standalone" json:"weekdays_short_standalone"`

	Meridiems []string `yaml:"meridiems" json:"meridiems"`

	ErasShort  []string `yaml:"eras_short" json:"eras_short"`
	ErasLong   []string `yaml:"eras_long" json:"eras_long"`
	ErasNarrow []string `yaml:"eras_narrow" json:"eras_narrow"`

	DatePatterns map[Width]string `yaml:"date_patterns" json:"date_patterns"`
}

// Clone returns a deep copy so stored bundles stay immutable.
func (b *CandidateBundle) Clone() *CandidateBundle {
	if b == nil {
		return nil
	}
	out := &CandidateBundle{Locale: b.Locale}
	out.MonthsLong = cloneStrings(b.MonthsLong)
	out.MonthsShort = cloneStrings(b.MonthsShort)
	out.MonthsLongStandalone = cloneStrings(b.MonthsLongStandalone)
	out.MonthsShortStandalone = cloneStrings(b.MonthsShortStandalone)
	out.WeekdaysLong = cloneStrings(b.WeekdaysLong)
	out.WeekdaysShort = cloneStrings(b.WeekdaysShort)
	out.WeekdaysLongStandalone = cloneStrings(b.WeekdaysLongStandalone)
	out.WeekdaysShortStandalone = cloneStrings(b.WeekdaysShortStandalone)
	out.Meridiems = cloneStrings(b.Meridiems)
	out.ErasShort = cloneStrings(b.ErasShort)
	out.ErasLong = cloneStrings(b.ErasLong)
	out.ErasNarrow = cloneStrings(b.ErasNarrow)
	if len(b.DatePatterns) > 0 {
		out.DatePatterns = make(map[Width]string, len(b.DatePatterns))
		for k, v := range b.DatePatterns {
			out.DatePatterns[k] = v
		}
	}
	return out
}

func cloneStrings(src []string) []string {
	if len(src) == 0 {
		return nil
	}
	return append([]string(nil), src...)
}

// BundleStore is a read-only snapshot of candidate bundles keyed by locale.
type BundleStore struct {
	bundles map[string]*CandidateBundle
	locales []string
}

// NewBundleStore builds an immutable store from the given bundles. Later
// bundles override earlier ones with the same locale code.
func NewBundleStore(bundles ...*CandidateBundle) *BundleStore {
	store := &BundleStore{bundles: make(map[string]*CandidateBundle, len(bundles))}
	for _, bundle := range bundles {
		if bundle == nil || bundle.Locale == "" {
			continue
		}
		locale := normalizeLocale(bundle.Locale)
		clone := bundle.Clone()
		clone.Locale = locale
		store.bundles[locale] = clone
	}

	store.locales = make([]string, 0, len(store.bundles))
	for locale := range store.bundles {
		store.locales = append(store.locales, locale)
	}
	// make locales deterministic
	sort.Strings(store.locales)
	return store
}

// NewBundleStoreFromLoader hydrates a store with the embedded bundles plus
// whatever the loader supplies on top.
func NewBundleStoreFromLoader(loader BundleLoader) (*BundleStore, error) {
	bundles := embeddedBundleList()
	if loader != nil {
		loaded, err := loader.Load()
		if err != nil {
			return nil, err
		}
		bundles = append(bundles, loaded...)
	}
	return NewBundleStore(bundles...), nil
}

// Get returns the bundle for an exact locale code.
func (s *BundleStore) Get(locale string) (*CandidateBundle, bool) {
	if s == nil {
		return nil, false
	}
	bundle, ok := s.bundles[normalizeLocale(locale)]
	return bundle, ok
}

// Locales returns the sorted locale codes known to the store.
func (s *BundleStore) Locales() []string {
	if s == nil || len(s.locales) == 0 {
		return nil
	}
	out := make([]string, len(s.locales))
	copy(out, s.locales)
	return out
}

// BundleProvider resolves candidate lookups against a BundleStore, walking
// the locale parent chain ("fr-CA" falls back to "fr") before giving up.
type BundleProvider struct {
	store *BundleStore
}

var _ CandidateProvider = (*BundleProvider)(nil)
var _ DatePatternProvider = (*BundleProvider)(nil)

func NewBundleProvider(store *BundleStore) *BundleProvider {
	return &BundleProvider{store: store}
}

var (
	defaultProviderOnce sync.Once
	defaultProvider     *BundleProvider
)

// DefaultProvider returns the shared provider backed by the embedded locale
// bundles.
func DefaultProvider() *BundleProvider {
	defaultProviderOnce.Do(func() {
		defaultProvider = NewBundleProvider(NewBundleStore(embeddedBundleList()...))
	})
	return defaultProvider
}

func (p *BundleProvider) resolveBundle(locale string) (*CandidateBundle, bool) {
	if p == nil || p.store == nil {
		return nil, false
	}
	normalized := normalizeLocale(locale)
	if bundle, ok := p.store.Get(normalized); ok {
		return bundle, true
	}
	for _, parent := range localeParentChain(normalized) {
		if bundle, ok := p.store.Get(parent); ok {
			return bundle, true
		}
	}
	return nil, false
}

// Candidates implements CandidateProvider.
func (p *BundleProvider) Candidates(unit Unit, width Width, standalone bool, locale string) ([]string, error) {
	bundle, ok := p.resolveBundle(locale)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}

	var list []string
	switch unit {
	case UnitMonth:
		switch width {
		case WidthLong:
			list = pickStandalone(standalone, bundle.MonthsLongStandalone, bundle.MonthsLong)
		case WidthShort:
			list = pickStandalone(standalone, bundle.MonthsShortStandalone, bundle.MonthsShort)
		}
	case UnitWeekday:
		switch width {
		case WidthLong:
			list = pickStandalone(standalone, bundle.WeekdaysLongStandalone, bundle.WeekdaysLong)
		case WidthShort:
			list = pickStandalone(standalone, bundle.WeekdaysShortStandalone, bundle.WeekdaysShort)
		}
	case UnitMeridiem:
		list = bundle.Meridiems
	case UnitEra:
		switch width {
		case WidthShort:
			list = bundle.ErasShort
		case WidthLong:
			list = bundle.ErasLong
		case WidthNarrow:
			list = bundle.ErasNarrow
		}
	}

	if len(list) == 0 {
		return nil, fmt.Errorf("%w: %s/%s for locale %q", ErrNoCandidates, unit, width, locale)
	}
	return cloneStrings(list), nil
}

// DatePattern implements DatePatternProvider.
func (p *BundleProvider) DatePattern(width Width, locale string) (string, bool) {
	bundle, ok := p.resolveBundle(locale)
	if !ok {
		return "", false
	}
	pattern, ok := bundle.DatePatterns[width]
	return pattern, ok && pattern != ""
}

func pickStandalone(standalone bool, standaloneList, formatList []string) []string {
	if standalone && len(standaloneList) > 0 {
		return standaloneList
	}
	return formatList
}
