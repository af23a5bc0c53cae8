package dateformat

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// BundleLoader retrieves candidate bundles used to seed a BundleStore.
type BundleLoader interface {
	Load() ([]*CandidateBundle, error)
}

// BundleLoaderFunc adapts a bare function to the BundleLoader interface.
type BundleLoaderFunc func() ([]*CandidateBundle, error)

func (fn BundleLoaderFunc) Load() ([]*CandidateBundle, error) {
	return fn()
}

// BundleFileLoader reads candidate bundles from YAML or JSON files. Each file
// holds a map of locale code to bundle payload, so one file can carry several
// locales.
type BundleFileLoader struct {
	paths []string
}

func NewBundleFileLoader(paths ...string) *BundleFileLoader {
	return &BundleFileLoader{paths: append([]string(nil), paths...)}
}

func (l *BundleFileLoader) Load() ([]*CandidateBundle, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("dateformat: no loader paths configured")
	}

	var bundles []*CandidateBundle
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("dateformat: read %s: %w", path, err)
		}

		decoded, err := decodeBundleFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("dateformat: decode %s: %w", path, err)
		}
		bundles = append(bundles, decoded...)
	}
	return bundles, nil
}

func decodeBundleFile(path string, data []byte) ([]*CandidateBundle, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var raw map[string]*CandidateBundle
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	bundles := make([]*CandidateBundle, 0, len(raw))
	for locale, bundle := range raw {
		if locale == "" {
			return nil, errors.New("empty locale key")
		}
		if bundle == nil {
			continue
		}
		bundle.Locale = locale
		if err := validateBundle(bundle); err != nil {
			return nil, fmt.Errorf("%s: %w", locale, err)
		}
		bundles = append(bundles, bundle)
	}
	return bundles, nil
}

// validateBundle enforces calendar-positional list lengths: candidate order
// encodes the semantic value, so a short list would silently shift meanings.
func validateBundle(b *CandidateBundle) error {
	checks := []struct {
		name string
		list []string
		want int
	}{
		{"months_long", b.MonthsLong, 12},
		{"months_short", b.MonthsShort, 12},
		{"months_long_standalone", b.MonthsLongStandalone, 12},
		{"months_short_standalone", b.MonthsShortStandalone, 12},
		{"weekdays_long", b.WeekdaysLong, 7},
		{"weekdays_short", b.WeekdaysShort, 7},
		{"weekdays_long_standalone", b.WeekdaysLongStandalone, 7},
		{"weekdays_short_standalone", b.WeekdaysShortStandalone, 7},
		{"meridiems", b.Meridiems, 2},
		{"eras_short", b.ErasShort, 2},
		{"eras_long", b.ErasLong, 2},
		{"eras_narrow", b.ErasNarrow, 2},
	}
	for _, check := range checks {
		if len(check.list) != 0 && len(check.list) != check.want {
			return fmt.Errorf("%s: want %d entries, got %d", check.name, check.want, len(check.list))
		}
	}
	return nil
}
