// Command dateformat-candidates regenerates the embedded candidate bundles
// from a CLDR core data dump. Lists are emitted in calendar order (January
// first, Monday first) because list position encodes the semantic value.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"

	cldr "golang.org/x/text/unicode/cldr"
)

type generatorConfig struct {
	pkg      string
	out      string
	cldrPath string
	locales  []string
}

type bundlePayload struct {
	Locale                string
	MonthsLong            []string
	MonthsShort           []string
	MonthsLongStandalone  []string
	MonthsShortStandalone []string
	WeekdaysLong          []string
	WeekdaysShort         []string
	Meridiems             []string
	ErasShort             []string
	ErasLong              []string
	ErasNarrow            []string
	DatePatterns          map[string]string
}

// dayOrder maps CLDR day keys to Monday-first positions.
var dayOrder = map[string]int{
	"mon": 0, "tue": 1, "wed": 2, "thu": 3, "fri": 4, "sat": 5, "sun": 6,
}

var patternWidths = []string{"short", "medium", "long", "full"}

type localeFlag struct {
	items []string
}

func (f *localeFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *localeFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			f.items = append(f.items, part)
		}
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}
	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "dateformat-candidates: %v\n", err)
	os.Exit(1)
}

func parseFlags() (generatorConfig, error) {
	var cfg generatorConfig
	var localeList localeFlag

	flag.StringVar(&cfg.pkg, "pkg", "dateformat", "package name for generated file")
	flag.StringVar(&cfg.out, "out", "candidates_data.go", "path to generated Go file")
	flag.StringVar(&cfg.cldrPath, "cldr", "", "path to CLDR core data directory (expects subdirectories like main/)")
	flag.Var(&localeList, "locale", "locale to generate. Repeat flag or comma-separate to add more.")

	flag.Parse()

	if len(localeList.items) == 0 {
		return generatorConfig{}, errors.New("at least one -locale value is required")
	}
	for _, locale := range localeList.items {
		cfg.locales = append(cfg.locales, strings.ReplaceAll(locale, "_", "-"))
	}

	if cfg.cldrPath == "" {
		cfg.cldrPath = os.Getenv("CLDR_CORE_DIR")
	}
	if cfg.cldrPath == "" {
		return generatorConfig{}, errors.New("missing CLDR data directory (set -cldr or CLDR_CORE_DIR)")
	}
	return cfg, nil
}

func run(cfg generatorConfig) error {
	data, err := loadCLDR(cfg.cldrPath)
	if err != nil {
		return err
	}

	var bundles []bundlePayload
	for _, locale := range cfg.locales {
		payload, err := buildBundle(data, locale)
		if err != nil {
			return fmt.Errorf("build bundle for %s: %w", locale, err)
		}
		bundles = append(bundles, payload)
	}

	sort.Slice(bundles, func(i, j int) bool {
		return bundles[i].Locale < bundles[j].Locale
	})

	source, err := renderSource(cfg.pkg, bundles)
	if err != nil {
		return err
	}
	if err := ensureDir(cfg.out); err != nil {
		return err
	}
	return os.WriteFile(cfg.out, source, 0o644)
}

func loadCLDR(path string) (*cldr.CLDR, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat CLDR directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("CLDR path %q is not a directory", path)
	}

	var decoder cldr.Decoder
	decoder.SetSectionFilter("main")

	data, err := decoder.DecodePath(path)
	if err != nil {
		return nil, fmt.Errorf("decode CLDR data: %w", err)
	}
	return data, nil
}

func buildBundle(data *cldr.CLDR, locale string) (bundlePayload, error) {
	payload := bundlePayload{Locale: locale, DatePatterns: make(map[string]string)}

	ldml := findLDML(data, locale)
	if ldml == nil {
		return payload, fmt.Errorf("missing LDML data")
	}
	cal := gregorianCalendar(ldml)
	if cal == nil {
		return payload, fmt.Errorf("missing gregorian calendar data")
	}

	payload.MonthsLong = extractMonths(cal, "format", "wide")
	payload.MonthsShort = extractMonths(cal, "format", "abbreviated")
	if standalone := extractMonths(cal, "stand-alone", "wide"); !sameList(standalone, payload.MonthsLong) {
		payload.MonthsLongStandalone = standalone
	}
	if standalone := extractMonths(cal, "stand-alone", "abbreviated"); !sameList(standalone, payload.MonthsShort) {
		payload.MonthsShortStandalone = standalone
	}
	payload.WeekdaysLong = extractDays(cal, "format", "wide")
	payload.WeekdaysShort = extractDays(cal, "format", "abbreviated")
	payload.Meridiems = extractMeridiems(cal)
	payload.ErasShort, payload.ErasLong, payload.ErasNarrow = extractEras(cal)
	for _, width := range patternWidths {
		if pattern := extractDatePattern(cal, width); pattern != "" {
			payload.DatePatterns[width] = pattern
		}
	}
	return payload, nil
}

func findLDML(data *cldr.CLDR, locale string) *cldr.LDML {
	if data == nil {
		return nil
	}
	candidate := strings.ReplaceAll(locale, "-", "_")
	for candidate != "" {
		if ldml := data.RawLDML(candidate); ldml != nil {
			return ldml
		}
		idx := strings.LastIndex(candidate, "_")
		if idx < 0 {
			break
		}
		candidate = candidate[:idx]
	}
	return data.RawLDML("root")
}

func gregorianCalendar(ldml *cldr.LDML) *cldr.Calendar {
	if ldml == nil || ldml.Dates == nil || ldml.Dates.Calendars == nil {
		return nil
	}
	for _, cal := range ldml.Dates.Calendars.Calendar {
		if cal != nil && cal.Type == "gregorian" {
			return cal
		}
	}
	return nil
}

func extractMonths(cal *cldr.Calendar, context, width string) []string {
	if cal.Months == nil {
		return nil
	}
	out := make([]string, 12)
	found := false
	for _, ctx := range cal.Months.MonthContext {
		if ctx == nil || ctx.Type != context {
			continue
		}
		for _, w := range ctx.MonthWidth {
			if w == nil || w.Type != width {
				continue
			}
			for _, month := range w.Month {
				if month == nil {
					continue
				}
				var idx int
				if _, err := fmt.Sscanf(month.Type, "%d", &idx); err != nil || idx < 1 || idx > 12 {
					continue
				}
				out[idx-1] = month.Data()
				found = true
			}
		}
	}
	if !found {
		return nil
	}
	return out
}

func extractDays(cal *cldr.Calendar, context, width string) []string {
	if cal.Days == nil {
		return nil
	}
	out := make([]string, 7)
	found := false
	for _, ctx := range cal.Days.DayContext {
		if ctx == nil || ctx.Type != context {
			continue
		}
		for _, w := range ctx.DayWidth {
			if w == nil || w.Type != width {
				continue
			}
			for _, day := range w.Day {
				if day == nil {
					continue
				}
				idx, ok := dayOrder[day.Type]
				if !ok {
					continue
				}
				out[idx] = day.Data()
				found = true
			}
		}
	}
	if !found {
		return nil
	}
	return out
}

func extractMeridiems(cal *cldr.Calendar) []string {
	if cal.DayPeriods == nil {
		return nil
	}
	var am, pm string
	for _, ctx := range cal.DayPeriods.DayPeriodContext {
		if ctx == nil || ctx.Type != "format" {
			continue
		}
		for _, w := range ctx.DayPeriodWidth {
			if w == nil || w.Type != "abbreviated" {
				continue
			}
			for _, period := range w.DayPeriod {
				if period == nil {
					continue
				}
				switch period.Type {
				case "am":
					am = period.Data()
				case "pm":
					pm = period.Data()
				}
			}
		}
	}
	if am == "" || pm == "" {
		return nil
	}
	return []string{am, pm}
}

func extractEras(cal *cldr.Calendar) (short, long, narrow []string) {
	if cal.Eras == nil {
		return nil, nil, nil
	}
	if cal.Eras.EraAbbr != nil {
		short = pickEras(cal.Eras.EraAbbr.Era)
	}
	if cal.Eras.EraNames != nil {
		long = pickEras(cal.Eras.EraNames.Era)
	}
	if cal.Eras.EraNarrow != nil {
		narrow = pickEras(cal.Eras.EraNarrow.Era)
	}
	return short, long, narrow
}

// pickEras works over any era element type, which varies across CLDR schema
// revisions; the shared Common carries the type attribute and text.
func pickEras[T interface{ GetCommon() *cldr.Common }](eras []T) []string {
	var bc, ad string
	for _, era := range eras {
		common := era.GetCommon()
		if common == nil {
			continue
		}
		switch common.Type {
		case "0":
			bc = common.Data()
		case "1":
			ad = common.Data()
		}
	}
	if bc == "" || ad == "" {
		return nil
	}
	return []string{bc, ad}
}

func extractDatePattern(cal *cldr.Calendar, width string) string {
	if cal.DateFormats == nil {
		return ""
	}
	for _, length := range cal.DateFormats.DateFormatLength {
		if length == nil || length.Type != width {
			continue
		}
		for _, df := range length.DateFormat {
			if df == nil {
				continue
			}
			for _, pattern := range df.Pattern {
				if pattern != nil && pattern.Data() != "" {
					return pattern.Data()
				}
			}
		}
	}
	return ""
}

func sameList(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func renderSource(pkg string, bundles []bundlePayload) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by dateformat-candidates. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	buf.WriteString("var embeddedBundles = map[string]CandidateBundle{\n")
	for _, bundle := range bundles {
		fmt.Fprintf(&buf, "\t%q: {\n", bundle.Locale)
		fmt.Fprintf(&buf, "\t\tLocale: %q,\n", bundle.Locale)
		writeList(&buf, "MonthsLong", bundle.MonthsLong)
		writeList(&buf, "MonthsShort", bundle.MonthsShort)
		writeList(&buf, "MonthsLongStandalone", bundle.MonthsLongStandalone)
		writeList(&buf, "MonthsShortStandalone", bundle.MonthsShortStandalone)
		writeList(&buf, "WeekdaysLong", bundle.WeekdaysLong)
		writeList(&buf, "WeekdaysShort", bundle.WeekdaysShort)
		writeList(&buf, "Meridiems", bundle.Meridiems)
		writeList(&buf, "ErasShort", bundle.ErasShort)
		writeList(&buf, "ErasLong", bundle.ErasLong)
		writeList(&buf, "ErasNarrow", bundle.ErasNarrow)
		if len(bundle.DatePatterns) > 0 {
			buf.WriteString("\t\tDatePatterns: map[Width]string{\n")
			for _, width := range patternWidths {
				if pattern, ok := bundle.DatePatterns[width]; ok {
					fmt.Fprintf(&buf, "\t\t\tWidth%s: %q,\n", capitalize(width), pattern)
				}
			}
			buf.WriteString("\t\t},\n")
		}
		buf.WriteString("\t},\n")
	}
	buf.WriteString("}\n\n")

	buf.WriteString("func embeddedBundleList() []*CandidateBundle {\n")
	buf.WriteString("\tout := make([]*CandidateBundle, 0, len(embeddedBundles))\n")
	buf.WriteString("\tfor _, locale := range embeddedLocales {\n")
	buf.WriteString("\t\tbundle := embeddedBundles[locale]\n")
	buf.WriteString("\t\tout = append(out, &bundle)\n")
	buf.WriteString("\t}\n")
	buf.WriteString("\treturn out\n")
	buf.WriteString("}\n\n")

	buf.WriteString("var embeddedLocales = []string{\n")
	for _, bundle := range bundles {
		fmt.Fprintf(&buf, "\t%q,\n", bundle.Locale)
	}
	buf.WriteString("}\n\n")

	buf.WriteString("func EmbeddedLocales() []string {\n")
	buf.WriteString("\treturn append([]string{}, embeddedLocales...)\n")
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}

func writeList(buf *bytes.Buffer, name string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(buf, "\t\t%s: []string{\n", name)
	for _, value := range values {
		fmt.Fprintf(buf, "\t\t\t%q,\n", value)
	}
	buf.WriteString("\t\t},\n")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
