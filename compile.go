package dateformat

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dlclark/regexp2"
)

// CaptureGroup describes one named sub-pattern of the compiled template. The
// group order equals the non-literal token order, so group i captures token
// i's field.
type CaptureGroup struct {
	Field   Field
	Pattern string

	spec macroSpec
	// candidates holds the provider list in calendar order for reverse
	// lookup, so interpretation never queries the provider again.
	candidates []string
}

type compiledTemplate struct {
	format  string
	locale  string
	tokens  []Token
	groups  []CaptureGroup
	pattern string
	re      *regexp2.Regexp
}

// compileTemplate turns a format template into one composite anchored
// pattern. Template problems surface as *TemplateError; provider failures
// surface as wrapped faults.
func compileTemplate(format, locale string, provider CandidateProvider) (*compiledTemplate, error) {
	tokens, err := Tokenize(format)
	if err != nil {
		return nil, err
	}
	expanded, err := expandComposites(tokens, locale, provider)
	if err != nil {
		return nil, err
	}

	ct := &compiledTemplate{format: format, locale: locale, tokens: expanded}

	var b strings.Builder
	b.WriteString(`\A`)
	for _, tok := range expanded {
		if tok.Literal {
			b.WriteString(escapeLiteral(tok.Value))
			continue
		}

		spec, ok := macroTable[tok.Value]
		if !ok {
			return nil, &TemplateError{Token: tok.Value, Reason: "unsupported token"}
		}

		group := CaptureGroup{Field: spec.field, spec: spec}
		switch spec.kind {
		case kindNumeric:
			group.Pattern = digitRun(spec.minDigits, spec.maxDigits)
		case kindNamed:
			candidates, err := provider.Candidates(spec.unit, spec.width, spec.standalone, locale)
			if err != nil {
				return nil, fmt.Errorf("dateformat: candidates for %q: %w", tok.Value, err)
			}
			group.candidates = candidates
			group.Pattern = alternation(candidates)
		case kindOffset:
			switch spec.form {
			case offsetNarrow:
				group.Pattern = `[+-]\d{1,2}`
			case offsetShort:
				group.Pattern = `[+-]\d{2}:\d{2}`
			case offsetTechie:
				group.Pattern = `[+-]\d{4}`
			}
		case kindZone:
			group.Pattern = `[A-Za-z_+\-/]{1,256}`
		default:
			return nil, &TemplateError{Token: tok.Value, Reason: "unsupported token"}
		}

		fmt.Fprintf(&b, "(?<g%d>%s)", len(ct.groups), group.Pattern)
		ct.groups = append(ct.groups, group)
	}
	b.WriteString(`\z`)

	ct.pattern = b.String()
	re, err := regexp2.Compile(ct.pattern, regexp2.IgnoreCase)
	if err != nil {
		return nil, fmt.Errorf("dateformat: compile pattern %q: %w", ct.pattern, err)
	}
	ct.re = re
	return ct, nil
}

func digitRun(min, max int) string {
	if min == max {
		return fmt.Sprintf(`\d{%d}`, min)
	}
	return fmt.Sprintf(`\d{%d,%d}`, min, max)
}

// alternation joins escaped candidates longest first, so a candidate that is
// a prefix of another can never shadow the longer one during matching.
func alternation(candidates []string) string {
	escaped := make([]string, len(candidates))
	for i, candidate := range candidates {
		escaped[i] = escapeLiteral(candidate)
	}
	sort.SliceStable(escaped, func(i, j int) bool {
		return len(escaped[i]) > len(escaped[j])
	})
	return strings.Join(escaped, "|")
}

// escapeLiteral escapes every regex metacharacter so literal template text
// and candidate names match verbatim.
func escapeLiteral(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\', '.', '+', '*', '?', '(', ')', '[', ']', '{', '}', '^', '$', '|':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
