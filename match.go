package dateformat

import (
	"fmt"
	"strconv"
)

// match runs the composite pattern over the whole input. The pattern is
// anchored on both sides, so a partial hit in the middle of the input is a
// miss. A miss is an ordinary outcome reported through ok=false; only engine
// faults produce an error.
func (ct *compiledTemplate) match(input string) ([]string, bool, error) {
	m, err := ct.re.FindStringMatch(input)
	if err != nil {
		return nil, false, fmt.Errorf("dateformat: match: %w", err)
	}
	if m == nil {
		return nil, false, nil
	}

	captures := make([]string, len(ct.groups))
	for i := range ct.groups {
		group := m.GroupByName("g" + strconv.Itoa(i))
		if group == nil {
			return nil, false, fmt.Errorf("dateformat: missing capture group %d", i)
		}
		captures[i] = group.String()
	}
	return captures, true, nil
}

// rawMatches folds ordered captures into the field-keyed view used by the
// explain record. When a field is captured twice the later capture wins here;
// conflict detection happens during interpretation.
func (ct *compiledTemplate) rawMatches(captures []string) map[Field]string {
	out := make(map[Field]string, len(captures))
	for i, group := range ct.groups {
		out[group.Field] = captures[i]
	}
	return out
}
