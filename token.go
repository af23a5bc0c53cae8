package dateformat

import "strings"

// Token is one fragment of a format template: either verbatim literal text or
// a macro code such as "MMMM" or "yyyy". Tokens are ordered left to right and
// immutable once produced.
type Token struct {
	Literal bool
	Value   string
}

func (t Token) String() string {
	if t.Literal {
		return "'" + t.Value + "'"
	}
	return t.Value
}

// Tokenize splits a format template into literal and macro tokens.
//
// A single-quote pair delimits literal text inserted verbatim, with a doubled
// quote inside standing for one literal quote character. A bare doubled quote
// outside any literal is a single quote character. Runs of the same letter
// are grouped into one macro token whose length selects the padding width
// ("dd" vs "d"). Any other character becomes a single-character literal.
//
// The only failure mode is an unterminated quoted literal, reported as a
// *TemplateError.
func Tokenize(format string) ([]Token, error) {
	var tokens []Token
	runes := []rune(format)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == '\'':
			if i+1 < len(runes) && runes[i+1] == '\'' {
				tokens = append(tokens, Token{Literal: true, Value: "'"})
				i += 2
				continue
			}
			lit, next, ok := scanQuoted(runes, i)
			if !ok {
				return nil, &TemplateError{Reason: "unterminated quoted literal"}
			}
			tokens = append(tokens, Token{Literal: true, Value: lit})
			i = next
		case isMacroRune(r):
			j := i
			for j < len(runes) && runes[j] == r {
				j++
			}
			tokens = append(tokens, Token{Value: string(runes[i:j])})
			i = j
		default:
			tokens = append(tokens, Token{Literal: true, Value: string(r)})
			i++
		}
	}
	return tokens, nil
}

// scanQuoted consumes a quoted literal starting at the opening quote and
// returns the unescaped text plus the index just past the closing quote.
func scanQuoted(runes []rune, start int) (string, int, bool) {
	var b strings.Builder
	i := start + 1
	for i < len(runes) {
		if runes[i] == '\'' {
			if i+1 < len(runes) && runes[i+1] == '\'' {
				b.WriteRune('\'')
				i += 2
				continue
			}
			return b.String(), i + 1, true
		}
		b.WriteRune(runes[i])
		i++
	}
	return "", 0, false
}

func isMacroRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
