package dateformat

import (
	"errors"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		want    []Token
		wantErr bool
	}{
		{
			name:   "numeric_date",
			format: "yyyy-MM-dd",
			want: []Token{
				{Value: "yyyy"},
				{Literal: true, Value: "-"},
				{Value: "MM"},
				{Literal: true, Value: "-"},
				{Value: "dd"},
			},
		},
		{
			name:   "quoted_literal",
			format: "HH 'hours'",
			want: []Token{
				{Value: "HH"},
				{Literal: true, Value: " "},
				{Literal: true, Value: "hours"},
			},
		},
		{
			name:   "doubled_quote_inside_literal",
			format: "h 'o''clock'",
			want: []Token{
				{Value: "h"},
				{Literal: true, Value: " "},
				{Literal: true, Value: "o'clock"},
			},
		},
		{
			name:   "bare_doubled_quote",
			format: "''",
			want: []Token{
				{Literal: true, Value: "'"},
			},
		},
		{
			name:   "unknown_letter_groups_into_macro",
			format: "QQ",
			want: []Token{
				{Value: "QQ"},
			},
		},
		{
			name:   "punctuation_is_literal",
			format: "d/M, y",
			want: []Token{
				{Value: "d"},
				{Literal: true, Value: "/"},
				{Value: "M"},
				{Literal: true, Value: ","},
				{Literal: true, Value: " "},
				{Value: "y"},
			},
		},
		{
			name:    "unterminated_quote",
			format:  "HH 'hours",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Tokenize(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if tt.wantErr {
				var terr *TemplateError
				if !errors.As(err, &terr) {
					t.Fatalf("Tokenize(%q) error type = %T, want *TemplateError", tt.format, err)
				}
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %v; want %v", tt.format, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Tokenize(%q)[%d] = %+v; want %+v", tt.format, i, got[i], tt.want[i])
				}
			}
		})
	}
}

// Concatenating the token values of an unquoted template must reproduce the
// template exactly.
func TestTokenizeReconstruction(t *testing.T) {
	formats := []string{
		"yyyy-MM-dd HH:mm:ss.SSS",
		"EEEE, MMMM d, yyyy",
		"M/d/yy h:mm a",
		"kkkk-WW-E",
		"yyyyMMdd",
	}
	for _, format := range formats {
		tokens, err := Tokenize(format)
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", format, err)
		}
		var b strings.Builder
		for _, tok := range tokens {
			b.WriteString(tok.Value)
		}
		if b.String() != format {
			t.Errorf("reconstructed %q; want %q", b.String(), format)
		}
	}
}
