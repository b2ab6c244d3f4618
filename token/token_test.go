package token

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{NewLine, "NewLine"},
		{Indent, "Indent"},
		{Dedent, "Dedent"},
		{Ident, "Identifier"},
		{Str, "StringLiteral"},
		{Import, "import"},
		{While, "while"},
		{OptionalDot, "?."},
		{Shl, "<<"},
		{BitOr, "|"},
		{Kind(9999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		ident string
		want  Kind
	}{
		{"import", Import},
		{"from", From},
		{"as", As},
		{"null", Null},
		{"type", Type},
		{"Int", Ident},
		{"imports", Ident},
		{"_", Ident},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			if got := Lookup(tt.ident); got != tt.want {
				t.Errorf("Lookup(%q) = %v, want %v", tt.ident, got, tt.want)
			}
		})
	}
}

func TestKeywordsAreKeywordKinds(t *testing.T) {
	for _, word := range Keywords() {
		kind := Lookup(word)
		if !kind.IsKeyword() {
			t.Errorf("%q maps to %v which is not a keyword kind", word, kind)
		}
		if kind.String() != word {
			t.Errorf("%v.String() = %q, want %q", kind, kind.String(), word)
		}
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: Ident, Value: "foo"}, "Identifier `foo'"},
		{Token{Kind: Str, Value: "m"}, `StringLiteral "m"`},
		{Token{Kind: Colon}, "`:'"},
		{Token{Kind: Dedent}, "Dedent"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.tok.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPositionString(t *testing.T) {
	if got := (Position{Line: 3, Column: 7}).String(); got != "3:7" {
		t.Errorf("got %q, want %q", got, "3:7")
	}
	if got := (Position{File: "main.snek", Line: 1, Column: 2}).String(); got != "main.snek:1:2" {
		t.Errorf("got %q, want %q", got, "main.snek:1:2")
	}
	if (Position{}).IsValid() {
		t.Error("zero position should not be valid")
	}
}
