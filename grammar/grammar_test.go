package grammar

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dhamidi/snek/lexer"
	"github.com/dhamidi/snek/parser"
	"github.com/dhamidi/snek/token"
)

func TestLoad(t *testing.T) {
	g, err := Load()
	if err != nil {
		for _, e := range Errors(err) {
			t.Log(e)
		}
		t.Fatalf("Load() error = %v", err)
	}
	if _, ok := g[Start]; !ok {
		t.Fatalf("grammar has no %s production", Start)
	}
	for _, name := range []string{"Block", "Type", "Expression", "ImportStmt", "RecordTypeField"} {
		if _, ok := g[name]; !ok {
			t.Errorf("grammar has no %s production", name)
		}
	}
}

func TestGrammarCoversKeywords(t *testing.T) {
	g, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	terminals := map[string]bool{}
	for _, tok := range Terminals(g) {
		terminals[tok] = true
	}
	for _, word := range token.Keywords() {
		if !terminals[word] {
			t.Errorf("keyword %q does not appear in the grammar", word)
		}
	}
	for _, marker := range []string{"NEWLINE", "INDENT", "DEDENT", "IDENT", "INT", "FLOAT", "STRING"} {
		if !terminals[marker] {
			t.Errorf("token %q does not appear in the grammar", marker)
		}
	}
}

func TestGrammarCoversOperators(t *testing.T) {
	g, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	terminals := map[string]bool{}
	for _, tok := range Terminals(g) {
		terminals[tok] = true
	}
	for kind := token.LParen; kind <= token.BitOr; kind++ {
		if !terminals[kind.String()] {
			t.Errorf("token %v does not appear in the grammar", kind)
		}
	}
}

func TestSourceIsACopy(t *testing.T) {
	src := Source()
	if !strings.Contains(string(src), "Program =") {
		t.Fatal("grammar source does not define Program")
	}
	src[0] = 'x'
	if Source()[0] == 'x' {
		t.Error("Source() exposes the embedded bytes")
	}
}

func TestErrorsUnwrapsLists(t *testing.T) {
	single := errors.New("boom")
	if got := Errors(single); len(got) != 1 || got[0] != single {
		t.Errorf("Errors(single) = %v", got)
	}
	list := multiError{errors.New("a"), errors.New("b")}
	if got := Errors(list); len(got) != 2 {
		t.Errorf("Errors(list) = %v, want 2 errors", got)
	}
}

type multiError []error

func (m multiError) Error() string { return "multiple errors" }

func newRecognizer(t *testing.T) *Recognizer {
	t.Helper()
	g, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	r, err := NewRecognizer(g, Start)
	if err != nil {
		t.Fatalf("NewRecognizer() error = %v", err)
	}
	return r
}

func tokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	tokens, err := lexer.Tokenize([]byte(src), "")
	if err != nil {
		t.Fatalf("Tokenize(%q) error = %v", src, err)
	}
	return tokens
}

// The grammar and the parser must agree on what a program is.
func TestRecognizerAgreesWithParser(t *testing.T) {
	r := newRecognizer(t)

	tests := []struct {
		name  string
		src   string
		valid bool
	}{
		{"empty", "", true},
		{"assignment", "x = 1\n", true},
		{"semicolons", "a; b;\nc\n", true},
		{"precedence", "a = -b * c + d << 2 == e && f\n", true},
		{"selectors", "a.b?.c[0]?.[1](x, y,)?.(z)\n", true},
		{"literals", "x = [1, 2.5, 'a', true, false, null, {a: 1, \"b c\": [],}]\n", true},
		{"if else chain", "if a:\n  pass\nelse if b:\n  break\nelse: continue\n", true},
		{"while", "while x < 10:\n  x = x + 1\n  if x: return x\n", true},
		{"imports", "import a, b as c, * as d from \"m\"\n", true},
		{"exports", "export x\nexport y = 1\nexport type T = Int\n", true},
		{"types", "type F = (Int, Str[]) -> [Bool, \"x\"] | {a: Num}\ntype G = A & B\n", true},
		{"missing colon", "if x\n  pass\n", false},
		{"dangling operator", "x = 1 +\n", false},
		{"unclosed list", "x = [1, 2\n", false},
		{"import without from", "import a\n", false},
		{"double arrow", "type F = () -> -> Int\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := tokenize(t, tt.src)
			grammarErr := r.Recognize(tokens)
			_, parseErr := parser.ParseTokens(tokens)

			if (grammarErr == nil) != tt.valid {
				t.Errorf("Recognize() error = %v, want valid=%v", grammarErr, tt.valid)
			}
			if (parseErr == nil) != tt.valid {
				t.Errorf("ParseTokens() error = %v, want valid=%v", parseErr, tt.valid)
			}
		})
	}
}

func TestRecognizerAcceptsSamplePrograms(t *testing.T) {
	r := newRecognizer(t)
	files, err := filepath.Glob(filepath.Join("..", "format", "testdata", "*.snek"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Skip("no sample programs found")
	}
	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			src, err := os.ReadFile(file)
			if err != nil {
				t.Fatal(err)
			}
			if err := r.Recognize(tokenize(t, string(src))); err != nil {
				t.Errorf("Recognize() error = %v", err)
			}
		})
	}
}

func TestRecognizerReportsPosition(t *testing.T) {
	r := newRecognizer(t)
	err := r.Recognize(tokenize(t, "x = 1\nwhile x\n  pass\n"))
	if err == nil {
		t.Fatal("Recognize() succeeded, want error")
	}
	if !strings.HasPrefix(err.Error(), "2:8: ") {
		t.Errorf("error = %q, want it to start with 2:8", err)
	}
}

func TestNewRecognizerUnknownStart(t *testing.T) {
	g, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := NewRecognizer(g, "Nope"); err == nil {
		t.Error("NewRecognizer(Nope) succeeded, want error")
	}
}

func TestTerminal(t *testing.T) {
	tests := []struct {
		tok  token.Token
		want string
	}{
		{token.Token{Kind: token.Ident, Value: "x"}, "IDENT"},
		{token.Token{Kind: token.Str, Value: "x"}, "STRING"},
		{token.Token{Kind: token.Indent}, "INDENT"},
		{token.Token{Kind: token.While}, "while"},
		{token.Token{Kind: token.OptionalDot}, "?."},
	}
	for _, tt := range tests {
		if got := Terminal(tt.tok); got != tt.want {
			t.Errorf("Terminal(%v) = %q, want %q", tt.tok, got, tt.want)
		}
	}
}
