package format

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/snek/ast"
	"github.com/dhamidi/snek/parser"
)

var testcasesDir string
var testFilter string

func init() {
	flag.StringVar(&testcasesDir, "testcases", "testdata", "directory containing .snek test files")
	flag.StringVar(&testFilter, "filter", "", "filter test files by substring match on filename")
}

// TestRoundTrip_Testcases parses every .snek file under the testcases
// directory, encodes the tree as JSON and YAML, decodes both again and
// checks that no node was lost or invented on the way.
// Use -filter to narrow the files: go test ./format -filter=types
func TestRoundTrip_Testcases(t *testing.T) {
	var files []string
	err := filepath.WalkDir(testcasesDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".snek") {
			if testFilter != "" && !strings.Contains(path, testFilter) {
				return nil
			}
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("failed to walk testcases directory: %v", err)
	}
	if len(files) == 0 {
		t.Skipf("no .snek files found in %s", testcasesDir)
	}

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".snek")
		t.Run(name, func(t *testing.T) {
			runRoundTripTest(t, file)
		})
	}
}

func runRoundTripTest(t *testing.T, filename string) {
	source, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	stmts, err := parser.Parse(source, parser.WithFile(filename))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	want := countNodeKinds(stmts)
	obj := Program(stmts, WithPositions())

	var jsonOut bytes.Buffer
	if err := NewJSONEncoder(&jsonOut).Encode(obj); err != nil {
		t.Fatalf("JSON encode error: %v", err)
	}
	var fromJSON any
	if err := json.Unmarshal(jsonOut.Bytes(), &fromJSON); err != nil {
		t.Fatalf("JSON decode error: %v", err)
	}

	var yamlOut bytes.Buffer
	if err := NewYAMLEncoder(&yamlOut).Encode(obj); err != nil {
		t.Fatalf("YAML encode error: %v", err)
	}
	var fromYAML any
	if err := yaml.Unmarshal(yamlOut.Bytes(), &fromYAML); err != nil {
		t.Fatalf("YAML decode error: %v", err)
	}

	for format, decoded := range map[string]any{"json": fromJSON, "yaml": fromYAML} {
		got := map[string]int{}
		countDecodedKinds(decoded, got)
		for kind, n := range want {
			if got[kind] != n {
				t.Errorf("%s: %d %s nodes, want %d", format, got[kind], kind, n)
			}
		}
		for kind, n := range got {
			if _, ok := want[kind]; !ok {
				t.Errorf("%s: %d unexpected %s nodes", format, n, kind)
			}
		}
	}
}

// countNodeKinds counts the nodes of a program by kind name. Record fields
// carry no kind of their own and are skipped.
func countNodeKinds(stmts []ast.Statement) map[string]int {
	counts := map[string]int{"Program": 1}
	for _, stmt := range stmts {
		ast.Inspect(stmt, func(n ast.Node) bool {
			switch n := n.(type) {
			case ast.Statement:
				counts[n.Kind().String()]++
			case ast.Expression:
				counts[n.Kind().String()]++
			case ast.Type:
				counts[n.Kind().String()]++
			case ast.ImportSpecifier:
				counts[n.Kind().String()]++
			}
			return true
		})
	}
	return counts
}

func countDecodedKinds(v any, counts map[string]int) {
	switch v := v.(type) {
	case map[string]any:
		if kind, ok := v["kind"].(string); ok {
			counts[kind]++
		}
		for _, child := range v {
			countDecodedKinds(child, counts)
		}
	case []any:
		for _, child := range v {
			countDecodedKinds(child, counts)
		}
	}
}
