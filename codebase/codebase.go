// Package codebase keeps the parsed state of every Snek source file in a
// project and serves it to the checker and the language server.
package codebase

import (
	"errors"
	"os"
	"sort"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/snek/ast"
	"github.com/dhamidi/snek/parser"
	"github.com/dhamidi/snek/project"
	"github.com/dhamidi/snek/token"
)

var log = commonlog.GetLogger("snek.codebase")

type Codebase struct {
	mu      sync.RWMutex
	project *project.Project
	files   map[string]*FileInfo
}

type FileInfo struct {
	Path       string
	Content    []byte
	Statements []ast.Statement
	ParseErr   error
}

// Diagnostic is a syntax error found in one file.
type Diagnostic struct {
	Path    string
	Pos     token.Position
	Length  int
	Message string
}

func New(proj *project.Project) *Codebase {
	return &Codebase{
		project: proj,
		files:   make(map[string]*FileInfo),
	}
}

func (c *Codebase) Project() *project.Project {
	return c.project
}

func (c *Codebase) RootDir() string {
	return c.project.RootDir
}

// ScanAll parses every source file of the project. Files that cannot be
// read are logged and skipped.
func (c *Codebase) ScanAll() error {
	paths, err := c.project.SourceFiles()
	if err != nil {
		return err
	}
	for _, path := range paths {
		if err := c.ScanFile(path); err != nil {
			log.Warningf("scan %s: %s", path, err)
		}
	}
	return nil
}

func (c *Codebase) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	c.UpdateFile(path, content)
	return nil
}

// UpdateFile replaces the content of path and parses it again.
func (c *Codebase) UpdateFile(path string, content []byte) *FileInfo {
	opts := append(c.project.ParserOptions(), parser.WithFile(path))
	stmts, err := parser.Parse(content, opts...)
	if err != nil {
		log.Debugf("%s", err)
	}

	info := &FileInfo{
		Path:       path,
		Content:    content,
		Statements: stmts,
		ParseErr:   err,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.files[path] = info
	return info
}

func (c *Codebase) RemoveFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.files, path)
}

func (c *Codebase) GetFile(path string) *FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

// Files returns the paths of all known files, sorted.
func (c *Codebase) Files() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	paths := make([]string, 0, len(c.files))
	for path := range c.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Diagnostics returns one entry per file that failed to parse, ordered by
// path.
func (c *Codebase) Diagnostics() []Diagnostic {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []Diagnostic
	for _, f := range c.files {
		if d, ok := f.Diagnostic(); ok {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// Diagnostic describes the parse error of f, if there is one.
func (f *FileInfo) Diagnostic() (Diagnostic, bool) {
	if f.ParseErr == nil {
		return Diagnostic{}, false
	}
	d := Diagnostic{Path: f.Path, Message: f.ParseErr.Error(), Length: 1}

	var syn *parser.SyntaxError
	if errors.As(f.ParseErr, &syn) {
		d.Pos = syn.Pos
		d.Message = syn.Message
		if syn.Found != nil && syn.Found.Width() > 0 {
			d.Length = syn.Found.Width()
		}
	}
	return d, true
}

type SymbolKind int

const (
	SymbolVariable SymbolKind = iota
	SymbolType
	SymbolImport
	SymbolExport
	SymbolExportType
)

var symbolKindNames = map[SymbolKind]string{
	SymbolVariable:   "variable",
	SymbolType:       "type",
	SymbolImport:     "import",
	SymbolExport:     "export",
	SymbolExportType: "export type",
}

func (k SymbolKind) String() string {
	return symbolKindNames[k]
}

// Symbol is a name declared in a file.
type Symbol struct {
	Name string
	Kind SymbolKind
	Pos  token.Position
}

// Symbols lists the names a file declares, in source order: type aliases,
// exports, import bindings and the first assignment to each plain variable.
func (c *Codebase) Symbols(path string) []Symbol {
	f := c.GetFile(path)
	if f == nil {
		return nil
	}
	return fileSymbols(f.Statements)
}

func fileSymbols(stmts []ast.Statement) []Symbol {
	var symbols []Symbol
	assigned := map[string]bool{}

	for _, stmt := range stmts {
		ast.Inspect(stmt, func(n ast.Node) bool {
			switch n := n.(type) {
			case *ast.TypeStmt:
				symbols = append(symbols, Symbol{Name: n.Name, Kind: SymbolType, Pos: n.Position})
			case *ast.ExportTypeStmt:
				symbols = append(symbols, Symbol{Name: n.Name, Kind: SymbolExportType, Pos: n.Position})
			case *ast.ExportNameStmt:
				symbols = append(symbols, Symbol{Name: n.Name, Kind: SymbolExport, Pos: n.Position})
			case *ast.ExportExprStmt:
				symbols = append(symbols, Symbol{Name: n.Name, Kind: SymbolExport, Pos: n.Position})
			case *ast.NamedSpecifier:
				symbols = append(symbols, Symbol{Name: n.LocalName(), Kind: SymbolImport, Pos: n.Position})
			case *ast.StarSpecifier:
				symbols = append(symbols, Symbol{Name: n.Name, Kind: SymbolImport, Pos: n.Position})
			case *ast.AssignStmt:
				if id, ok := n.Target.(*ast.IdentExpr); ok && !assigned[id.Name] {
					assigned[id.Name] = true
					symbols = append(symbols, Symbol{Name: id.Name, Kind: SymbolVariable, Pos: id.Position})
				}
			case ast.Expression, ast.Type:
				return false
			}
			return true
		})
	}
	return symbols
}
