package codebase

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/snek/project"
	"github.com/dhamidi/snek/token"
)

const lsName = "snek"

var lspLog = commonlog.GetLogger("snek.lsp")

// LSPServer answers Language Server Protocol requests for Snek files. It
// reports syntax errors as diagnostics and lists declared names as document
// symbols.
type LSPServer struct {
	codebase *Codebase
	handler  protocol.Handler
	server   *server.Server
	version  string
}

func NewLSPServer(version string) *LSPServer {
	ls := &LSPServer{
		version: version,
	}

	ls.handler = protocol.Handler{
		Initialize:                 ls.initialize,
		Initialized:                ls.initialized,
		Shutdown:                   ls.shutdown,
		SetTrace:                   ls.setTrace,
		TextDocumentDidOpen:        ls.textDocumentDidOpen,
		TextDocumentDidChange:      ls.textDocumentDidChange,
		TextDocumentDidClose:       ls.textDocumentDidClose,
		TextDocumentDidSave:        ls.textDocumentDidSave,
		TextDocumentDocumentSymbol: ls.textDocumentDocumentSymbol,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

// RunTCP serves clients connecting to address.
func (ls *LSPServer) RunTCP(address string) error {
	return ls.server.RunTCP(address)
}

// RunWebSocket serves clients connecting to address over WebSocket.
func (ls *LSPServer) RunWebSocket(address string) error {
	return ls.server.RunWebSocket(address)
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	proj, err := project.LoadFrom(rootDir)
	if err != nil {
		lspLog.Errorf("load project: %s", err)
		proj = &project.Project{RootDir: rootDir, Config: project.DefaultConfig(filepath.Base(rootDir))}
	}
	ls.codebase = New(proj)

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.DocumentSymbolProvider = true

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	if err := ls.codebase.ScanAll(); err != nil {
		lspLog.Errorf("scan project: %s", err)
	}
	for _, d := range ls.codebase.Diagnostics() {
		ls.publish(ctx, d.Path, []Diagnostic{d})
	}
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.update(ctx, path, []byte(params.TextDocument.Text))
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.update(ctx, path, []byte(textChange.Text))
		}
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if !ls.codebase.Project().IsSource(path) || ls.codebase.ScanFile(path) != nil {
		ls.codebase.RemoveFile(path)
	}
	ls.publish(ctx, path, nil)
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if params.Text != nil {
		ls.update(ctx, path, []byte(*params.Text))
		return nil
	}
	if err := ls.codebase.ScanFile(path); err != nil {
		lspLog.Warningf("read %s: %s", path, err)
		return nil
	}
	ls.publishFile(ctx, path)
	return nil
}

func (ls *LSPServer) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}

	symbols := ls.codebase.Symbols(path)
	if len(symbols) == 0 {
		return nil, nil
	}

	items := make([]protocol.DocumentSymbol, 0, len(symbols))
	for _, s := range symbols {
		detail := s.Kind.String()
		r := toRange(s.Pos, len(s.Name))
		items = append(items, protocol.DocumentSymbol{
			Name:           s.Name,
			Detail:         &detail,
			Kind:           toProtocolSymbolKind(s.Kind),
			Range:          r,
			SelectionRange: r,
		})
	}
	return items, nil
}

func (ls *LSPServer) update(ctx *glsp.Context, path string, content []byte) {
	ls.codebase.UpdateFile(path, content)
	ls.publishFile(ctx, path)
}

func (ls *LSPServer) publishFile(ctx *glsp.Context, path string) {
	f := ls.codebase.GetFile(path)
	if f == nil {
		return
	}
	var diags []Diagnostic
	if d, ok := f.Diagnostic(); ok {
		diags = append(diags, d)
	}
	ls.publish(ctx, path, diags)
}

// publish replaces the client's diagnostics for path; an empty list clears
// them.
func (ls *LSPServer) publish(ctx *glsp.Context, path string, diags []Diagnostic) {
	items := make([]protocol.Diagnostic, 0, len(diags))
	for _, d := range diags {
		severity := protocol.DiagnosticSeverityError
		source := lsName
		items = append(items, protocol.Diagnostic{
			Range:    toRange(d.Pos, d.Length),
			Severity: &severity,
			Source:   &source,
			Message:  d.Message,
		})
	}
	lspLog.Debugf("publish %d diagnostics for %s", len(items), path)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         pathToURI(path),
		Diagnostics: items,
	})
}

// toRange converts a 1-based source position into an LSP range of length
// characters. Errors at the end of input have no position and map to the
// start of the document.
func toRange(pos token.Position, length int) protocol.Range {
	var start protocol.Position
	if pos.IsValid() {
		start = protocol.Position{
			Line:      protocol.UInteger(pos.Line - 1),
			Character: protocol.UInteger(pos.Column - 1),
		}
	}
	end := start
	end.Character += protocol.UInteger(length)
	return protocol.Range{Start: start, End: end}
}

func toProtocolSymbolKind(kind SymbolKind) protocol.SymbolKind {
	switch kind {
	case SymbolType, SymbolExportType:
		return protocol.SymbolKindInterface
	case SymbolImport:
		return protocol.SymbolKindModule
	default:
		return protocol.SymbolKindVariable
	}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func pathToURI(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(path)}).String()
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
