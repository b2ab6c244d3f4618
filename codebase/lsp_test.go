package codebase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

type notification struct {
	method string
	params protocol.PublishDiagnosticsParams
}

func recordingContext(t *testing.T) (*glsp.Context, *[]notification) {
	t.Helper()
	var sent []notification
	ctx := &glsp.Context{
		Notify: func(method string, params any) {
			p, ok := params.(protocol.PublishDiagnosticsParams)
			if !ok {
				t.Errorf("unexpected notification %s with %T", method, params)
				return
			}
			sent = append(sent, notification{method, p})
		},
	}
	return ctx, &sent
}

func startServer(t *testing.T, files map[string]string) (*LSPServer, string) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	ls := NewLSPServer("test")
	root := pathToURI(dir)
	result, err := ls.initialize(&glsp.Context{}, &protocol.InitializeParams{RootURI: &root})
	if err != nil {
		t.Fatalf("initialize error = %v", err)
	}
	res, ok := result.(protocol.InitializeResult)
	if !ok {
		t.Fatalf("initialize returned %T", result)
	}
	if res.Capabilities.DocumentSymbolProvider != true {
		t.Errorf("DocumentSymbolProvider = %v", res.Capabilities.DocumentSymbolProvider)
	}
	return ls, dir
}

func TestLSPPublishesDiagnosticsOnInitialized(t *testing.T) {
	ls, dir := startServer(t, map[string]string{
		"src/good.snek": "pass\n",
		"src/bad.snek":  "x = \n",
	})
	ctx, sent := recordingContext(t)

	if err := ls.initialized(ctx, &protocol.InitializedParams{}); err != nil {
		t.Fatalf("initialized error = %v", err)
	}
	if len(*sent) != 1 {
		t.Fatalf("sent %d notifications, want 1", len(*sent))
	}
	n := (*sent)[0]
	if n.method != protocol.ServerTextDocumentPublishDiagnostics {
		t.Errorf("method = %q", n.method)
	}
	if want := pathToURI(filepath.Join(dir, "src", "bad.snek")); n.params.URI != want {
		t.Errorf("URI = %q, want %q", n.params.URI, want)
	}
	if len(n.params.Diagnostics) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(n.params.Diagnostics))
	}
	d := n.params.Diagnostics[0]
	if d.Range.Start.Line != 0 || d.Range.Start.Character != 4 {
		t.Errorf("Range.Start = %+v, want 0:4", d.Range.Start)
	}
	if d.Severity == nil || *d.Severity != protocol.DiagnosticSeverityError {
		t.Errorf("Severity = %v", d.Severity)
	}
}

func TestLSPDocumentLifecycle(t *testing.T) {
	ls, dir := startServer(t, nil)
	ctx, sent := recordingContext(t)
	path := filepath.Join(dir, "src", "edit.snek")
	uri := pathToURI(path)

	err := ls.textDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "snek", Version: 1, Text: "type T =\n"},
	})
	if err != nil {
		t.Fatalf("didOpen error = %v", err)
	}
	if len(*sent) != 1 || len((*sent)[0].params.Diagnostics) != 1 {
		t.Fatalf("didOpen sent %+v, want one diagnostic", *sent)
	}

	err = ls.textDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "type T = Int\nv = 1\n"}},
	})
	if err != nil {
		t.Fatalf("didChange error = %v", err)
	}
	if len(*sent) != 2 || len((*sent)[1].params.Diagnostics) != 0 {
		t.Fatalf("didChange sent %+v, want cleared diagnostics", *sent)
	}

	result, err := ls.textDocumentDocumentSymbol(ctx, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	if err != nil {
		t.Fatalf("documentSymbol error = %v", err)
	}
	symbols, ok := result.([]protocol.DocumentSymbol)
	if !ok || len(symbols) != 2 {
		t.Fatalf("documentSymbol = %#v, want 2 symbols", result)
	}
	if symbols[0].Name != "T" || symbols[0].Kind != protocol.SymbolKindInterface || *symbols[0].Detail != "type" {
		t.Errorf("symbols[0] = %s %v", symbols[0].Name, symbols[0].Kind)
	}
	if symbols[1].Name != "v" || symbols[1].Range.Start.Line != 1 || symbols[1].Range.End.Character != 1 {
		t.Errorf("symbols[1] = %s %+v", symbols[1].Name, symbols[1].Range)
	}

	saved := "type T = \n"
	err = ls.textDocumentDidSave(ctx, &protocol.DidSaveTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
		Text:         &saved,
	})
	if err != nil {
		t.Fatalf("didSave error = %v", err)
	}
	if len(*sent) != 3 || len((*sent)[2].params.Diagnostics) != 1 {
		t.Fatalf("didSave sent %+v, want one diagnostic", *sent)
	}

	err = ls.textDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	if err != nil {
		t.Fatalf("didClose error = %v", err)
	}
	if len(*sent) != 4 || len((*sent)[3].params.Diagnostics) != 0 {
		t.Fatalf("didClose sent %+v, want cleared diagnostics", *sent)
	}
	if ls.codebase.GetFile(path) != nil {
		t.Error("closed file that does not exist on disk is still tracked")
	}
}

func TestURIConversion(t *testing.T) {
	path, err := uriToPath("file:///tmp/a%20b/x.snek")
	if err != nil {
		t.Fatalf("uriToPath error = %v", err)
	}
	if path != filepath.Clean("/tmp/a b/x.snek") {
		t.Errorf("uriToPath = %q", path)
	}
	if got := pathToURI("/tmp/a b/x.snek"); got != "file:///tmp/a%20b/x.snek" {
		t.Errorf("pathToURI = %q", got)
	}
	if path, _ := uriToPath("untitled:1"); path != "untitled:1" {
		t.Errorf("uriToPath(untitled) = %q", path)
	}
}
