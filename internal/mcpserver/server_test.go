package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ayush179959/DocuFlow/internal/docservice"
	"github.com/ayush179959/DocuFlow/internal/testutil"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	db := testutil.SeededCatalog(t)
	return New(db, docservice.NewService(db))
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	// mcp-go has no direct "call tool" test helper, so tool handlers are
	// invoked directly.
	var result *mcp.CallToolResult
	var err error

	switch name {
	case "list_templates":
		result, err = srv.listTemplates(ctx, req)
	case "read_template":
		result, err = srv.readTemplate(ctx, req)
	case "list_products":
		result, err = srv.listProducts(ctx, req)
	case "compose_document":
		result, err = srv.composeDocument(ctx, req)
	case "read_document":
		result, err = srv.readDocument(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestListTemplates(t *testing.T) {
	srv := testServer(t)
	r := callTool(t, srv, "list_templates", nil)
	text := resultText(r)
	if !strings.Contains(text, "Service Agreement") || !strings.Contains(text, "Product Quote") {
		t.Errorf("listing missing seeded templates:\n%s", text)
	}
}

func TestReadTemplate(t *testing.T) {
	srv := testServer(t)
	r := callTool(t, srv, "read_template", map[string]interface{}{"id": 2})
	text := resultText(r)
	if !strings.Contains(text, "[PRODUCT_TABLE]") {
		t.Errorf("template content missing tokens:\n%s", text)
	}
}

func TestReadTemplate_NotFound(t *testing.T) {
	srv := testServer(t)
	r := callTool(t, srv, "read_template", map[string]interface{}{"id": 999})
	if !r.IsError {
		t.Error("expected error result for unknown template")
	}
}

func TestListProducts(t *testing.T) {
	srv := testServer(t)
	r := callTool(t, srv, "list_products", nil)
	text := resultText(r)
	if !strings.Contains(text, "Premium Software License") || !strings.Contains(text, "$2,999/year") {
		t.Errorf("listing missing seeded products:\n%s", text)
	}
}

func TestComposeDocument(t *testing.T) {
	srv := testServer(t)
	r := callTool(t, srv, "compose_document", map[string]interface{}{
		"template_id": 2,
		"product_ids": "1,2",
	})
	if r.IsError {
		t.Fatalf("compose failed: %s", resultText(r))
	}
	text := resultText(r)
	if strings.Contains(text, "[PRODUCT_TABLE]") {
		t.Errorf("unresolved tokens in composed document:\n%s", text)
	}
	if !strings.Contains(text, `"status": "draft"`) {
		t.Errorf("composed document not a draft:\n%s", text)
	}
}

func TestComposeDocument_BadProductIDs(t *testing.T) {
	srv := testServer(t)
	r := callTool(t, srv, "compose_document", map[string]interface{}{
		"template_id": 1,
		"product_ids": "1,abc",
	})
	if !r.IsError {
		t.Error("expected error result for malformed product ids")
	}
}

func TestReadDocument(t *testing.T) {
	srv := testServer(t)
	r := callTool(t, srv, "read_document", map[string]interface{}{"id": 1})
	text := resultText(r)
	if !strings.Contains(text, `"title"`) || !strings.Contains(text, `"value"`) {
		t.Errorf("document payload incomplete:\n%s", text)
	}
}

func TestParseIDList(t *testing.T) {
	ids, err := parseIDList("1, 3,5")
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 3 || ids[2] != 5 {
		t.Errorf("ids = %v", ids)
	}

	ids, err = parseIDList("")
	if err != nil || len(ids) != 0 {
		t.Errorf("empty input: ids = %v, err = %v", ids, err)
	}

	if _, err := parseIDList("1,x"); err == nil {
		t.Error("expected error for non-numeric id")
	}
}
