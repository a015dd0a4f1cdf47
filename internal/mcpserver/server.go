// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes DocuFlow composition tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ayush179959/DocuFlow/internal/docservice"
	"github.com/ayush179959/DocuFlow/internal/store"
)

// Server wraps the MCP server with DocuFlow tools.
type Server struct {
	mcp     *server.MCPServer
	catalog store.Catalog
	svc     *docservice.Service
}

// New creates a new MCP server with all DocuFlow tools registered.
func New(catalog store.Catalog, svc *docservice.Service) *Server {
	s := &Server{catalog: catalog, svc: svc}

	s.mcp = server.NewMCPServer(
		"DocuFlow",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_templates",
		mcp.WithDescription("List the available document templates with their categories."),
	), s.listTemplates)

	s.mcp.AddTool(mcp.NewTool("read_template",
		mcp.WithDescription("Read the raw content of a template, including its placeholder tokens."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Template id")),
	), s.readTemplate)

	s.mcp.AddTool(mcp.NewTool("list_products",
		mcp.WithDescription("List the product catalog entries available for inclusion in documents."),
	), s.listProducts)

	s.mcp.AddTool(mcp.NewTool("compose_document",
		mcp.WithDescription("Compose a draft document from a template and selected products. "+
			"Placeholder tokens like [PRODUCT_TABLE], [DATE] and [TOTAL] are substituted; "+
			"the result is persisted as a draft and returned."),
		mcp.WithNumber("template_id", mcp.Required(), mcp.Description("Template id to merge")),
		mcp.WithString("product_ids", mcp.Description("Comma-separated product ids to include (optional)")),
	), s.composeDocument)

	s.mcp.AddTool(mcp.NewTool("read_document",
		mcp.WithDescription("Read a finished document, including its merged content and computed value."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Document id")),
	), s.readDocument)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) listTemplates(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	templates, err := s.catalog.ListTemplates()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	type row struct {
		ID       int64  `json:"id"`
		Name     string `json:"name"`
		Category string `json:"category"`
	}
	rows := make([]row, len(templates))
	for i, t := range templates {
		rows[i] = row{ID: t.ID, Name: t.Name, Category: t.Category}
	}
	out, _ := json.MarshalIndent(rows, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readTemplate(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tpl, err := s.catalog.GetTemplate(int64(id))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("template not found: %d", id)), nil
	}
	return mcp.NewToolResultText(tpl.Content), nil
}

func (s *Server) listProducts(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	products, err := s.catalog.ListProducts()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	type row struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Price string `json:"price"`
	}
	rows := make([]row, len(products))
	for i, p := range products {
		rows[i] = row{ID: p.ID, Name: p.Name, Price: p.Price}
	}
	out, _ := json.MarshalIndent(rows, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) composeDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	templateID, err := req.RequireInt("template_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	productIDs, err := parseIDList(req.GetString("product_ids", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc, err := s.svc.Compose(ctx, int64(templateID), productIDs, nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(doc, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readDocument(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	doc, err := s.catalog.GetDocument(int64(id))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("document not found: %d", id)), nil
	}
	out, _ := json.MarshalIndent(doc, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}
