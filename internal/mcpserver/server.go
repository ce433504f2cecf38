// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes Dagaz build and inspection tools over stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/dagaz/internal/manifest"
	"github.com/starford/dagaz/internal/site"
	"github.com/starford/dagaz/internal/storage"
)

// Server wraps the MCP server with Dagaz tools.
type Server struct {
	mcp     *server.MCPServer
	builder *site.Builder
	source  storage.Provider
	man     *manifest.Store // nil when manifest recording is disabled
}

// New creates an MCP server with all Dagaz tools registered.
func New(builder *site.Builder, source storage.Provider, man *manifest.Store) *Server {
	s := &Server{builder: builder, source: source, man: man}

	s.mcp = server.NewMCPServer(
		"Dagaz",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("build_site",
		mcp.WithDescription("Run a full site build: convert every Markdown document, "+
			"render the index page, and copy static assets."),
	), s.buildSite)

	s.mcp.AddTool(mcp.NewTool("list_documents",
		mcp.WithDescription("List the Markdown source documents of the site."),
	), s.listDocuments)

	s.mcp.AddTool(mcp.NewTool("read_document",
		mcp.WithDescription("Read the raw Markdown source of one document. "+
			"Documents start with a metadata header; see the dagaz://document-format resource."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Source file name (e.g. hello-world.md)")),
	), s.readDocument)

	s.mcp.AddTool(mcp.NewTool("site_status",
		mcp.WithDescription("Show recent build runs recorded in the manifest."),
	), s.siteStatus)

	s.mcp.AddResource(
		mcp.NewResource("dagaz://document-format", "Document Format",
			mcp.WithResourceDescription("Canonical source document format: metadata header plus Markdown body."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readDocumentFormatResource,
	)

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

func (s *Server) buildSite(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := s.builder.Build(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if s.man != nil {
		if _, recErr := s.man.RecordBuild(res, manifest.StatusOK); recErr != nil {
			return mcp.NewToolResultError(recErr.Error()), nil
		}
	}
	return mcp.NewToolResultText(fmt.Sprintf("built %d documents and %d assets in %s",
		len(res.Documents), len(res.Assets), res.Duration)), nil
}

func (s *Server) listDocuments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	files, err := s.source.List(site.DocSuffix)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(files) == 0 {
		return mcp.NewToolResultText("no documents"), nil
	}
	var names []string
	for _, f := range files {
		names = append(names, f.Name)
	}
	return mcp.NewToolResultText(strings.Join(names, "\n")), nil
}

func (s *Server) readDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := s.source.Read(name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", name)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) siteStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.man == nil {
		return mcp.NewToolResultText("manifest recording is disabled"), nil
	}
	builds, err := s.man.RecentBuilds(10)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(builds, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readDocumentFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "dagaz://document-format",
			MIMEType: "text/markdown",
			Text:     DocumentFormatContract,
		},
	}, nil
}
