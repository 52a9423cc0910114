// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the transcription converter for LLM integration via
// stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/voiceinbox/internal/convert"
)

// Server wraps the MCP server with converter tools.
type Server struct {
	mcp *server.MCPServer
	svc *convert.Service
}

// New creates a new MCP server with the converter tools registered.
func New(svc *convert.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		convert.ServiceName,
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("convert_transcription",
		mcp.WithDescription("Convert free-form transcribed text into a structured note "+
			"(YAML frontmatter plus body) and a derived filename. Same contract as "+
			"POST /convert. Read the format first via the get_note_format tool or "+
			"the voiceinbox://note-format resource."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Transcribed text to convert")),
		mcp.WithString("source", mcp.Description("Transcription source (defaults to superwhisper)")),
	), s.convertTranscription)

	s.mcp.AddTool(mcp.NewTool("get_note_format",
		mcp.WithDescription("Returns the canonical note format the converter emits."),
	), s.getNoteFormat)

	// Resource: note format.
	s.mcp.AddResource(
		mcp.NewResource("voiceinbox://note-format", "Note Format",
			mcp.WithResourceDescription("Canonical transcription note format emitted by the converter."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readNoteFormatResource,
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

func (s *Server) convertTranscription(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	body := map[string]any{"text": text}
	if source, err := req.RequireString("source"); err == nil && source != "" {
		body["source"] = source
	}
	raw, _ := json.Marshal(body)

	res, err := s.svc.Convert(ctx, raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, _ := json.MarshalIndent(res, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getNoteFormat(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(NoteFormatContract), nil
}

func (s *Server) readNoteFormatResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "voiceinbox://note-format",
			MIMEType: "text/markdown",
			Text:     NoteFormatContract,
		},
	}, nil
}
