// Package server exposes the OpenCitations lookups as MCP tools over stdio.
package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/ahmeshaf/opencitations/internal/opencitations"
)

// Name and Version identify the server to MCP hosts.
const (
	Name    = "opencitations"
	Version = "0.2.0"
)

// Server wires the OpenCitations client into an MCP stdio server.
type Server struct {
	client *opencitations.Client
	logger *zap.Logger
}

// New creates a Server around the given client. A nil logger disables
// logging.
func New(client *opencitations.Client, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{client: client, logger: logger}
}

// Run serves MCP over stdin/stdout until the context is cancelled or the
// host disconnects.
func (s *Server) Run(ctx context.Context) error {
	srv := mcp.NewServer(&mcp.Implementation{Name: Name, Version: Version}, nil)
	s.register(srv)

	s.logger.Info("starting MCP server on stdio",
		zap.String("name", Name),
		zap.String("version", Version),
		zap.Int("tools", len(toolSpecs)))

	return srv.Run(ctx, &mcp.StdioTransport{})
}
