// ABOUTME: MCP server setup for fitness data.
// ABOUTME: Wraps the MCP server around the sync controller.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/fittrack/internal/sync"
)

// Server wraps the MCP server with controller access. All tools and
// resources go through the sync controller, so MCP sessions see the
// same snapshot-and-refetch behavior as the CLI.
type Server struct {
	mcpServer *mcp.Server
	ctrl      *sync.Controller
}

// NewServer creates a new MCP server over the given controller.
func NewServer(ctrl *sync.Controller) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fittrack",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		ctrl:      ctrl,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
