// Package server exposes the workspace operations as MCP tools.
//
// Every tool call is planned by a fresh placement.Engine, so offsets are
// recomputed per call rather than cached for the life of the server.
package server

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mj1618/workspace-output/internal/placement"
	"github.com/mj1618/workspace-output/internal/platform"
	"github.com/mj1618/workspace-output/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
}

// ConnectFunc opens a window-manager session.
type ConnectFunc func() (platform.Session, error)

// Server wraps the MCP server with a lazily opened window-manager session.
type Server struct {
	connect ConnectFunc
	opts    placement.Options
	logger  *log.Logger

	sessionMu sync.Mutex
	session   platform.Session

	mcp *mcpserver.MCPServer
}

// New creates a server with all tools registered.
func New(connect ConnectFunc, opts placement.Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		connect: connect,
		opts:    opts,
		logger:  logger,
	}
	s.mcp = mcpserver.NewMCPServer("workspace-output", version.Version)
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	s.logger.Info("starting MCP server", "transport", cfg.Transport, "port", cfg.Port)
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("list_outputs",
			mcp.WithDescription("List active outputs sorted by name with their workspace number offsets"),
		),
		s.handleListOutputs,
	)

	s.mcp.AddTool(
		mcp.NewTool("list_workspaces",
			mcp.WithDescription("List workspaces with their output, local number and output offset"),
			mcp.WithString("output", mcp.Description("Only list workspaces on this output")),
		),
		s.handleListWorkspaces,
	)

	s.mcp.AddTool(
		mcp.NewTool("switch_workspace",
			mcp.WithDescription("Switch to local workspace N on the focused output"),
			mcp.WithNumber("number", mcp.Description("Local workspace number"), mcp.Required()),
			mcp.WithBoolean("dry_run", mcp.Description("Return the commands without running them")),
		),
		s.handleSwitch,
	)

	s.mcp.AddTool(
		mcp.NewTool("move_container",
			mcp.WithDescription("Move the focused container to local workspace N on the focused output"),
			mcp.WithNumber("number", mcp.Description("Local workspace number"), mcp.Required()),
			mcp.WithBoolean("dry_run", mcp.Description("Return the commands without running them")),
		),
		s.handleMoveContainer,
	)

	s.mcp.AddTool(
		mcp.NewTool("move_workspace",
			mcp.WithDescription("Move the focused workspace to the neighbouring output, keeping its local number when free"),
			mcp.WithString("direction",
				mcp.Description("Direction: left, right, up, down"),
				mcp.Enum(placement.DirectionNames()...),
				mcp.Required(),
			),
			mcp.WithBoolean("dry_run", mcp.Description("Return the commands without running them")),
		),
		s.handleMoveWorkspace,
	)
}

// withEngine runs fn with a fresh engine while holding the session lock.
func (s *Server) withEngine(fn func(*placement.Engine) error) error {
	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	if s.session == nil {
		session, err := s.connect()
		if err != nil {
			return err
		}
		s.session = session
	}
	return fn(placement.New(s.session, s.opts))
}
