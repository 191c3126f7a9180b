// Package server exposes panel rendering as Model Context Protocol tools.
package server

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mj1618/dashpanel/internal/host/headless"
	"github.com/mj1618/dashpanel/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport  string
	Port       int
	CacheTTL   time.Duration
	Rasterizer headless.Rasterizer
	Logger     *slog.Logger
}

// Server wraps the MCP server with the layout cache.
type Server struct {
	cfg   Config
	cache *LayoutCache
	mcp   *mcpserver.MCPServer
}

// New creates and configures an MCP server with all dashpanel tools.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Rasterizer == "" {
		cfg.Rasterizer = headless.RasterGG
	}
	s := &Server{
		cfg:   cfg,
		cache: NewLayoutCache(cfg.CacheTTL),
	}
	s.mcp = mcpserver.NewMCPServer("dashpanel", version.Version)
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve() error {
	switch s.cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", s.cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", s.cfg.Transport)
	}
}

// layoutArgs are the options shared by every tool that takes a document.
func layoutArgs() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("path", mcp.Description("Path to a layout file (.json, .yaml, .toml)")),
		mcp.WithString("layout", mcp.Description("Inline layout document, used when path is empty")),
		mcp.WithString("layout-format", mcp.Description("Format of the inline layout: json, yaml, toml (default json)")),
	}
}

func (s *Server) registerTools() {
	// render
	s.mcp.AddTool(
		mcp.NewTool("render", append([]mcp.ToolOption{
			mcp.WithDescription("Render a dashboard layout offscreen and return it as an image"),
			mcp.WithString("rasterizer", mcp.Description("Shape rasterizer: gg or rasterx")),
			mcp.WithNumber("scale", mcp.Description("Scale factor for the returned image (default 1)")),
			mcp.WithString("format", mcp.Description("Image format: png, jpg")),
			mcp.WithNumber("quality", mcp.Description("JPEG quality 1-100")),
			mcp.WithString("annotate", mcp.Description("Draw element boxes labelled with: none, coords, ids")),
			mcp.WithNumber("width", mcp.Description("Override the window width")),
			mcp.WithNumber("height", mcp.Description("Override the window height")),
			mcp.WithString("type", mcp.Description("Only render these comma-separated element types; 'shape' and 'control' expand to their kinds")),
			mcp.WithString("id", mcp.Description("Only render elements with these comma-separated ids")),
		}, layoutArgs()...)...),
		s.handleRender,
	)

	// inspect
	s.mcp.AddTool(
		mcp.NewTool("inspect", append([]mcp.ToolOption{
			mcp.WithDescription("Assemble a layout and report placed elements, skipped elements, duplicate ids and style rule count"),
			mcp.WithString("type", mcp.Description("Comma-separated element types; 'shape' and 'control' expand to their kinds")),
			mcp.WithString("bbox", mcp.Description("Only elements intersecting x,y,w,h")),
			mcp.WithString("output", mcp.Description("Report encoding: yaml or json")),
		}, layoutArgs()...)...),
		s.handleInspect,
	)

	// stylesheet
	s.mcp.AddTool(
		mcp.NewTool("stylesheet", append([]mcp.ToolOption{
			mcp.WithDescription("Return the stylesheet generated for a layout's window and element styles"),
		}, layoutArgs()...)...),
		s.handleStylesheet,
	)

	// shape
	s.mcp.AddTool(
		mcp.NewTool("shape",
			mcp.WithDescription("Draw a single shape (Line, Rect, Ellipse, Triangle, Diamond, Arrow, Star) and return it as an image or a drawing op list"),
			mcp.WithString("type", mcp.Description("Shape type"), mcp.Required()),
			mcp.WithNumber("width", mcp.Description("Canvas width (default 100)")),
			mcp.WithNumber("height", mcp.Description("Canvas height (default 100)")),
			mcp.WithObject("props", mcp.Description("Shape properties such as fill_color, stroke_color, stroke_width, border_radius, direction, points")),
			mcp.WithBoolean("ops", mcp.Description("Return the recorded drawing ops instead of an image")),
			mcp.WithString("rasterizer", mcp.Description("Shape rasterizer: gg or rasterx")),
		),
		s.handleShape,
	)
}
