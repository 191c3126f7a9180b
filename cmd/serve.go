package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/dashpanel/internal/panel"
	"github.com/mj1618/dashpanel/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing dashpanel tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes render, inspect,
stylesheet and shape as tools. Agents can preview layouts without shell
overhead.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  dashpanel serve
  dashpanel serve --transport streamable-http --port 8080
  dashpanel serve --cache-ttl 0`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Int("cache-ttl", 500, "Layout cache TTL in milliseconds (0 to disable)")
	serveCmd.Flags().String("rasterizer", "gg", "Default shape rasterizer: gg, rasterx")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	cacheTTLMs, _ := cmd.Flags().GetInt("cache-ttl")
	raster, err := getRasterizer(cmd)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Transport:  transport,
		Port:       port,
		CacheTTL:   time.Duration(cacheTTLMs) * time.Millisecond,
		Rasterizer: raster,
		Logger:     panel.Logger(),
	})
	return srv.Serve()
}
