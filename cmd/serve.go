package cmd

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/arcline/connect-mcp/internal/awsregistry"
	"github.com/arcline/connect-mcp/internal/config"
	"github.com/arcline/connect-mcp/internal/logger"
	"github.com/arcline/connect-mcp/internal/tools"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve MCP on stdio or SSE",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	registry := awsregistry.New(cfg.AWS.Region, cfg.AWS.Profile)
	svc := tools.NewService(cfg, registry)
	srv := tools.NewServer(svc, tools.ServerVersion)

	switch cfg.Transport {
	case "sse":
		addr := fmt.Sprintf(":%d", cfg.Port)
		logger.Info("serving MCP over SSE on %s", addr)
		sse := server.NewSSEServer(srv)
		return sse.Start(addr)
	default:
		logger.Info("serving MCP on stdio (region %s)", cfg.AWS.Region)
		return server.ServeStdio(srv)
	}
}
