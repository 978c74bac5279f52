package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arcline/connect-mcp/internal/logger"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "connect-mcp",
	Short: "Amazon Connect MCP server",
	Long: `connect-mcp exposes Amazon Connect operations as MCP tools.

Modes:
  connect-mcp          Serve MCP on stdio (default)
  connect-mcp serve    Serve MCP on stdio or SSE per config
  connect-mcp wizard   Run the onboarding wizard from the command line`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: runServe,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logger.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info",
		"Log level: trace, debug, info, warn, error, fatal, panic")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
