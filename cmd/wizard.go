package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/arcline/connect-mcp/internal/awsregistry"
	"github.com/arcline/connect-mcp/internal/config"
	"github.com/arcline/connect-mcp/internal/logger"
	"github.com/arcline/connect-mcp/internal/wizard"
)

var (
	wizardRegion  string
	wizardWebsite string
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Run the onboarding wizard without an MCP client",
}

var wizardStartCmd = &cobra.Command{
	Use:   "start <brand>",
	Short: "Create a run, optionally mine the brand website, and provision",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		region := wizardRegion
		if region == "" {
			region = cfg.AWS.Region
		}
		store := wizard.NewStore(cfg.Wizard.StateDir)
		state, err := store.LoadOrCreate(args[0], region)
		if err != nil {
			return err
		}

		if wizardWebsite != "" && state.Discovery == nil {
			httpClient := &http.Client{Timeout: 60 * time.Second}
			result, derr := wizard.NewDiscoverer(httpClient).Discover(cmd.Context(), wizardWebsite)
			if derr != nil {
				return derr
			}
			state.Discovery = result
			state.Phase = wizard.PhaseDiscovery
			if err := store.Save(state); err != nil {
				return err
			}
			logger.Info("discovered %s: industry=%s, %d FAQs", result.Brand, result.Industry, len(result.FAQs))
		}

		return runWizard(cmd, cfg, store, state)
	},
}

var wizardResumeCmd = &cobra.Command{
	Use:   "resume <brand>",
	Short: "Resume a run, retrying the failed step",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		store := wizard.NewStore(cfg.Wizard.StateDir)
		state, err := store.Load(args[0])
		if err != nil {
			return err
		}
		return runWizard(cmd, cfg, store, state)
	},
}

var wizardStatusCmd = &cobra.Command{
	Use:   "status [brand]",
	Short: "Show a run's state, or list runs",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		store := wizard.NewStore(cfg.Wizard.StateDir)

		if len(args) == 0 {
			brands, err := store.List()
			if err != nil {
				return err
			}
			for _, b := range brands {
				fmt.Println(b)
			}
			return nil
		}

		state, err := store.Load(args[0])
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(state)
	},
}

func runWizard(cmd *cobra.Command, cfg *config.Config, store *wizard.Store, state *wizard.RunState) error {
	registry := awsregistry.New(cfg.AWS.Region, cfg.AWS.Profile)
	steps := wizard.DefaultSteps(wizard.Deps{Registry: registry})
	runner := wizard.NewRunner(store, steps, cfg.Wizard.PollInterval(), cfg.Wizard.MaxPollAttempts)

	if err := runner.Run(cmd.Context(), state); err != nil {
		return fmt.Errorf("run stopped: %w (resume with: connect-mcp wizard resume %q)", err, state.Brand)
	}
	logger.Info("onboarding complete for %s (instance %s)", state.Brand, state.Resources[wizard.ResInstanceID])
	return nil
}

func init() {
	wizardStartCmd.Flags().StringVar(&wizardRegion, "region", "", "AWS region for the run (default from config)")
	wizardStartCmd.Flags().StringVar(&wizardWebsite, "website", "", "Brand website to mine for hours, industry and FAQs")

	wizardCmd.AddCommand(wizardStartCmd, wizardResumeCmd, wizardStatusCmd)
	rootCmd.AddCommand(wizardCmd)
}
