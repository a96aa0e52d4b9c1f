// Package commands implements dashctl, the command-line companion of the dashboard
// server. Commands that write data go through the running server.
package commands

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/spf13/cobra"

	"github.com/chris/dashboard-wallpaper/pkg/buildinfo"
	"github.com/chris/dashboard-wallpaper/pkg/client"
	"github.com/chris/dashboard-wallpaper/pkg/config"
	"github.com/chris/dashboard-wallpaper/pkg/relay"
)

// deps holds what commands need from the outside world.
type deps struct {
	server    string
	loadCfg   func() (*config.Config, error)
	newSQSAPI func(ctx context.Context) (relay.SQSAPI, error)
}

func (d *deps) client() (*client.Client, error) {
	if d.server != "" {
		return client.New(d.server), nil
	}
	cfg, err := d.loadCfg()
	if err != nil {
		return nil, err
	}
	return client.New(cfg.ServerURL), nil
}

func newSQSClient(ctx context.Context) (relay.SQSAPI, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return sqs.NewFromConfig(awsCfg), nil
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&deps{loadCfg: config.Load, newSQSAPI: newSQSClient})
}

func newRootCommand(d *deps) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "dashctl",
		Short:   "Capture tasks and transactions for the dashboard wallpaper",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&d.server, "server", "", "dashboard server URL (default $DASHBOARD_SERVER_URL)")

	rootCmd.AddCommand(newAddTaskCommand(d))
	rootCmd.AddCommand(newOpenURLCommand(d))
	rootCmd.AddCommand(newClassifyCommand())
	rootCmd.AddCommand(newTransactionsCommand(d))
	rootCmd.AddCommand(newImportCommand(d))
	rootCmd.AddCommand(newForwardSMSCommand(d))

	return rootCmd
}
