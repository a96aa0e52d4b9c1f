package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chris/dashboard-wallpaper/pkg/relay"
)

func newForwardSMSCommand(d *deps) *cobra.Command {
	var queueURL string
	var sender string

	cmd := &cobra.Command{
		Use:   "forward-sms <message...>",
		Short: "Put an SMS on the relay queue for the server or the relay Lambda to ingest",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if queueURL == "" {
				cfg, err := d.loadCfg()
				if err != nil {
					return err
				}
				queueURL = cfg.SQSQueueURL
			}
			if queueURL == "" {
				return errors.New("no relay queue configured: pass --queue-url or set SQS_QUEUE_URL")
			}

			client, err := d.newSQSAPI(cmd.Context())
			if err != nil {
				return err
			}
			id, err := relay.NewForwarder(client, queueURL).Forward(cmd.Context(), strings.Join(args, " "), sender)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Queued message %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&queueURL, "queue-url", "", "SQS queue URL (default $SQS_QUEUE_URL)")
	cmd.Flags().StringVar(&sender, "sender", "", "SMS sender id, e.g. VM-HDFCBK")

	return cmd
}
