package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chris/dashboard-wallpaper/pkg/api"
	"github.com/chris/dashboard-wallpaper/pkg/classifier"
	"github.com/chris/dashboard-wallpaper/pkg/mapping"
	"github.com/chris/dashboard-wallpaper/pkg/models"
)

func newClassifyCommand() *cobra.Command {
	var rulesFile string

	cmd := &cobra.Command{
		Use:   "classify <message...>",
		Short: "Classify a message locally and print the result without storing it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := classifier.Default()
			if rulesFile != "" {
				rules, err := classifier.LoadRules(rulesFile)
				if err != nil {
					return err
				}
				if c, err = classifier.New(rules); err != nil {
					return err
				}
			}

			res, ok := c.Classify(strings.Join(args, " "))
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "not a transaction")
				return nil
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(mapping.ToApiTransaction(mapping.ToTransactionRecord(res, models.SourceManual, "")))
		},
	}

	cmd.Flags().StringVar(&rulesFile, "rules", "", "YAML rule file overriding the built-in tables")

	return cmd
}

func newTransactionsCommand(d *deps) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List the most recent transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := d.client()
			if err != nil {
				return err
			}
			txs, err := c.ListTransactions(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("listing transactions: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tTYPE\tAMOUNT\tBANK\tMODE\tDESCRIPTION\tREAD")
			for _, tx := range txs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%t\n",
					tx.Timestamp.Local().Format("2006-01-02 15:04"), tx.Type, tx.Amount, tx.Bank, tx.Mode, tx.Description, tx.Read)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "number of transactions to show (server default 5)")

	return cmd
}

func newImportCommand(d *deps) *cobra.Command {
	var originID string
	var source string

	cmd := &cobra.Command{
		Use:   "import <message...>",
		Short: "Send a bank notification to the server for classification and storage",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !models.Source(source).Valid() {
				return fmt.Errorf("unknown source %q", source)
			}

			c, err := d.client()
			if err != nil {
				return err
			}
			in := api.ImportTransaction{Message: strings.Join(args, " "), Source: &source}
			if originID != "" {
				in.OriginId = &originID
			}
			resp, err := c.ImportTransaction(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("importing transaction: %w", err)
			}

			out := cmd.OutOrStdout()
			switch {
			case resp.Duplicate != nil && *resp.Duplicate:
				fmt.Fprintln(out, "already imported")
			case resp.Ignored != nil && *resp.Ignored:
				fmt.Fprintln(out, "not a transaction")
			case resp.Transaction != nil:
				tx := resp.Transaction
				fmt.Fprintf(out, "Recorded %s %s via %s (%s, confidence %s)\n", tx.Type, tx.Amount, tx.Mode, tx.Description, tx.Confidence)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&originID, "origin-id", "", "message id used to skip duplicates")
	cmd.Flags().StringVar(&source, "source", string(models.SourceManual), "inbound channel (voice, email, sms-relay, manual, api)")

	return cmd
}
