package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chris/dashboard-wallpaper/pkg/capture"
)

func newAddTaskCommand(d *deps) *cobra.Command {
	var date string
	var assignee string

	cmd := &cobra.Command{
		Use:   "add-task <text...>",
		Short: "Add a task to the dashboard",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := capture.TaskRequest{Text: strings.Join(args, " "), Date: date, Assignee: assignee}
			return addTask(cmd, d, req)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "task date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&assignee, "assignee", "", "assignee (default $DEFAULT_ASSIGNEE on the server)")

	return cmd
}

func newOpenURLCommand(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "open-url <" + capture.Scheme + "://add-task?text=...>",
		Short: "Handle a " + capture.Scheme + ":// URL from the OS URL scheme registration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := capture.ParseURL(args[0])
			if err != nil {
				return err
			}
			return addTask(cmd, d, req)
		},
	}
}

func addTask(cmd *cobra.Command, d *deps, req capture.TaskRequest) error {
	if strings.TrimSpace(req.Text) == "" {
		return capture.ErrEmptyText
	}
	if req.Date != "" {
		if err := capture.ValidateDate(req.Date); err != nil {
			return err
		}
	}

	c, err := d.client()
	if err != nil {
		return err
	}
	task, err := c.AddTask(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("adding task: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added task %q for %s (%s)\n", task.Text, task.Date.String(), task.Id)
	return nil
}
