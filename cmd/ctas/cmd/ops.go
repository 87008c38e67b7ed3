package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func collectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "collect",
		Short: "Trigger a collection cycle",
		Long: "Fetches readings for every active station, evaluates alert\n" +
			"conditions, and delivers due notifications, outside the schedule.",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			result, err := c.TriggerCollect(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("Collection completed: %d readings stored.\n", result.Readings)
			return nil
		},
	}
}

func checkCmd() *cobra.Command {
	var stationID string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Re-evaluate alert conditions",
		Long: "Evaluates stored readings against alert thresholds without a new\n" +
			"collection. Deduplication is bypassed, so anything that currently\n" +
			"triggers is re-raised.",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			result, err := c.TriggerCheck(context.Background(), stationID)
			if err != nil {
				return err
			}
			fmt.Printf("Check completed: %d stations evaluated.\n", result.Stations)
			return nil
		},
	}

	cmd.Flags().StringVar(&stationID, "station", "", "limit the check to one station ID")
	return cmd
}

func jobsCmd() *cobra.Command {
	jobsRoot := &cobra.Command{
		Use:   "jobs",
		Short: "View scheduler job history",
		Long: "View the execution history of scheduled jobs (collection,\n" +
			"retry_sweep, expiry). Each job records status, duration, and any\n" +
			"errors.",
	}

	jobsRoot.AddCommand(
		jobsListCmd(),
		jobsHistoryCmd(),
	)

	return jobsRoot
}

func jobsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List latest run per job",
		Example: `  ctas jobs list
  ctas jobs list --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			runs, err := c.ListJobs(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(runs)
			}
			if len(runs) == 0 {
				fmt.Println("No job runs found.")
				return nil
			}
			return printJobRunsTable(runs)
		},
	}
}

func jobsHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <job_name>",
		Short: "Show run history for a job",
		Args:  cobra.ExactArgs(1),
		Example: `  ctas jobs history collection
  ctas jobs history retry_sweep --output json`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			runs, err := c.GetJobHistory(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(runs)
			}
			if len(runs) == 0 {
				fmt.Printf("No runs found for job %q.\n", args[0])
				return nil
			}
			return printJobRunsTable(runs)
		},
	}
}

func stateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Show aggregate system state",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			state, err := c.GetSystemState(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(state)
			}
			return printSystemState(state)
		},
	}
}
