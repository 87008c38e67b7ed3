package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apiclient "github.com/coastalops/ctas/internal/api/client"
)

func alertsCmd() *cobra.Command {
	alertsRoot := &cobra.Command{
		Use:   "alerts",
		Short: "Query and manage alerts",
		Long: "Query active and historical alerts, optionally filtered by type,\n" +
			"severity, station, or distance from a point, and move them through\n" +
			"the acknowledge/resolve lifecycle.",
	}

	alertsRoot.AddCommand(
		alertsListCmd(),
		alertsGetCmd(),
		alertsActiveCmd(),
		alertsStatsCmd(),
		alertsAckCmd(),
		alertsResolveCmd(),
	)

	return alertsRoot
}

func alertsListCmd() *cobra.Command {
	var filter apiclient.AlertFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List alerts",
		Example: `  ctas alerts list --type storm --severity high
  ctas alerts list --lat 40.7 --lon -74.0 --radius 25
  ctas alerts list --active --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			list, err := c.ListAlerts(context.Background(), filter)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(list)
			}
			if len(list.Alerts) == 0 {
				fmt.Println("No alerts found.")
				return nil
			}
			return printAlertTable(list.Alerts)
		},
	}

	cmd.Flags().StringVar(&filter.Type, "type", "", "alert type (flood, tide, storm, wave, system)")
	cmd.Flags().StringVar(&filter.Severity, "severity", "", "minimum severity (low, medium, high, critical)")
	cmd.Flags().BoolVar(&filter.ActiveOnly, "active", false, "only active alerts")
	cmd.Flags().StringVar(&filter.Station, "station", "", "filter by source station ID")
	cmd.Flags().IntVar(&filter.SinceHours, "since", 0, "only alerts issued in the past N hours")
	cmd.Flags().Float64Var(&filter.Lat, "lat", 0, "latitude for radius search")
	cmd.Flags().Float64Var(&filter.Lon, "lon", 0, "longitude for radius search")
	cmd.Flags().Float64Var(&filter.RadiusKm, "radius", 0, "radius in km for radius search")
	cmd.Flags().IntVar(&filter.Limit, "limit", 0, "max results")

	return cmd
}

func alertsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show an alert with its notification summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			detail, err := c.GetAlert(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(detail)
			}
			return printAlertDetail(detail)
		},
	}
}

func alertsActiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "active",
		Short: "List active alerts",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			alerts, err := c.ListActiveAlerts(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(alerts)
			}
			if len(alerts) == 0 {
				fmt.Println("No active alerts.")
				return nil
			}
			items := make([]apiclient.AlertListItem, len(alerts))
			for i := range alerts {
				items[i] = apiclient.AlertListItem{Alert: alerts[i]}
			}
			return printAlertTable(items)
		},
	}
}

func alertsStatsCmd() *cobra.Command {
	var sinceHours int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show alert volume aggregates",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			stats, err := c.GetAlertStats(context.Background(), sinceHours)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(stats)
			}

			tw := newTabWriter(os.Stdout)
			tw.writef("Total:\t%d\n", stats.Total)
			tw.writef("Active:\t%d\n", stats.Active)
			for sev, count := range stats.BySeverity {
				tw.writef("Severity %s:\t%d\n", sev, count)
			}
			for typ, count := range stats.ByType {
				tw.writef("Type %s:\t%d\n", typ, count)
			}
			return tw.finish()
		},
	}

	cmd.Flags().IntVar(&sinceHours, "since", 24, "reporting window in hours")
	return cmd
}

func alertsAckCmd() *cobra.Command {
	var by string

	cmd := &cobra.Command{
		Use:   "ack <id>",
		Short: "Acknowledge an alert",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.AcknowledgeAlert(context.Background(), args[0], by); err != nil {
				return err
			}
			fmt.Println("Alert acknowledged.")
			return nil
		},
	}

	cmd.Flags().StringVar(&by, "by", "", "operator name (required)")
	cobra.CheckErr(cmd.MarkFlagRequired("by"))
	return cmd
}

func alertsResolveCmd() *cobra.Command {
	var by, notes string

	cmd := &cobra.Command{
		Use:   "resolve <id>",
		Short: "Resolve an alert",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.ResolveAlert(context.Background(), args[0], by, notes); err != nil {
				return err
			}
			fmt.Println("Alert resolved.")
			return nil
		},
	}

	cmd.Flags().StringVar(&by, "by", "", "operator name (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "resolution notes")
	cobra.CheckErr(cmd.MarkFlagRequired("by"))
	return cmd
}
