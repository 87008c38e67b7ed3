package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	domain "github.com/coastalops/ctas/pkg/types"
)

func subscriptionsCmd() *cobra.Command {
	subsRoot := &cobra.Command{
		Use:     "subs",
		Aliases: []string{"subscriptions"},
		Short:   "Manage alert subscriptions",
		Long: "Manage alert subscriptions. A subscription names a recipient, a\n" +
			"location of interest with a radius, and preferences for which alert\n" +
			"types and severities to deliver over which channels.",
	}

	subsRoot.AddCommand(
		subsListCmd(),
		subsCreateCmd(),
		subsDeleteCmd(),
		subsTestCmd(),
	)

	return subsRoot
}

func subsListCmd() *cobra.Command {
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscriptions",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			subs, err := c.ListSubscriptions(context.Background(), activeOnly)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(subs)
			}
			if len(subs) == 0 {
				fmt.Println("No subscriptions found.")
				return nil
			}
			return printSubscriptionTable(subs)
		},
	}

	cmd.Flags().BoolVar(&activeOnly, "active", false, "only active subscriptions")
	return cmd
}

func subsCreateCmd() *cobra.Command {
	var (
		name, email, phone    string
		lat, lon, radius      float64
		minSeverity, channels string
		alertTypes            string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a subscription",
		Example: `  ctas subs create --name "Harbor Master" --email hm@example.com \
    --lat 40.7 --lon -74.0 --radius 20 --min-severity medium --channels email`,
		RunE: func(_ *cobra.Command, _ []string) error {
			sub := &domain.Subscription{
				Name:        name,
				Email:       email,
				Phone:       phone,
				Latitude:    lat,
				Longitude:   lon,
				RadiusKm:    radius,
				MinSeverity: domain.Severity(minSeverity),
				Active:      true,
			}
			for _, ch := range strings.Split(channels, ",") {
				if ch = strings.TrimSpace(ch); ch != "" {
					sub.Channels = append(sub.Channels, domain.Channel(ch))
				}
			}
			for _, at := range strings.Split(alertTypes, ",") {
				if at = strings.TrimSpace(at); at != "" {
					sub.AlertTypes = append(sub.AlertTypes, domain.AlertType(at))
				}
			}

			c := newClient()
			created, err := c.CreateSubscription(context.Background(), sub)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(created)
			}
			fmt.Printf("Created subscription %s (%s).\n", created.ID, created.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "recipient name (required)")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number (E.164)")
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude of interest")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude of interest")
	cmd.Flags().Float64Var(&radius, "radius", 25, "radius of interest in km")
	cmd.Flags().StringVar(&minSeverity, "min-severity", "low", "minimum severity to deliver")
	cmd.Flags().StringVar(&channels, "channels", "email", "comma-separated channels (email, sms, push)")
	cmd.Flags().StringVar(&alertTypes, "types", "", "comma-separated alert types (default: all)")
	cobra.CheckErr(cmd.MarkFlagRequired("name"))

	return cmd
}

func subsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.DeleteSubscription(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Subscription deleted.")
			return nil
		},
	}
}

func subsTestCmd() *cobra.Command {
	var channel string

	cmd := &cobra.Command{
		Use:   "test <id>",
		Short: "Send a test notification",
		Args:  cobra.ExactArgs(1),
		Example: `  ctas subs test 4f7d3a... --channel email`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.TestSubscription(context.Background(), args[0], domain.Channel(channel)); err != nil {
				return err
			}
			fmt.Printf("Test notification sent via %s.\n", channel)
			return nil
		},
	}

	cmd.Flags().StringVar(&channel, "channel", "email", "channel to test")
	return cmd
}
