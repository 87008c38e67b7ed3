package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/coastalops/ctas/pkg/types"
)

func stationsCmd() *cobra.Command {
	stationsRoot := &cobra.Command{
		Use:   "stations",
		Short: "Manage monitoring stations",
		Long: "Manage the coastal monitoring stations the collector polls.\n" +
			"Stations carry a location and a set of measurement capabilities\n" +
			"(tide, waves, weather) that decide which upstream data is fetched.",
	}

	stationsRoot.AddCommand(
		stationsListCmd(),
		stationsGetCmd(),
		stationsCreateCmd(),
		stationsEnableCmd(),
		stationsDisableCmd(),
		stationsDeleteCmd(),
		stationsReadingsCmd(),
	)

	return stationsRoot
}

func stationsListCmd() *cobra.Command {
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stations",
		Example: `  ctas stations list
  ctas stations list --active --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			stations, err := c.ListStations(context.Background(), activeOnly)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(stations)
			}
			if len(stations) == 0 {
				fmt.Println("No stations found.")
				return nil
			}
			return printStationTable(stations)
		},
	}

	cmd.Flags().BoolVar(&activeOnly, "active", false, "only active stations")
	return cmd
}

func stationsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a station",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			st, err := c.GetStation(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(st)
			}
			return printStationDetail(st)
		},
	}
}

func stationsCreateCmd() *cobra.Command {
	var (
		code, name, stationType string
		lat, lon                float64
		tide, waves, weather    bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a station",
		Example: `  ctas stations create --code 8518750 --name "The Battery, NY" \
    --lat 40.7002 --lon -74.0142 --tide --weather`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			st, err := c.CreateStation(context.Background(), &domain.Station{
				Code:            code,
				Name:            name,
				Type:            domain.StationType(stationType),
				Latitude:        lat,
				Longitude:       lon,
				MeasuresTide:    tide,
				MeasuresWaves:   waves,
				MeasuresWeather: weather,
				Active:          true,
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(st)
			}
			fmt.Printf("Created station %s (%s).\n", st.ID, st.Code)
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "station code (required)")
	cmd.Flags().StringVar(&name, "name", "", "station name (required)")
	cmd.Flags().StringVar(&stationType, "type", string(domain.StationTideGauge), "station type")
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude")
	cmd.Flags().BoolVar(&tide, "tide", false, "station measures tide")
	cmd.Flags().BoolVar(&waves, "waves", false, "station measures waves")
	cmd.Flags().BoolVar(&weather, "weather", false, "station measures weather")
	cobra.CheckErr(cmd.MarkFlagRequired("code"))
	cobra.CheckErr(cmd.MarkFlagRequired("name"))

	return cmd
}

func stationsEnableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enable <id>",
		Short: "Enable a station",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.SetStationActive(context.Background(), args[0], true); err != nil {
				return err
			}
			fmt.Println("Station enabled.")
			return nil
		},
	}
}

func stationsDisableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disable <id>",
		Short: "Disable a station",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.SetStationActive(context.Background(), args[0], false); err != nil {
				return err
			}
			fmt.Println("Station disabled.")
			return nil
		},
	}
}

func stationsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a station and its readings",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.DeleteStation(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Station deleted.")
			return nil
		},
	}
}

func stationsReadingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "readings <id>",
		Short: "Show a station's latest readings",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			readings, err := c.GetStationReadings(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(readings)
			}
			return printStationReadings(readings)
		},
	}
}
