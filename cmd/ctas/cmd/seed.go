package cmd

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/coastalops/ctas/internal/config"
	"github.com/coastalops/ctas/internal/store"
	"github.com/coastalops/ctas/pkg/hazard"
	"github.com/coastalops/ctas/pkg/logger"
	domain "github.com/coastalops/ctas/pkg/types"
)

// defaultSeedStations are NOAA CO-OPS stations around New York Harbor,
// a dense stretch of coast that exercises geo-targeted dispatch.
var defaultSeedStations = []domain.Station{
	{Code: "8518750", Name: "The Battery, NY", Type: domain.StationMultiSensor, Latitude: 40.7002, Longitude: -74.0142, MeasuresTide: true, MeasuresWaves: true, MeasuresWeather: true, Active: true},
	{Code: "8531680", Name: "Sandy Hook, NJ", Type: domain.StationMultiSensor, Latitude: 40.4669, Longitude: -74.0094, MeasuresTide: true, MeasuresWaves: true, MeasuresWeather: true, Active: true},
	{Code: "8516945", Name: "Kings Point, NY", Type: domain.StationTideGauge, Latitude: 40.8103, Longitude: -73.7649, MeasuresTide: true, MeasuresWeather: true, Active: true},
	{Code: "8519483", Name: "Bergen Point, NY", Type: domain.StationTideGauge, Latitude: 40.6367, Longitude: -74.1417, MeasuresTide: true, Active: true},
}

func seedCmd() *cobra.Command {
	var hours int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed stations and simulated readings",
		Long: "Registers a default set of monitoring stations and backfills\n" +
			"simulated tide, weather, and wave readings so the system can be\n" +
			"exercised without upstream API credentials.",
		Example: `  ctas seed
  ctas seed --hours 72`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSeed(hours)
		},
	}

	cmd.Flags().IntVar(&hours, "hours", 48, "hours of readings to backfill")
	return cmd
}

func init() {
	rootCmd.AddCommand(seedCmd())
}

func runSeed(hours int) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	s, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer s.Close()

	forecaster := hazard.NewForecaster()
	now := time.Now().UTC().Truncate(time.Hour)
	total := 0

	for i := range defaultSeedStations {
		st := defaultSeedStations[i]

		if existing, err := s.GetStationByCode(ctx, st.Code); err == nil {
			st = *existing
			log.Info("station exists", "code", st.Code)
		} else {
			if err := s.CreateStation(ctx, &st); err != nil {
				return fmt.Errorf("creating station %s: %w", st.Code, err)
			}
			log.Info("created station", "code", st.Code, "name", st.Name)
		}

		n, err := backfillStation(ctx, s, forecaster, &st, now, hours)
		if err != nil {
			return fmt.Errorf("backfilling station %s: %w", st.Code, err)
		}
		total += n

		if err := s.TouchStationData(ctx, st.ID, now); err != nil {
			return fmt.Errorf("touching station %s: %w", st.Code, err)
		}
	}

	log.Info("seed complete", "stations", len(defaultSeedStations), "readings", total)
	return nil
}

// backfillStation writes one simulated reading per hour per capability.
// Tide follows the harmonic model; weather follows a slow pressure swing
// with correlated wind, which occasionally crosses alert thresholds.
func backfillStation(
	ctx context.Context,
	s store.Store,
	forecaster *hazard.Forecaster,
	st *domain.Station,
	now time.Time,
	hours int,
) (int, error) {
	count := 0

	for h := hours; h >= 0; h-- {
		at := now.Add(-time.Duration(h) * time.Hour)

		// Pressure swings over roughly three days; wind picks up as
		// pressure falls.
		phase := 2 * math.Pi * float64(at.Unix()) / (72 * 3600)
		pressure := 1008 + 18*math.Sin(phase)
		wind := 20 + 35*math.Max(0, -math.Sin(phase))

		if st.MeasuresTide {
			predicted := forecaster.TideLevel(st.Code, at)
			surge := forecaster.StormSurge(wind, pressure, 0, float64(at.Hour()))
			r := &domain.TideReading{
				StationID:      st.ID,
				ObservedAt:     at,
				WaterLevel:     predicted + surge,
				PredictedLevel: &predicted,
				Quality:        "v",
				Source:         "seed",
			}
			if err := s.InsertTideReading(ctx, r); err != nil {
				return count, err
			}
			count++
		}

		if st.MeasuresWeather {
			r := &domain.WeatherReading{
				StationID:     st.ID,
				ObservedAt:    at,
				TemperatureC:  18 + 6*math.Sin(2*math.Pi*float64(at.Hour())/24),
				HumidityPct:   70,
				PressureHPa:   pressure,
				WindSpeedKmh:  wind,
				WindDirection: math.Mod(180+40*math.Sin(phase), 360),
				Precipitation: math.Max(0, 8*-math.Sin(phase)),
				Source:        "seed",
			}
			if err := s.InsertWeatherReading(ctx, r); err != nil {
				return count, err
			}
			count++
		}

		if st.MeasuresWaves {
			height := forecaster.WaveHeight(wind)
			r := &domain.WaveReading{
				StationID:    st.ID,
				ObservedAt:   at,
				HeightM:      height,
				PeriodS:      hazard.WavePeriod(height),
				DirectionDeg: 150,
				Source:       "seed",
			}
			if err := s.InsertWaveReading(ctx, r); err != nil {
				return count, err
			}
			count++
		}
	}

	return count, nil
}
