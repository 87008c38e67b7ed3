package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/coastalops/ctas/internal/api/handlers"
	"github.com/coastalops/ctas/internal/api/middleware"
	"github.com/coastalops/ctas/internal/config"
	"github.com/coastalops/ctas/internal/engine"
	"github.com/coastalops/ctas/internal/noaa"
	"github.com/coastalops/ctas/internal/notify"
	"github.com/coastalops/ctas/internal/store"
	"github.com/coastalops/ctas/internal/telemetry"
	"github.com/coastalops/ctas/internal/weather"
	"github.com/coastalops/ctas/pkg/hazard"
	"github.com/coastalops/ctas/pkg/logger"
	domain "github.com/coastalops/ctas/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Tracing.Enabled {
		provider, err := telemetry.Setup(ctx, cfg.Tracing.Endpoint, cfg.Tracing.Service)
		if err != nil {
			return fmt.Errorf("setting up telemetry: %w", err)
		}
		defer func() {
			if err := provider.Shutdown(context.Background()); err != nil {
				log.Error("telemetry shutdown failed", "error", err)
			}
		}()
	}

	s, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer s.Close()

	tides := noaa.NewCOOPSClient(
		noaa.WithBaseURL(cfg.NOAA.BaseURL),
		noaa.WithHTTPClient(&http.Client{Timeout: cfg.NOAA.Timeout}),
		noaa.WithQuotaLimiter(noaa.NewQuotaLimiter(
			cfg.NOAA.RateLimit.PerSecond,
			cfg.NOAA.RateLimit.Burst,
			cfg.NOAA.RateLimit.DailyLimit,
		)),
	)

	wx := weather.NewOpenWeatherClient(
		cfg.Weather.APIKey,
		weather.WithBaseURL(cfg.Weather.BaseURL),
		weather.WithHTTPClient(&http.Client{Timeout: cfg.Weather.Timeout}),
	)

	notifiers := buildNotifiers(cfg, log)

	eng := engine.NewEngine(s, tides, wx, notifiers,
		engine.WithLogger(log),
		engine.WithStaggerOffset(cfg.Schedule.StaggerOffset),
		engine.WithDedupWindow(cfg.Alerts.DedupWindow),
		engine.WithOfflineCheck(cfg.Alerts.OfflineWindow, cfg.Alerts.OfflineFraction),
		engine.WithNotificationPolicy(
			cfg.Notifications.MaxAttempts,
			cfg.Notifications.Concurrency,
			cfg.Notifications.Backoff,
		),
	)

	sch, err := engine.NewScheduler(eng, s,
		cfg.Schedule.CollectionInterval,
		cfg.Schedule.RetryInterval,
		cfg.Schedule.ExpiryInterval,
		log,
	)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	if err := sch.Start(ctx); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}

	e := newRouter(s, eng, tides, wx, notifiers, log)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	<-sch.Stop().Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// newRouter assembles the echo instance: middleware, probe endpoints, the
// echo-native station routes, and the Huma-registered API surface.
func newRouter(
	s store.Store,
	eng *engine.Engine,
	tides noaa.Client,
	wx weather.Client,
	notifiers []notify.Notifier,
	log *slog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Recovery(log))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(s)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handlers.RegisterStationRoutes(e, handlers.NewStationsHandler(s))

	humaConfig := huma.DefaultConfig("Coastal Threat Alert System API", Version)
	api := humaecho.New(e, humaConfig)

	handlers.RegisterAlertRoutes(api, handlers.NewAlertsHandler(s))
	handlers.RegisterSubscriptionRoutes(api, handlers.NewSubscriptionsHandler(s, notifiers))
	handlers.RegisterForecastRoutes(api, handlers.NewForecastsHandler(s, hazard.NewForecaster(),
		handlers.WithTideClient(tides),
		handlers.WithWeatherClient(wx),
	))
	handlers.RegisterOpsRoutes(api, handlers.NewOpsHandler(s, eng, eng))

	return e
}

// buildNotifiers constructs one notifier per configured channel. Disabled
// channels are left out entirely: dispatch skips them at enqueue time and
// the subscription test endpoint rejects them as unconfigured.
func buildNotifiers(cfg *config.Config, log *slog.Logger) []notify.Notifier {
	var notifiers []notify.Notifier

	if email := cfg.Notifications.Email; email.Enabled {
		notifiers = append(notifiers, notify.NewEmailNotifier(
			email.Host, email.Port, email.Username, email.Password, email.From,
		))
	} else {
		log.Info("notification channel disabled", "channel", domain.ChannelEmail)
	}

	if sms := cfg.Notifications.SMS; sms.Enabled {
		var opts []notify.SMSOption
		if sms.BaseURL != "" {
			opts = append(opts, notify.WithTwilioBaseURL(sms.BaseURL))
		}
		notifiers = append(notifiers, notify.NewSMSNotifier(
			sms.AccountSID, sms.AuthToken, sms.From, opts...,
		))
	} else {
		log.Info("notification channel disabled", "channel", domain.ChannelSMS)
	}

	if push := cfg.Notifications.Push; push.Enabled {
		var opts []notify.PushOption
		if push.Endpoint != "" {
			opts = append(opts, notify.WithPushEndpoint(push.Endpoint))
		}
		notifiers = append(notifiers, notify.NewPushNotifier(push.ServerKey, opts...))
	} else {
		log.Info("notification channel disabled", "channel", domain.ChannelPush)
	}

	return notifiers
}
