// Package main implements a mock upstream API server for local development.
// It serves synthetic tide and weather data in the NOAA CO-OPS and
// OpenWeather wire formats so the collector can run without real API access.
//
// Point the collector at it with:
//
//	noaa.base_url:    http://localhost:8089/api/prod/datagetter
//	weather.base_url: http://localhost:8089/data/2.5
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"os"
	"time"
)

// Semidiurnal tide period on the US east coast.
const tidePeriod = 12*time.Hour + 25*time.Minute

type coopsPoint struct {
	Time    string `json:"t"`
	Value   string `json:"v"`
	Quality string `json:"q,omitempty"`
	Type    string `json:"type,omitempty"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/prod/datagetter", datagetterHandler(logger))
	mux.HandleFunc("GET /data/2.5/weather", weatherHandler(logger))
	mux.HandleFunc("GET /data/2.5/forecast", forecastHandler(logger))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock upstream server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

// coopsErrorBody mirrors the real CO-OPS API, which reports errors with
// HTTP 200 and an error object in the body.
func coopsErrorBody(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, map[string]any{
		"error": map[string]string{"message": message},
	})
}

func datagetterHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		station := q.Get("station")
		if station == "" {
			coopsErrorBody(w, "No station was specified. Station is a required field.")
			return
		}

		switch product := q.Get("product"); product {
		case "water_level":
			points := tideSeries(time.Now().UTC().Add(-6*time.Hour), 6*time.Hour, 6*time.Minute, false)
			writeJSON(w, http.StatusOK, map[string]any{"data": points})
			logger.Info("served water levels", "station", station, "points", len(points))
		case "predictions":
			points := tideSeries(time.Now().UTC(), 24*time.Hour, tidePeriod/2, true)
			writeJSON(w, http.StatusOK, map[string]any{"predictions": points})
			logger.Info("served predictions", "station", station, "points", len(points))
		default:
			coopsErrorBody(w, fmt.Sprintf("Unsupported product: %s", product))
		}
	}
}

// tideSeries generates a sinusoidal semidiurnal tide. Prediction series get
// H/L type markers instead of quality flags.
func tideSeries(start time.Time, window, step time.Duration, hilo bool) []coopsPoint {
	var points []coopsPoint
	for t := start; t.Before(start.Add(window)); t = t.Add(step) {
		phase := 2 * math.Pi * float64(t.Unix()) / tidePeriod.Seconds()
		level := 1.2 + 0.9*math.Sin(phase)

		p := coopsPoint{
			Time:  t.Format("2006-01-02 15:04"),
			Value: fmt.Sprintf("%.3f", level),
		}
		if hilo {
			if math.Sin(phase) >= 0 {
				p.Type = "H"
			} else {
				p.Type = "L"
			}
		} else {
			p.Quality = "v"
		}
		points = append(points, p)
	}
	return points
}

func weatherHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("appid") == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"cod":     401,
				"message": "Invalid API key.",
			})
			logger.Warn("weather request missing appid")
			return
		}

		writeJSON(w, http.StatusOK, weatherEntry(time.Now().UTC()))
		logger.Info("served current weather")
	}
}

func forecastHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("appid") == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"cod":     401,
				"message": "Invalid API key.",
			})
			return
		}

		now := time.Now().UTC()
		list := make([]map[string]any, 0, 8)
		for i := 1; i <= 8; i++ {
			list = append(list, weatherEntry(now.Add(time.Duration(i)*3*time.Hour)))
		}
		writeJSON(w, http.StatusOK, map[string]any{"list": list})
		logger.Info("served forecast", "entries", len(list))
	}
}

// weatherEntry generates one observation in the OpenWeather format with a
// slow pressure swing so storm surge paths get exercised.
func weatherEntry(t time.Time) map[string]any {
	phase := 2 * math.Pi * float64(t.Unix()) / (72 * time.Hour).Seconds()
	visibility := 10000.0

	return map[string]any{
		"dt": t.Unix(),
		"main": map[string]any{
			"temp":     18 + 5*math.Sin(phase),
			"humidity": 70.0,
			"pressure": 1008 + 14*math.Sin(phase),
		},
		"wind": map[string]any{
			// m/s, as OpenWeather reports in metric units.
			"speed": 6 + 8*math.Max(0, -math.Sin(phase)),
			"deg":   150.0,
		},
		"weather": []map[string]any{
			{"description": "scattered clouds"},
		},
		"rain":       map[string]any{"1h": math.Max(0, 2*-math.Sin(phase))},
		"visibility": visibility,
	}
}
