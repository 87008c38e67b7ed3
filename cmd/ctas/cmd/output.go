package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	apiclient "github.com/coastalops/ctas/internal/api/client"
	domain "github.com/coastalops/ctas/pkg/types"
)

const timeFormat = "2006-01-02 15:04:05"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printStationTable(stations []domain.Station) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tCODE\tNAME\tTYPE\tLAT\tLON\tACTIVE\n")
	for i := range stations {
		st := &stations[i]
		tw.writef("%s\t%s\t%s\t%s\t%.4f\t%.4f\t%v\n",
			st.ID,
			st.Code,
			truncate(st.Name, 30),
			st.Type,
			st.Latitude,
			st.Longitude,
			st.Active,
		)
	}
	return tw.finish()
}

func printStationDetail(st *domain.Station) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", st.ID)
	tw.writef("Code:\t%s\n", st.Code)
	tw.writef("Name:\t%s\n", st.Name)
	tw.writef("Type:\t%s\n", st.Type)
	tw.writef("Location:\t%.4f, %.4f\n", st.Latitude, st.Longitude)
	tw.writef("Measures:\ttide=%v waves=%v weather=%v\n",
		st.MeasuresTide, st.MeasuresWaves, st.MeasuresWeather)
	tw.writef("Active:\t%v\n", st.Active)
	return tw.finish()
}

func printAlertTable(alerts []apiclient.AlertListItem) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tTYPE\tSEVERITY\tTITLE\tISSUED\tACTIVE\tDIST\n")
	for i := range alerts {
		a := &alerts[i]
		dist := "-"
		if a.DistanceKm != nil {
			dist = fmt.Sprintf("%.1fkm", *a.DistanceKm)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%v\t%s\n",
			a.ID,
			a.Type,
			a.Severity,
			truncate(a.Title, 40),
			a.IssuedAt.Format(timeFormat),
			a.Active,
			dist,
		)
	}
	return tw.finish()
}

func printAlertDetail(d *apiclient.AlertDetail) error {
	a := &d.Alert
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", a.ID)
	tw.writef("Type:\t%s\n", a.Type)
	tw.writef("Severity:\t%s\n", a.Severity)
	tw.writef("Title:\t%s\n", a.Title)
	tw.writef("Description:\t%s\n", a.Description)
	tw.writef("Location:\t%s (%.4f, %.4f) r=%.0fkm\n",
		a.LocationName, a.Latitude, a.Longitude, a.RadiusKm)
	tw.writef("Issued:\t%s\n", a.IssuedAt.Format(timeFormat))
	if a.ExpiresAt != nil {
		tw.writef("Expires:\t%s\n", a.ExpiresAt.Format(timeFormat))
	}
	tw.writef("Active:\t%v\n", a.Active)
	if a.AcknowledgedAt != nil {
		tw.writef("Acknowledged:\t%s by %s\n",
			a.AcknowledgedAt.Format(timeFormat), a.AcknowledgedBy)
	}
	if a.ResolvedAt != nil {
		tw.writef("Resolved:\t%s by %s\n",
			a.ResolvedAt.Format(timeFormat), a.ResolvedBy)
	}
	for status, count := range d.Notifications {
		tw.writef("Notifications %s:\t%d\n", status, count)
	}
	return tw.finish()
}

func printSubscriptionTable(subs []domain.Subscription) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\tCONTACT\tRADIUS\tMIN SEV\tCHANNELS\tACTIVE\n")
	for i := range subs {
		s := &subs[i]
		contact := s.Email
		if contact == "" {
			contact = s.Phone
		}
		tw.writef("%s\t%s\t%s\t%.0fkm\t%s\t%v\t%v\n",
			s.ID,
			truncate(s.Name, 25),
			contact,
			s.RadiusKm,
			s.MinSeverity,
			s.Channels,
			s.Active,
		)
	}
	return tw.finish()
}

func printStationReadings(r *apiclient.StationReadings) error {
	tw := newTabWriter(os.Stdout)
	if r.Tide != nil {
		tw.writef("Tide:\t%.2fm at %s\n",
			r.Tide.WaterLevel, r.Tide.ObservedAt.Format(timeFormat))
	}
	if r.Weather != nil {
		tw.writef("Weather:\t%.1fC, wind %.0fkm/h, %.0fhPa at %s\n",
			r.Weather.TemperatureC,
			r.Weather.WindSpeedKmh,
			r.Weather.PressureHPa,
			r.Weather.ObservedAt.Format(timeFormat),
		)
	}
	if r.Wave != nil {
		tw.writef("Waves:\t%.2fm, period %.1fs at %s\n",
			r.Wave.HeightM, r.Wave.PeriodS, r.Wave.ObservedAt.Format(timeFormat))
	}
	if r.Tide == nil && r.Weather == nil && r.Wave == nil {
		tw.writef("No readings recorded.\n")
	}
	return tw.finish()
}

func printJobRunsTable(runs []domain.JobRun) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("JOB\tSTATUS\tSTARTED\tCOMPLETED\tROWS\tERROR\n")
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format(timeFormat)
		}
		rows := "-"
		if r.RowsAffected != nil {
			rows = fmt.Sprintf("%d", *r.RowsAffected)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			r.JobName,
			r.Status,
			r.StartedAt.Format(timeFormat),
			completed,
			rows,
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func printSystemState(s *domain.SystemState) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Stations:\t%d total, %d active, %d reporting\n",
		s.StationsTotal, s.StationsActive, s.StationsReporting)
	tw.writef("Alerts:\t%d active, %d unacknowledged\n",
		s.AlertsActive, s.AlertsUnacknowledged)
	tw.writef("Subscriptions:\t%d active\n", s.SubscriptionsActive)
	tw.writef("Notifications:\t%d pending, %d failed\n",
		s.NotificationsPending, s.NotificationsFailed)
	tw.writef("Readings:\t%d tide, %d weather\n",
		s.TideReadingsTotal, s.WeatherReadingsTotal)
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
