package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// FloodRisk returns a timeseries panel showing the latest flood risk
// probability per station.
func FloodRisk() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Flood Risk Probability").
		Description("Latest computed flood risk probability per station").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`ctas_flood_risk_probability{job="ctas"}`,
			"{{station}}", "A",
		)).
		Unit("percentunit").
		Min(0).
		Max(1).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenYellowRed(0.4, 0.7)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// StationsReporting returns a timeseries panel showing the number of active
// stations that reported within the offline window.
func StationsReporting() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Stations Reporting").
		Description("Active stations that reported within the offline window").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`ctas_stations_reporting{job="ctas"}`, "stations", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
