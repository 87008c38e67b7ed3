// Package hazard implements severity classification and the closed-form
// coastal models used for risk assessment and forecasting.
package hazard

import (
	domain "github.com/coastalops/ctas/pkg/types"
)

// Levels holds the severity breakpoints for one hazard type. A value is
// classified into the highest level whose breakpoint it reaches.
type Levels struct {
	Low      float64
	Medium   float64
	High     float64
	Critical float64
}

// Classify maps a measured value onto a severity. Values below the
// medium breakpoint are low; there is no "no alert" level here, callers
// decide separately whether a value warrants an alert at all.
func (l Levels) Classify(v float64) domain.Severity {
	switch {
	case v >= l.Critical:
		return domain.SeverityCritical
	case v >= l.High:
		return domain.SeverityHigh
	case v >= l.Medium:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

// Thresholds maps hazard types to their severity breakpoints.
type Thresholds map[domain.AlertType]Levels

// DefaultThresholds returns the operational severity breakpoints.
// Flood and storm values are dimensionless [0,1] scores; tide and wave
// values are meters.
func DefaultThresholds() Thresholds {
	return Thresholds{
		domain.AlertFlood: {Low: 0.2, Medium: 0.4, High: 0.7, Critical: 0.9},
		domain.AlertTide:  {Low: 2.0, Medium: 2.5, High: 3.0, Critical: 3.5},
		domain.AlertWave:  {Low: 2.0, Medium: 3.0, High: 4.0, Critical: 5.0},
		domain.AlertStorm: {Low: 0.3, Medium: 0.6, High: 0.8, Critical: 1.0},
	}
}

// Classify maps a value for the given hazard type onto a severity.
// Unknown types default to medium rather than silently under-alerting.
func (t Thresholds) Classify(typ domain.AlertType, v float64) domain.Severity {
	levels, ok := t[typ]
	if !ok {
		return domain.SeverityMedium
	}
	return levels.Classify(v)
}
