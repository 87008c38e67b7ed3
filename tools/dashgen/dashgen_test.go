package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/coastalops/ctas/tools/dashgen/dashboards"
	"github.com/coastalops/ctas/tools/dashgen/rules"
	"github.com/coastalops/ctas/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	builder := dashboards.BuildOverview()
	dash, err := builder.Build()
	require.NoError(t, err)

	// Verify dashboard metadata.
	require.NotNil(t, dash.Uid)
	assert.Equal(t, "ctas-overview", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "CTAS Overview", *dash.Title)

	// Verify template variable.
	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	// Verify we have 7 rows.
	assert.Len(t, dash.Panels, 7)

	// Count total inner panels.
	totalPanels := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			totalPanels += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 19, totalPanels)

	// Validate PromQL and metrics.
	result := validate.Dashboard(dash, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestValidateRejectsUnknownMetric(t *testing.T) {
	t.Parallel()

	result := validate.Rules(map[string]string{
		"bad": `rate(ctas_nonexistent_total[5m])`,
	}, KnownMetrics)
	assert.False(t, result.Ok())
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "ctas_nonexistent_total")
}

func TestValidateRejectsBadPromQL(t *testing.T) {
	t.Parallel()

	result := validate.Rules(map[string]string{
		"broken": `rate(ctas_http_requests_total[5m`,
	}, KnownMetrics)
	assert.False(t, result.Ok())
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "ctas-recording-rules", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "ctas-recording", group.Name)
	require.Len(t, group.Rules, 6)

	expectedRecords := []string{
		"ctas:http_requests:rate5m",
		"ctas:http_errors:rate5m",
		"ctas:collection_readings:rate5m",
		"ctas:collection_errors:rate5m",
		"ctas:noaa_api_calls:rate5m",
		"ctas:notification_failures:rate5m",
	}
	for i, rule := range group.Rules {
		assert.Equal(t, expectedRecords[i], rule.Record)
		assert.NotEmpty(t, rule.Expr)
	}

	// Verify YAML marshaling works.
	data, err := yaml.Marshal(cr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: monitoring.coreos.com/v1")
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "ctas-alerts", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "ctas-alerts", group.Name)
	require.Len(t, group.Rules, 8)

	expectedAlerts := []string{
		"CtasDown",
		"CtasReadinessDown",
		"CtasHighErrorRate",
		"CtasCollectionErrors",
		"CtasStationsSilent",
		"CtasNoaaQuotaHigh",
		"CtasNoaaLimitReached",
		"CtasNotificationFailures",
	}
	for i, rule := range group.Rules {
		assert.Equal(t, expectedAlerts[i], rule.Alert)
		assert.NotEmpty(t, rule.Expr)
		assert.NotEmpty(t, rule.Labels["severity"], "alert %s missing severity", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], "alert %s missing summary", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}
}

func TestRuleExpressionsValidate(t *testing.T) {
	t.Parallel()

	exprs := map[string]string{}
	for _, cr := range []rules.PrometheusRule{rules.RecordingRules(), rules.AlertRules()} {
		for _, group := range cr.Spec.Groups {
			for _, rule := range group.Rules {
				name := rule.Record
				if name == "" {
					name = rule.Alert
				}
				exprs[name] = rule.Expr
			}
		}
	}

	result := validate.Rules(exprs, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
}
