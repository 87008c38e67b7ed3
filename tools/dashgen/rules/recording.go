package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "ctas-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "ctas-recording",
					Rules: []Rule{
						{
							Record: "ctas:http_requests:rate5m",
							Expr:   `sum(rate(ctas_http_requests_total[5m]))`,
						},
						{
							Record: "ctas:http_errors:rate5m",
							Expr:   `sum(rate(ctas_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "ctas:collection_readings:rate5m",
							Expr:   `sum(rate(ctas_collection_readings_total[5m]))`,
						},
						{
							Record: "ctas:collection_errors:rate5m",
							Expr:   `sum(rate(ctas_collection_errors_total[5m]))`,
						},
						{
							Record: "ctas:noaa_api_calls:rate5m",
							Expr:   `rate(ctas_noaa_api_calls_total[5m])`,
						},
						{
							Record: "ctas:notification_failures:rate5m",
							Expr:   `sum(rate(ctas_notification_failures_total[5m]))`,
						},
					},
				},
			},
		},
	}
}
