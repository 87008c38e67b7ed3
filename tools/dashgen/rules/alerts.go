package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// coastal threat alert system operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "ctas-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "ctas-alerts",
					Rules: []Rule{
						{
							Alert: "CtasDown",
							Expr:  `absent(up{job="ctas"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Coastal threat alert system is down",
								"description": "The ctas job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "CtasReadinessDown",
							Expr:  `ctas_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Coastal threat alert system readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "CtasHighErrorRate",
							Expr:  `ctas:http_errors:rate5m / ctas:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on the alert API",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "CtasCollectionErrors",
							Expr:  `ctas:collection_errors:rate5m > 0`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Collection errors detected",
								"description": "The data collection pipeline has been producing errors for more than 5 minutes.",
							},
						},
						{
							Alert: "CtasStationsSilent",
							Expr:  `ctas_stations_reporting == 0`,
							For:   "30m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "No stations are reporting data",
								"description": "Every active station has been silent for more than 30 minutes. Upstream APIs or the scheduler may be down.",
							},
						},
						{
							Alert: "CtasNoaaQuotaHigh",
							Expr:  `ctas_noaa_daily_usage > 4000`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "NOAA API daily usage is above 80% of the quota",
								"description": "Daily NOAA CO-OPS API usage has exceeded 4000 calls (limit is 5000).",
							},
						},
						{
							Alert: "CtasNoaaLimitReached",
							Expr:  `increase(ctas_noaa_daily_limit_hits_total[5m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "NOAA API daily limit has been reached",
								"description": "The NOAA CO-OPS daily quota has been exhausted. Collection is paused until the UTC day resets.",
							},
						},
						{
							Alert: "CtasNotificationFailures",
							Expr:  `increase(ctas_notification_failures_total[5m]) > 0`,
							For:   "1m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Notification delivery failures detected",
								"description": "One or more alert notifications (email, SMS, or push) have failed to send.",
							},
						},
					},
				},
			},
		},
	}
}
