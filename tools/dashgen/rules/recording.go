package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "shopsite-adapter-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "shopsite-adapter-recording",
					Rules: []Rule{
						{
							Record: "shopsite:http_requests:rate5m",
							Expr:   `sum(rate(shopsite_http_requests_total[5m]))`,
						},
						{
							Record: "shopsite:http_errors:rate5m",
							Expr:   `sum(rate(shopsite_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "shopsite:api_requests:rate5m",
							Expr:   `sum(rate(shopsite_api_requests_total[5m])) by (endpoint)`,
						},
						{
							Record: "shopsite:api_errors:rate5m",
							Expr:   `sum(rate(shopsite_api_requests_total{outcome!="ok"}[5m])) by (endpoint)`,
						},
						{
							Record: "shopsite:inventory_failures:rate5m",
							Expr:   `sum(rate(shopsite_inventory_updates_total{result="failure"}[5m]))`,
						},
					},
				},
			},
		},
	}
}
