package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// shopsite-adapter operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "shopsite-adapter-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "shopsite-adapter-alerts",
					Rules: []Rule{
						{
							Alert: "ShopSiteAdapterDown",
							Expr:  `absent(up{job="shopsite-adapter"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "ShopSite adapter is down",
								"description": "The shopsite-adapter job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "ShopSiteAdapterHealthzDown",
							Expr:  `shopsite_healthz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "ShopSite adapter health check is failing",
								"description": "The health probe has been failing for more than 2 minutes.",
							},
						},
						{
							Alert: "ShopSiteAdapterHighErrorRate",
							Expr:  `shopsite:http_errors:rate5m / shopsite:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on the ShopSite adapter",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "ShopSiteUpstreamErrors",
							Expr:  `sum(shopsite:api_errors:rate5m) > 0`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "ShopSite API calls are failing",
								"description": "Signed calls to the store have been failing or returning malformed XML for 10 minutes.",
							},
						},
						{
							Alert: "ShopSiteAuthFailures",
							Expr:  `increase(shopsite_auth_attempts_total{result="failure"}[15m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "ShopSite authorization-code exchange failed",
								"description": "The store rejected the configured auth code. Issue a new code and update SHOPSITE_AUTH_CODE.",
							},
						},
						{
							Alert: "ShopSiteInventoryUpdateFailures",
							Expr:  `shopsite:inventory_failures:rate5m > 0`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Inventory updates are being rejected",
								"description": "ShopSite has rejected inventory writes for more than 5 minutes.",
							},
						},
						{
							Alert: "ShopSiteQuotaHigh",
							Expr:  `shopsite_api_daily_usage > 4000`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "ShopSite daily usage is above 80% of the limit",
								"description": "Signed calls in the rolling window have exceeded 4000 (limit is 5000).",
							},
						},
						{
							Alert: "ShopSiteLimitReached",
							Expr:  `increase(shopsite_api_daily_limit_hits_total[5m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "ShopSite daily limit has been reached",
								"description": "The local daily quota is exhausted. API calls return 429 until the window resets.",
							},
						},
					},
				},
			},
		},
	}
}
