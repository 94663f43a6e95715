// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SitesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sites_generated_total",
			Help: "Total number of site file maps generated, by target",
		},
		[]string{"target"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "site_generation_duration_seconds",
			Help: "Duration of site generation in seconds",
		},
		[]string{"target"},
	)

	DeploysTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deploys_total",
			Help: "Total number of deployment attempts, by outcome",
		},
		[]string{"outcome"},
	)

	DeployFileUploads = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "deploy_file_uploads_total",
			Help: "Total number of files uploaded to the hosting API",
		},
	)

	MarketingCopyRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketing_copy_requests_total",
			Help: "Total number of ad copy generations, by platform",
		},
		[]string{"platform"},
	)
)
