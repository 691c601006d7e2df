package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DiscoveryClusterSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "toposcope",
		Subsystem: "discovery",
		Name:      "cluster_size",
		Help:      "Number of instances in the current topology view",
	})

	DiscoveryIsLeader = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "toposcope",
		Subsystem: "discovery",
		Name:      "is_leader",
		Help:      "Whether the local instance leads its cluster view (1=leader)",
	})

	DiscoveryChangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "toposcope",
		Subsystem: "discovery",
		Name:      "changes_total",
		Help:      "Total topology change events fired",
	}, []string{"type"})

	DiscoveryInstancesJoined = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "toposcope",
		Subsystem: "discovery",
		Name:      "instances_joined_total",
		Help:      "Total instances observed joining the topology",
	})

	DiscoveryInstancesLeft = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "toposcope",
		Subsystem: "discovery",
		Name:      "instances_left_total",
		Help:      "Total instances observed leaving the topology",
	})

	DiscoveryPropertyChanges = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "toposcope",
		Subsystem: "discovery",
		Name:      "property_changes_total",
		Help:      "Total retained instances whose properties changed",
	})

	DiscoverySweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "toposcope",
		Subsystem: "discovery",
		Name:      "sweep_duration_seconds",
		Help:      "Time spent in one discovery sweep",
		Buckets:   prometheus.DefBuckets,
	})

	AnnouncesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "toposcope",
		Subsystem: "transport",
		Name:      "announces_sent_total",
		Help:      "Total announce calls sent to peers",
	}, []string{"outcome"})

	JournalAppendsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "toposcope",
		Subsystem: "journal",
		Name:      "appends_total",
		Help:      "Total change records appended to the journal",
	})

	JournalAppendErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "toposcope",
		Subsystem: "journal",
		Name:      "append_errors_total",
		Help:      "Total journal append failures",
	})

	GRPCRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "toposcope",
		Subsystem: "grpc",
		Name:      "requests_total",
		Help:      "Total gRPC requests served",
	}, []string{"service", "method", "code"})

	GRPCRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "toposcope",
		Subsystem: "grpc",
		Name:      "request_duration_seconds",
		Help:      "gRPC request latency",
		Buckets:   prometheus.DefBuckets,
	}, []string{"service", "method"})
)
