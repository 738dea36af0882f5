package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SnapshotsTaken = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "simpad_snapshots_total",
		Help: "Total number of live structures snapshotted, labelled by tab.",
	}, []string{"tab"})

	TreeNodes = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "simpad_tree_nodes",
		Help: "Number of nodes in the most recent reconstructed tree, labelled by tab.",
	}, []string{"tab"})

	NodesRemoved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "simpad_nodes_removed_total",
		Help: "Total number of entries removed from live structures, labelled by tab.",
	}, []string{"tab"})

	RendersSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "simpad_renders_skipped_total",
		Help: "Renders that pruned nothing, labelled by tab and reason.",
	}, []string{"tab", "reason"})

	SettingsSaved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "simpad_settings_saved_total",
		Help: "Total number of settings submissions stored, labelled by tab and scope kind.",
	}, []string{"tab", "scope"})

	RenderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "simpad_render_duration_ms",
		Help:    "Snapshot, reconstruct and prune latency in milliseconds.",
		Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 25, 50, 100},
	})
)
