package jnav

import "github.com/prometheus/client_golang/prometheus"

var (
	sentDesc = prometheus.NewDesc(
		"jnav_intents_sent_total",
		"Navigation intents accepted by the queue.",
		nil, nil,
	)
	droppedDesc = prometheus.NewDesc(
		"jnav_intents_dropped_total",
		"Navigation intents discarded because the queue was full.",
		nil, nil,
	)
	deliveredDesc = prometheus.NewDesc(
		"jnav_intents_delivered_total",
		"Navigation intents handed to a subscriber.",
		nil, nil,
	)
	codecFailuresDesc = prometheus.NewDesc(
		"jnav_codec_failures_total",
		"Params or result payloads that failed to encode or decode.",
		nil, nil,
	)
)

type collector struct {
	ch *Channel
}

// NewCollector exports the counters of ch and the codec failure count.
func NewCollector(ch *Channel) prometheus.Collector {
	return &collector{ch: ch}
}

func (c *collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- sentDesc
	descs <- droppedDesc
	descs <- deliveredDesc
	descs <- codecFailuresDesc
}

func (c *collector) Collect(metrics chan<- prometheus.Metric) {
	stats := c.ch.Stats()
	metrics <- prometheus.MustNewConstMetric(sentDesc, prometheus.CounterValue, float64(stats.Sent))
	metrics <- prometheus.MustNewConstMetric(droppedDesc, prometheus.CounterValue, float64(stats.Dropped))
	metrics <- prometheus.MustNewConstMetric(deliveredDesc, prometheus.CounterValue, float64(stats.Delivered))
	metrics <- prometheus.MustNewConstMetric(codecFailuresDesc, prometheus.CounterValue, float64(CodecFailures()))
}
