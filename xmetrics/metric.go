// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	CounterType   = "counter"
	GaugeType     = "gauge"
	HistogramType = "histogram"
)

// ErrMetricName is returned when a metric descriptor has no name.
var ErrMetricName = errors.New("a name is required for a metric")

// Module is a function type that returns prebuilt metrics.
type Module func() []Metric

// Metric describes a single metric that will be preregistered.  This type loosely
// corresponds with Prometheus' Opts struct.
type Metric struct {
	// Name is the required name of this metric.
	Name string

	// Type is the required type of metric.  This value must be one of the constants defined in this package.
	Type string

	// Namespace is optional.  The enclosing Options' Namespace is used if this is not supplied.
	Namespace string

	// Subsystem is optional.  The enclosing Options' Subsystem is used if this is not supplied.
	Subsystem string

	// Help is the help string for this metric.  If not supplied, the metric's name is used
	Help string

	// ConstLabels are the Prometheus ConstLabels for this metric.
	ConstLabels map[string]string

	// LabelNames are the Prometheus label names for this metric.
	LabelNames []string

	// Buckets describes the observation buckets for a histogram.  Ignored for other types.
	Buckets []float64
}

// NewCollector creates a Prometheus metric from a Metric descriptor.  The name must not be empty.
// If not supplied in the metric, namespace, subsystem, and help all take on defaults.
func NewCollector(m Metric) (prometheus.Collector, error) {
	if len(m.Name) == 0 {
		return nil, ErrMetricName
	}

	if len(m.Namespace) == 0 {
		m.Namespace = DefaultNamespace
	}

	if len(m.Subsystem) == 0 {
		m.Subsystem = DefaultSubsystem
	}

	if len(m.Help) == 0 {
		m.Help = m.Name
	}

	switch m.Type {
	case CounterType:
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   m.Namespace,
			Subsystem:   m.Subsystem,
			Name:        m.Name,
			Help:        m.Help,
			ConstLabels: prometheus.Labels(m.ConstLabels),
		}, m.LabelNames), nil

	case GaugeType:
		return prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   m.Namespace,
			Subsystem:   m.Subsystem,
			Name:        m.Name,
			Help:        m.Help,
			ConstLabels: prometheus.Labels(m.ConstLabels),
		}, m.LabelNames), nil

	case HistogramType:
		return prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   m.Namespace,
			Subsystem:   m.Subsystem,
			Name:        m.Name,
			Help:        m.Help,
			Buckets:     m.Buckets,
			ConstLabels: prometheus.Labels(m.ConstLabels),
		}, m.LabelNames), nil

	default:
		return nil, fmt.Errorf("unsupported metric type: %q", m.Type)
	}
}
