// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-kit/kit/metrics"
	gokitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/go-kit/kit/metrics/provider"
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the core abstraction for this package.  It is a Prometheus registry and a go-kit metrics.Provider all in one.
//
// For any metric that is already defined, the Provider methods return a go-kit wrapper for that metric, including
// its label names.  Metrics that were not preregistered are created ad hoc with no labels and cached.
type Registry interface {
	provider.Provider
	prometheus.Gatherer
	prometheus.Registerer
}

type registry struct {
	*prometheus.Registry

	namespace string
	subsystem string

	lock  sync.Mutex
	cache map[string]prometheus.Collector
}

// NewRegistry creates a Registry and preregisters every metric from the given modules and from the Options.
// Two modules may not define the same metric name.  A metric in the Options may replace a module's metric
// of the same name, as long as the types agree.
func NewRegistry(o *Options, modules ...Module) (Registry, error) {
	var (
		merged = make(map[string]Metric)
		order  []string
	)

	add := func(allowOverride bool, m Metric) error {
		if len(m.Name) == 0 {
			return ErrMetricName
		}

		if existing, ok := merged[m.Name]; ok {
			if !allowOverride {
				return fmt.Errorf("duplicate metric with name: %s", m.Name)
			}

			if existing.Type != m.Type {
				return fmt.Errorf("metric %s was expected to be of type %s, but was of type %s", m.Name, existing.Type, m.Type)
			}
		} else {
			order = append(order, m.Name)
		}

		merged[m.Name] = m
		return nil
	}

	for _, module := range modules {
		for _, m := range module() {
			if err := add(false, m); err != nil {
				return nil, err
			}
		}
	}

	for _, m := range o.Module() {
		if err := add(true, m); err != nil {
			return nil, err
		}
	}

	r := &registry{
		Registry:  o.registry(),
		namespace: o.namespace(),
		subsystem: o.subsystem(),
		cache:     make(map[string]prometheus.Collector, len(merged)),
	}

	for _, name := range order {
		m := merged[name]
		if len(m.Namespace) == 0 {
			m.Namespace = r.namespace
		}

		if len(m.Subsystem) == 0 {
			m.Subsystem = r.subsystem
		}

		c, err := NewCollector(m)
		if err != nil {
			return nil, err
		}

		if err := r.Registry.Register(c); err != nil {
			return nil, fmt.Errorf("error while preregistering metric %s: %w", name, err)
		}

		r.cache[name] = c
	}

	return r, nil
}

// adhoc returns the cached collector for name, creating and registering one with the given factory if necessary.
func (r *registry) adhoc(name string, factory func() prometheus.Collector) prometheus.Collector {
	r.lock.Lock()
	defer r.lock.Unlock()

	if existing, ok := r.cache[name]; ok {
		return existing
	}

	c := factory()
	if err := r.Registry.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			panic(err)
		}

		c = already.ExistingCollector
	}

	r.cache[name] = c
	return c
}

func (r *registry) NewCounter(name string) metrics.Counter {
	c := r.adhoc(name, func() prometheus.Collector {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: r.namespace,
			Subsystem: r.subsystem,
			Name:      name,
			Help:      name,
		}, []string{})
	})

	counterVec, ok := c.(*prometheus.CounterVec)
	if !ok {
		panic(fmt.Errorf("the metric %s is not a counter", name))
	}

	return gokitprometheus.NewCounter(counterVec)
}

func (r *registry) NewGauge(name string) metrics.Gauge {
	c := r.adhoc(name, func() prometheus.Collector {
		return prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: r.namespace,
			Subsystem: r.subsystem,
			Name:      name,
			Help:      name,
		}, []string{})
	})

	gaugeVec, ok := c.(*prometheus.GaugeVec)
	if !ok {
		panic(fmt.Errorf("the metric %s is not a gauge", name))
	}

	return gokitprometheus.NewGauge(gaugeVec)
}

// NewHistogram ignores the bucket count.  Preregistered histograms use their configured buckets, while
// ad hoc histograms use the Prometheus defaults.
func (r *registry) NewHistogram(name string, _ int) metrics.Histogram {
	c := r.adhoc(name, func() prometheus.Collector {
		return prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: r.namespace,
			Subsystem: r.subsystem,
			Name:      name,
			Help:      name,
			Buckets:   prometheus.DefBuckets,
		}, []string{})
	})

	histogramVec, ok := c.(*prometheus.HistogramVec)
	if !ok {
		panic(fmt.Errorf("the metric %s is not a histogram", name))
	}

	return gokitprometheus.NewHistogram(histogramVec)
}

func (r *registry) Stop() {
}
