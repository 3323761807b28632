// Package metrics instruments the product store with Prometheus collectors.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rogerio-castellano/inventory-form/internal/models"
	"github.com/rogerio-castellano/inventory-form/internal/repo"
)

// Outcome label values.
const (
	resultOK       = "ok"
	resultNotFound = "not_found"
	resultError    = "error"
)

// StoreCollectors groups the store collectors so they can be registered once
// and shared by every instrumented repository.
type StoreCollectors struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewStoreCollectors creates the collectors and registers them with reg.
func NewStoreCollectors(reg prometheus.Registerer) (*StoreCollectors, error) {
	c := &StoreCollectors{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inventory",
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Product store operations by operation and result.",
		}, []string{"op", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "inventory",
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Latency of product store operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
	}
	for _, col := range []prometheus.Collector{c.operations, c.duration} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// InstrumentedRepository records every call made to the wrapped repository.
type InstrumentedRepository struct {
	next repo.ProductRepository
	c    *StoreCollectors
}

var _ repo.ProductRepository = (*InstrumentedRepository)(nil)

func NewInstrumentedRepository(next repo.ProductRepository, c *StoreCollectors) *InstrumentedRepository {
	return &InstrumentedRepository{next: next, c: c}
}

func (r *InstrumentedRepository) observe(op string, start time.Time, err error) {
	result := resultOK
	switch {
	case errors.Is(err, repo.ErrProductNotFound):
		result = resultNotFound
	case err != nil:
		result = resultError
	}
	r.c.operations.WithLabelValues(op, result).Inc()
	r.c.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (r *InstrumentedRepository) Create(ctx context.Context, name string, quantity int) (models.Product, error) {
	start := time.Now()
	p, err := r.next.Create(ctx, name, quantity)
	r.observe("create", start, err)
	return p, err
}

func (r *InstrumentedRepository) Read(ctx context.Context, filter string) ([]models.Product, error) {
	start := time.Now()
	products, err := r.next.Read(ctx, filter)
	r.observe("read", start, err)
	return products, err
}

func (r *InstrumentedRepository) Update(ctx context.Context, id int, name string, quantity int) error {
	start := time.Now()
	err := r.next.Update(ctx, id, name, quantity)
	r.observe("update", start, err)
	return err
}

func (r *InstrumentedRepository) Remove(ctx context.Context, id int) error {
	start := time.Now()
	err := r.next.Remove(ctx, id)
	r.observe("remove", start, err)
	return err
}
