// Package catalog provides the product side of the combined endpoint.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/fairyhunter13/product-aggregator-simulator/internal/model"
)

// Price applied to every simulated product.
const Price = 49.99

// Service produces a product record for an id.
type Service interface {
	FetchProduct(ctx context.Context, id int) (model.Product, error)
}

// SimulatedService returns deterministic products after a fixed delay that
// stands in for a storage round trip.
type SimulatedService struct {
	delay time.Duration
}

// NewSimulated builds a SimulatedService with the given artificial latency.
func NewSimulated(delay time.Duration) *SimulatedService {
	return &SimulatedService{delay: delay}
}

// FetchProduct waits for the configured delay, then returns the product for
// id. It fails only when ctx ends during the wait.
func (s *SimulatedService) FetchProduct(ctx context.Context, id int) (model.Product, error) {
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return model.Product{}, ctx.Err()
	case <-t.C:
	}
	return model.Product{ID: id, Name: fmt.Sprintf("Product %d", id), Price: Price}, nil
}
