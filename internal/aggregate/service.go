// Package aggregate joins the catalog lookup and the remote todo fetch.
package aggregate

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fairyhunter13/product-aggregator-simulator/internal/catalog"
	"github.com/fairyhunter13/product-aggregator-simulator/internal/model"
	"github.com/fairyhunter13/product-aggregator-simulator/internal/remote"
)

// Message is part of the combined payload wire contract.
const Message = "This is an example of async/await that keeps the server responsive."

// UpstreamError wraps a failure from either concurrent branch.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string { return fmt.Sprintf("upstream: %v", e.Err) }

func (e *UpstreamError) Unwrap() error { return e.Err }

// Service composes the product and todo branches for one request.
type Service struct {
	catalog catalog.Service
	remote  remote.Fetcher
	logger  *zap.Logger
}

// New builds a Service around the given branches.
func New(c catalog.Service, r remote.Fetcher, logger *zap.Logger) *Service {
	return &Service{catalog: c, remote: r, logger: logger}
}

// Combine starts both branches before awaiting either, so the call costs the
// slower branch rather than the sum. The join is unconditional: a failing
// branch does not cancel its sibling, and the first error is reported only
// after both have returned. On any branch failure the result is zero; there
// is no partial response.
func (s *Service) Combine(ctx context.Context, id int) (model.CombinedResult, error) {
	var (
		product model.Product
		todo    model.Todo
	)
	g := errgroup.Group{}
	g.Go(func() error {
		var err error
		product, err = s.catalog.FetchProduct(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		todo, err = s.remote.FetchTodo(ctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Warn("combine_failed", zap.Int("id", id), zap.Error(err))
		return model.CombinedResult{}, &UpstreamError{Err: err}
	}
	return model.CombinedResult{Product: product, Todo: todo, Message: Message}, nil
}
