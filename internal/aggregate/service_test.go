package aggregate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fairyhunter13/product-aggregator-simulator/internal/catalog"
	"github.com/fairyhunter13/product-aggregator-simulator/internal/model"
)

type fakeCatalog struct {
	delay time.Duration
	err   error
}

func (f *fakeCatalog) FetchProduct(ctx context.Context, id int) (model.Product, error) {
	t := time.NewTimer(f.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return model.Product{}, ctx.Err()
	case <-t.C:
	}
	if f.err != nil {
		return model.Product{}, f.err
	}
	return model.Product{ID: id, Name: fmt.Sprintf("Product %d", id), Price: catalog.Price}, nil
}

type fakeFetcher struct {
	delay time.Duration
	todo  model.Todo
	err   error
}

func (f *fakeFetcher) FetchTodo(ctx context.Context, id int) (model.Todo, error) {
	t := time.NewTimer(f.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return model.Todo{}, ctx.Err()
	case <-t.C:
	}
	if f.err != nil {
		return model.Todo{}, f.err
	}
	todo := f.todo
	todo.ID = id
	return todo, nil
}

func TestCombineOverlapsBranches(t *testing.T) {
	catalogDelay := 150 * time.Millisecond
	remoteDelay := 90 * time.Millisecond
	svc := New(
		&fakeCatalog{delay: catalogDelay},
		&fakeFetcher{delay: remoteDelay},
		zap.NewNop(),
	)

	start := time.Now()
	_, err := svc.Combine(context.Background(), 1)
	elapsed := time.Since(start)
	require.NoError(t, err)

	// Sequential execution would cost at least the sum of both delays.
	assert.GreaterOrEqual(t, elapsed, catalogDelay)
	assert.Less(t, elapsed, catalogDelay+remoteDelay)
}

func TestCombineComposesResult(t *testing.T) {
	svc := New(
		&fakeCatalog{delay: time.Millisecond},
		&fakeFetcher{delay: time.Millisecond, todo: model.Todo{UserID: 1, Title: "delectus aut autem"}},
		zap.NewNop(),
	)
	res, err := svc.Combine(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, model.CombinedResult{
		Product: model.Product{ID: 1, Name: "Product 1", Price: 49.99},
		Todo:    model.Todo{ID: 1, UserID: 1, Title: "delectus aut autem", Completed: false},
		Message: Message,
	}, res)
}

func TestCombineRemoteFailureNoPartialResult(t *testing.T) {
	catalogDelay := 100 * time.Millisecond
	remoteErr := errors.New("connection refused")
	svc := New(
		&fakeCatalog{delay: catalogDelay},
		&fakeFetcher{err: remoteErr},
		zap.NewNop(),
	)

	start := time.Now()
	res, err := svc.Combine(context.Background(), 1)
	elapsed := time.Since(start)

	require.Error(t, err)
	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.ErrorIs(t, err, remoteErr)
	assert.Equal(t, model.CombinedResult{}, res)
	// The join waits for the surviving branch before reporting the failure.
	assert.GreaterOrEqual(t, elapsed, catalogDelay)
}

func TestCombineCatalogFailure(t *testing.T) {
	catErr := errors.New("catalog down")
	svc := New(
		&fakeCatalog{err: catErr},
		&fakeFetcher{},
		zap.NewNop(),
	)
	res, err := svc.Combine(context.Background(), 1)
	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.ErrorIs(t, err, catErr)
	assert.Equal(t, model.CombinedResult{}, res)
}

func TestCombineConcurrentCallsIndependent(t *testing.T) {
	svc := New(
		&fakeCatalog{delay: 10 * time.Millisecond},
		&fakeFetcher{delay: 10 * time.Millisecond, todo: model.Todo{UserID: 3, Title: "x"}},
		zap.NewNop(),
	)

	ids := []int{1, 2, 3, 4, 5, 6, 7, 8}
	results := make([]model.CombinedResult, len(ids))
	errs := make([]error, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i, id int) {
			defer wg.Done()
			results[i], errs[i] = svc.Combine(context.Background(), id)
		}(i, id)
	}
	wg.Wait()

	for i, id := range ids {
		require.NoError(t, errs[i])
		assert.Equal(t, id, results[i].Product.ID)
		assert.Equal(t, fmt.Sprintf("Product %d", id), results[i].Product.Name)
		assert.Equal(t, id, results[i].Todo.ID)
	}
}
