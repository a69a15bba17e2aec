// Package remote fetches todo items from the external todos API.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/fairyhunter13/product-aggregator-simulator/internal/model"
)

// Fetcher retrieves a todo item by id.
type Fetcher interface {
	FetchTodo(ctx context.Context, id int) (model.Todo, error)
}

// FetchError reports a failed remote call: transport error, non-2xx status,
// or an undecodable body.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("remote fetch %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("remote fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client fetches todos over a shared resty client. One Client instance must
// be reused across requests; building a new one per call exhausts sockets
// under load.
type Client struct {
	http *resty.Client
}

// New builds the shared client for the todos API at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{http: resty.New().SetBaseURL(baseURL).SetTimeout(timeout)}
}

// FetchTodo performs one GET against {base}/todos/{id} and decodes the body.
func (c *Client) FetchTodo(ctx context.Context, id int) (model.Todo, error) {
	path := fmt.Sprintf("/todos/%d", id)
	resp, err := c.http.R().SetContext(ctx).Get(path)
	if err != nil {
		return model.Todo{}, &FetchError{URL: c.http.BaseURL + path, Err: err}
	}
	if resp.StatusCode()/100 != 2 {
		return model.Todo{}, &FetchError{URL: c.http.BaseURL + path, Status: resp.StatusCode()}
	}
	var todo model.Todo
	if err := json.Unmarshal(resp.Body(), &todo); err != nil {
		return model.Todo{}, &FetchError{URL: c.http.BaseURL + path, Err: err}
	}
	return todo, nil
}
