// Package model defines domain types used by the service.
package model

// Product represents a catalog product.
type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Todo represents an item fetched from the remote todos API.
type Todo struct {
	ID        int    `json:"id"`
	UserID    int    `json:"userId"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// CombinedResult is the composed payload returned by the combined endpoint.
type CombinedResult struct {
	Product Product `json:"product"`
	Todo    Todo    `json:"todo"`
	Message string  `json:"message"`
}
