// Package pagecache provides the interface for caching upstream catalog pages
package pagecache

//go:generate mockgen -destination=mock/mock_repository.go -package=pagecachemock github.com/KirkDiggler/monster-codex/internal/repositories/pagecache Repository

import (
	"context"
	"time"
)

// Repository stores encoded upstream pages keyed by their fetch window
type Repository interface {
	// Get retrieves a cached page
	// Returns errors.InvalidArgument for a malformed window
	// Returns errors.NotFound on a miss or after expiry
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put stores a page, replacing any previous entry for the window
	// Returns errors.InvalidArgument for a malformed window or empty payload
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input PutInput) (*PutOutput, error)
}

// GetInput defines the input for reading a page
type GetInput struct {
	Limit  int
	Offset int
}

// GetOutput defines the output for reading a page
type GetOutput struct {
	Data []byte
}

// PutInput defines the input for storing a page
type PutInput struct {
	Limit  int
	Offset int
	Data   []byte
	// TTL of zero keeps the entry until evicted
	TTL time.Duration
}

// PutOutput defines the output for storing a page
type PutOutput struct{}
