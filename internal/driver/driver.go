package driver

import (
	"context"
	"io"
)

type Config struct {
	Name string
	// LocalOnly drivers keep blobs on the node's own disk, so the
	// files service cannot be scaled out while using one.
	LocalOnly bool
}

// Driver stores and retrieves file content by opaque object key. File
// metadata stays in the relational store; drivers only see bytes.
type Driver interface {
	Config() Config
	Init(ctx context.Context) error
	Drop(ctx context.Context) error
	Put(ctx context.Context, key string, r io.Reader, size int64) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

type New func() Driver
