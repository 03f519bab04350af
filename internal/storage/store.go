// Package storage provides the durable key-value slot the notebook document
// is written through to. Three interchangeable backends exist: a local SQLite
// file (the default), Redis, and Postgres.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when a slot has never been written.
var ErrNotFound = errors.New("storage: slot not found")

// Store is a named-slot blob store. Writes are last-write-wins; each Put is
// a single atomic set, so no torn-write protection is layered on top.
type Store interface {
	Put(ctx context.Context, slot string, data []byte) error
	Get(ctx context.Context, slot string) ([]byte, error)
	Close() error
}
