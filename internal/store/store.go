package store

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when a key has never been written.
var ErrKeyNotFound = errors.New("key not found")

// Store is the external key-value collaborator. Keys are strings, values are
// whole-collection JSON strings. Reads and writes are whole-blob
// read-modify-write with no version token: the system assumes a single
// writer, and concurrent writers clobber each other last-write-wins.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
}
