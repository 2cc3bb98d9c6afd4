// Package kvstore provides the persistent key-value store behind the storage
// gateway: named binary records with last-write-wins overwrite semantics.
package kvstore

import "context"

// Record pairs a record name with its serialized content.
type Record struct {
	Name string
	Data []byte
}

// RecordStore is the storage port. Implementations must make PutAll atomic
// where the backend supports it so paired writes cannot be half-applied.
type RecordStore interface {
	// Get returns the record content and whether the record exists.
	Get(ctx context.Context, name string) ([]byte, bool, error)
	// Put overwrites one record unconditionally.
	Put(ctx context.Context, name string, data []byte) error
	// PutAll overwrites several records in one commit, in order.
	PutAll(ctx context.Context, records []Record) error

	Close() error
}
