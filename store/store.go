// Package store holds dishes and orders keyed by id.
package store

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"grubdash-api/models"
)

var (
	// ErrNotFound is returned when no record has the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a record with the same id already exists.
	ErrConflict = errors.New("record already exists")
)

// Store is a collection of records of one resource type.
// List returns records in insertion order.
type Store[T models.Record] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, record T) error
	Update(ctx context.Context, record T) error
	Delete(ctx context.Context, id string) error
}

// IDGenerator returns a new id that is unique for the lifetime of the process.
type IDGenerator func() string

// NewID returns a 32 character hex id.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
