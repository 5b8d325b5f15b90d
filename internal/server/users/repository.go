// Package users implements the user record model and CRUD semantics
// over a durable record store.
package users

import (
	"context"
)

// Store persists the full user collection as a single durable blob.
//
// Load is fail-open: on any read failure it yields an empty collection
// instead of an error. Save overwrites the stored collection in full.
type Store interface {
	Load(ctx context.Context) []User
	Save(ctx context.Context, collection []User) error
}

// Repository offers CRUD operations over the stored user collection.
type Repository interface {
	List(ctx context.Context) []User
	GetByID(ctx context.Context, id int64) (User, error)
	Create(ctx context.Context, fields map[string]any) (User, error)
	Update(ctx context.Context, id int64, fields map[string]any) (User, error)
	Delete(ctx context.Context, id int64) error
}
