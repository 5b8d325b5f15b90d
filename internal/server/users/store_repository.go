package users

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/userbook/internal/common"
)

// StoreRepository implements Repository on top of a Store. The store
// keeps no state between calls, so every operation re-reads the full
// collection, mutates it in memory and writes it back. One mutex wraps
// each load-mutate-save sequence so that overlapping requests cannot
// lose each other's writes.
type StoreRepository struct {
	store Store
	mu    sync.Mutex
}

func NewStoreRepository(store Store) *StoreRepository {
	return &StoreRepository{store: store}
}

// findIndex returns the position of the first record whose id equals
// id, or -1. First match wins: duplicate ids can exist after a delete
// followed by a create (see Create).
func findIndex(collection []User, id int64) int {
	for i, u := range collection {
		if got, ok := u.ID(); ok && got == id {
			return i
		}
	}
	return -1
}

// List returns the full collection as stored, in insertion order.
func (r *StoreRepository) List(ctx context.Context) []User {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.store.Load(ctx)
}

func (r *StoreRepository) GetByID(ctx context.Context, id int64) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	collection := r.store.Load(ctx)
	i := findIndex(collection, id)
	if i < 0 {
		return nil, common.ErrorNotFound
	}
	return collection[i], nil
}

// Create appends a new record built from a shallow copy of fields plus
// an assigned identifier, and saves the collection.
//
// The identifier is len(collection)+1, matching the data produced by
// earlier deployments: after a delete, a later create can reuse an id.
// Lookups are first-match-wins to keep that case deterministic.
func (r *StoreRepository) Create(ctx context.Context, fields map[string]any) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	collection := r.store.Load(ctx)

	user := User(fields).Clone()
	user[IDKey] = int64(len(collection)) + 1

	collection = append(collection, user)
	if err := r.store.Save(ctx, collection); err != nil {
		return nil, fmt.Errorf("%w: saving created user: %v", common.ErrorInternal, err)
	}
	return user, nil
}

// Update shallow-merges fields over the first record matching id and
// saves the collection. Keys present in fields overwrite, absent keys
// persist; the identifier cannot be overwritten. A missing id yields
// ErrorNotFound.
func (r *StoreRepository) Update(ctx context.Context, id int64, fields map[string]any) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	collection := r.store.Load(ctx)
	i := findIndex(collection, id)
	if i < 0 {
		return nil, common.ErrorNotFound
	}

	merged := collection[i].Merge(fields)
	collection[i] = merged

	if err := r.store.Save(ctx, collection); err != nil {
		return nil, fmt.Errorf("%w: saving updated user: %v", common.ErrorInternal, err)
	}
	return merged, nil
}

// Delete removes exactly one record, the first matching id, and saves
// the collection. A missing id yields ErrorNotFound and leaves the
// stored collection untouched.
func (r *StoreRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	collection := r.store.Load(ctx)
	i := findIndex(collection, id)
	if i < 0 {
		return common.ErrorNotFound
	}

	collection = append(collection[:i], collection[i+1:]...)
	if err := r.store.Save(ctx, collection); err != nil {
		return fmt.Errorf("%w: saving after delete: %v", common.ErrorInternal, err)
	}
	return nil
}
