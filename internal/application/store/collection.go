package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/sanketgaikwad/portfolio-api/adapters/event"
	"github.com/sanketgaikwad/portfolio-api/internal/domain/portfolio"
	"github.com/sanketgaikwad/portfolio-api/pkg/apperror"
)

// Collection is a typed CRUD handle over one slice of the aggregate
// snapshot. All three operations run through the store's optimistic
// transaction: mutate locally, broadcast, persist, revert on rejection.
type Collection[T any] struct {
	store   *Store
	name    portfolio.Collection
	prepend bool

	slice   func(*portfolio.Snapshot) *[]T
	id      func(*T) uuid.UUID
	setID   func(*T, uuid.UUID)
	prepare func(*T)
	check   func(*T) error

	insert func(context.Context, T) error
	update func(context.Context, T) error
	remove func(context.Context, uuid.UUID) error
}

// Add assigns a fresh id, inserts optimistically (prepended for contacts,
// appended for everything else) and returns the stored item.
func (c *Collection[T]) Add(ctx context.Context, item T) (T, error) {
	var zero T
	if c.prepare != nil {
		c.prepare(&item)
	}
	if c.check != nil {
		if err := c.check(&item); err != nil {
			return zero, apperror.NewInvalidInput("validation failed for "+string(c.name), err)
		}
	}
	c.setID(&item, uuid.New())
	id := c.id(&item)

	m := mutation{
		op:         "add " + string(c.name),
		collection: c.name,
		eventType:  event.ContentEventTypeCreated,
		resourceID: id,
	}
	err := c.store.mutate(ctx, m,
		func(snap *portfolio.Snapshot) (func(*portfolio.Snapshot), bool) {
			sl := c.slice(snap)
			if c.prepend {
				*sl = append([]T{item}, *sl...)
			} else {
				*sl = append(*sl, item)
			}
			return func(snap *portfolio.Snapshot) {
				sl := c.slice(snap)
				if idx := c.indexOf(*sl, id); idx >= 0 {
					*sl = append((*sl)[:idx], (*sl)[idx+1:]...)
				}
			}, true
		},
		func(ctx context.Context) error { return c.insert(ctx, item) },
	)
	if err != nil {
		return zero, err
	}
	return item, nil
}

// Update replaces the matching entry by id. An empty or unknown id is a
// no-op, not an error.
func (c *Collection[T]) Update(ctx context.Context, item T) error {
	id := c.id(&item)
	if id == uuid.Nil {
		return nil
	}
	if c.prepare != nil {
		c.prepare(&item)
	}
	if c.check != nil {
		if err := c.check(&item); err != nil {
			return apperror.NewInvalidInput("validation failed for "+string(c.name), err)
		}
	}

	m := mutation{
		op:         "update " + string(c.name),
		collection: c.name,
		eventType:  event.ContentEventTypeUpdated,
		resourceID: id,
	}
	return c.store.mutate(ctx, m,
		func(snap *portfolio.Snapshot) (func(*portfolio.Snapshot), bool) {
			sl := c.slice(snap)
			idx := c.indexOf(*sl, id)
			if idx < 0 {
				return nil, false
			}
			prev := (*sl)[idx]
			(*sl)[idx] = item
			return func(snap *portfolio.Snapshot) {
				sl := c.slice(snap)
				if i := c.indexOf(*sl, id); i >= 0 {
					(*sl)[i] = prev
				}
			}, true
		},
		func(ctx context.Context) error { return c.update(ctx, item) },
	)
}

// Delete removes the matching entry. Deleting an id that is already gone is
// a no-op, so calling it twice settles the same as calling it once.
func (c *Collection[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return nil
	}

	m := mutation{
		op:         "delete " + string(c.name),
		collection: c.name,
		eventType:  event.ContentEventTypeDeleted,
		resourceID: id,
	}
	return c.store.mutate(ctx, m,
		func(snap *portfolio.Snapshot) (func(*portfolio.Snapshot), bool) {
			sl := c.slice(snap)
			idx := c.indexOf(*sl, id)
			if idx < 0 {
				return nil, false
			}
			prev := (*sl)[idx]
			*sl = append((*sl)[:idx], (*sl)[idx+1:]...)
			return func(snap *portfolio.Snapshot) {
				sl := c.slice(snap)
				at := idx
				if at > len(*sl) {
					at = len(*sl)
				}
				rest := append([]T{prev}, (*sl)[at:]...)
				*sl = append((*sl)[:at], rest...)
			}, true
		},
		func(ctx context.Context) error { return c.remove(ctx, id) },
	)
}

func (c *Collection[T]) indexOf(sl []T, id uuid.UUID) int {
	for i := range sl {
		if c.id(&sl[i]) == id {
			return i
		}
	}
	return -1
}
