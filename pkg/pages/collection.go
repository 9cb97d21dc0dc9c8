package pages

import (
	"context"
	"sync"
)

// Collection holds a sibling entity list a page's form needs for its
// selectors (e.g. the loan form lists readers). It is filled by a
// SiblingLoader during Reload and read by whatever renders the form.
type Collection[T any] struct {
	mu    sync.Mutex
	items []T
}

func (c *Collection[T]) set(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
}

// Items returns the last successfully loaded list. It keeps the previous
// list when a later load fails, so a selector never empties mid-session.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items
}

// Sibling builds a SiblingLoader that stores its result into a Collection.
func Sibling[T any](name string, load func(ctx context.Context) ([]T, error), into *Collection[T]) SiblingLoader {
	return SiblingLoader{
		Name: name,
		Load: func(ctx context.Context) error {
			items, err := load(ctx)
			if err != nil {
				return err
			}
			into.set(items)
			return nil
		},
	}
}
