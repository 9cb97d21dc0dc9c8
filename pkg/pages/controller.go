// Package pages holds the per-entity page controllers: the state behind every
// console screen. A controller owns the fetched list, the free-text query, the
// record being edited, and the in-flight/error flags, and funnels every
// transport failure into a notification instead of letting it escape.
package pages

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/bibliodesk/bibliodesk/pkg/binder"
	"github.com/bibliodesk/bibliodesk/pkg/errcodes"
	"github.com/bibliodesk/bibliodesk/pkg/search"
	"github.com/pkg/errors"
)

// SiblingLoader fetches one related collection a page's form needs (e.g. the
// loan form needs readers, librarians, and copies for its selectors).
type SiblingLoader struct {
	Name string
	Load func(ctx context.Context) error
}

// Config wires a controller to one entity. T is the display model, K its key
// type — int for every entity except the book-author link, which is keyed by
// its composite (book, author) pair.
type Config[T search.Searchable, K comparable] struct {
	// Name is the human-readable singular entity name used in notifications.
	Name string

	Load     func(ctx context.Context) ([]T, error)
	Siblings []SiblingLoader

	// Validate returns the schema rejections for a set of form values; when it
	// returns any, Submit makes no transport call.
	Validate func(ctx context.Context, values interface{}) []binder.FieldError
	Create   func(ctx context.Context, values interface{}) error
	Update   func(ctx context.Context, key K, values interface{}) error
	Delete   func(ctx context.Context, key K) error

	Key func(item T) K
}

// Controller is the page state machine. The list/loading axis, the form axis,
// and the delete-confirmation axis are orthogonal; every transition is driven
// by a user action or a transport completion, never a timer.
type Controller[T search.Searchable, K comparable] struct {
	mu       sync.Mutex
	cfg      Config[T, K]
	notifier Notifier

	items      []T
	query      string
	editing    *T
	formOpen   bool
	pendingDel *K
	loading    bool
	submitting bool
	lastError  string
}

func New[T search.Searchable, K comparable](cfg Config[T, K], notifier Notifier) *Controller[T, K] {
	return &Controller[T, K]{cfg: cfg, notifier: notifier}
}

// Reload fetches the page's entity list and every sibling collection
// concurrently and waits for all of them to settle. Collections that loaded
// stay usable even when others failed; failures produce a single error
// notification naming every collection that could not be fetched. On a failed
// main load the previous list is kept so the page can still render.
func (c *Controller[T, K]) Reload(ctx context.Context) bool {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	type result struct {
		name string
		err  error
	}

	results := make(chan result, len(c.cfg.Siblings)+1)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		items, err := c.cfg.Load(ctx)
		if err == nil {
			c.mu.Lock()
			c.items = items
			c.mu.Unlock()
		}
		results <- result{name: pluralName(c.cfg.Name), err: err}
	}()

	for _, sibling := range c.cfg.Siblings {
		wg.Add(1)
		go func(s SiblingLoader) {
			defer wg.Done()
			results <- result{name: s.Name, err: s.Load(ctx)}
		}(sibling)
	}

	wg.Wait()
	close(results)

	var failed []string
	var firstErr error
	for r := range results {
		if r.err != nil {
			failed = append(failed, r.name)
			if firstErr == nil {
				firstErr = r.err
			}
		}
	}

	c.mu.Lock()
	c.loading = false
	if firstErr != nil {
		c.lastError = describeError(firstErr)
	} else {
		c.lastError = ""
	}
	c.mu.Unlock()

	if firstErr != nil {
		c.notifier.Notify(errorNotification(
			"Error loading data",
			fmt.Sprintf("Could not load %s: %s", strings.Join(failed, ", "), describeError(firstErr)),
		))
		return false
	}
	return true
}

func (c *Controller[T, K]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items
}

func (c *Controller[T, K]) SetQuery(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = query
}

func (c *Controller[T, K]) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Filtered is the derived list the table renders: the fetched list narrowed by
// the current query. It is recomputed on every call rather than cached.
func (c *Controller[T, K]) Filtered() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return search.Filter(c.items, c.query)
}

func (c *Controller[T, K]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Controller[T, K]) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

func (c *Controller[T, K]) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastError
}

// BeginCreate opens the form with no record under edit.
func (c *Controller[T, K]) BeginCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.formOpen = true
	c.editing = nil
}

// BeginEdit opens the form bound to an existing record.
func (c *Controller[T, K]) BeginEdit(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.formOpen = true
	c.editing = &item
}

func (c *Controller[T, K]) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.formOpen = false
	c.editing = nil
}

func (c *Controller[T, K]) FormOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.formOpen
}

func (c *Controller[T, K]) Editing() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.editing == nil {
		var zero T
		return zero, false
	}
	return *c.editing, true
}

// Submit validates the form values and then creates or updates depending on
// whether a record is under edit. Validation failures and transport errors are
// notified; on failure the form stays open with its values intact so the user
// can retry. Returns whether the round trip succeeded.
func (c *Controller[T, K]) Submit(ctx context.Context, values interface{}) bool {
	if fieldErrs := c.cfg.Validate(ctx, values); len(fieldErrs) > 0 {
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, fe.Message)
		}
		c.notifier.Notify(errorNotification("Validation error", strings.Join(msgs, "; ")))
		return false
	}

	c.mu.Lock()
	editing := c.editing
	c.submitting = true
	c.mu.Unlock()

	var err error
	var verb string
	if editing != nil {
		verb = "updated"
		err = c.cfg.Update(ctx, c.cfg.Key(*editing), values)
	} else {
		verb = "created"
		err = c.cfg.Create(ctx, values)
	}

	c.mu.Lock()
	c.submitting = false
	c.mu.Unlock()

	if err != nil {
		c.notifier.Notify(errorNotification(
			fmt.Sprintf("Error saving %s", strings.ToLower(c.cfg.Name)),
			describeError(err),
		))
		return false
	}

	c.mu.Lock()
	c.formOpen = false
	c.editing = nil
	c.mu.Unlock()

	c.notifier.Notify(successNotification(
		c.cfg.Name+" "+verb,
		fmt.Sprintf("The %s was %s successfully.", strings.ToLower(c.cfg.Name), verb),
	))
	c.Reload(ctx)
	return true
}

// RequestDelete records which row the user asked to delete; nothing is sent to
// the transport until ConfirmDelete.
func (c *Controller[T, K]) RequestDelete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingDel = &key
}

func (c *Controller[T, K]) CancelDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingDel = nil
}

func (c *Controller[T, K]) PendingDelete() (K, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pendingDel == nil {
		var zero K
		return zero, false
	}
	return *c.pendingDel, true
}

// ConfirmDelete performs the pending deletion. The list is only refreshed
// after a successful round trip; on failure it is left as is.
func (c *Controller[T, K]) ConfirmDelete(ctx context.Context) bool {
	c.mu.Lock()
	pending := c.pendingDel
	c.pendingDel = nil
	c.mu.Unlock()

	if pending == nil {
		return false
	}

	if err := c.cfg.Delete(ctx, *pending); err != nil {
		c.notifier.Notify(errorNotification(
			fmt.Sprintf("Error deleting %s", strings.ToLower(c.cfg.Name)),
			describeError(err),
		))
		return false
	}

	c.notifier.Notify(successNotification(
		c.cfg.Name+" deleted",
		fmt.Sprintf("The %s was deleted successfully.", strings.ToLower(c.cfg.Name)),
	))
	c.Reload(ctx)
	return true
}

// describeError picks the human-readable cause for a notification, preferring
// the classified message over a raw error string.
func describeError(err error) string {
	var e *errcodes.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

func pluralName(name string) string {
	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, "s") {
		return lower + "es"
	}
	if strings.HasSuffix(lower, "y") {
		return lower[:len(lower)-1] + "ies"
	}
	return lower + "s"
}
