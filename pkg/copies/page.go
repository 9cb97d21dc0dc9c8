package copies

import (
	"context"

	"github.com/bibliodesk/bibliodesk/pkg/binder"
	"github.com/bibliodesk/bibliodesk/pkg/books"
	"github.com/bibliodesk/bibliodesk/pkg/models"
	"github.com/bibliodesk/bibliodesk/pkg/pages"
	"github.com/pkg/errors"
)

// Page is the copy controller plus the book list its form's book selector
// needs. Both load concurrently on Reload.
type Page struct {
	*pages.Controller[models.Copy, int]

	books pages.Collection[models.Book]
}

func NewPage(svc *Service, bookService *books.Service, b *binder.Binder, notifier pages.Notifier) *Page {
	p := &Page{}
	p.Controller = pages.New(pages.Config[models.Copy, int]{
		Name: "Copy",
		Load: func(ctx context.Context) ([]models.Copy, error) {
			return svc.ListCopies(ctx, ListCopiesOptions{})
		},
		Siblings: []pages.SiblingLoader{
			pages.Sibling("books", func(ctx context.Context) ([]models.Book, error) {
				return bookService.ListBooks(ctx, books.ListBooksOptions{})
			}, &p.books),
		},
		Validate: func(ctx context.Context, values interface{}) []binder.FieldError {
			return b.Check(ctx, values)
		},
		Create: func(ctx context.Context, values interface{}) error {
			params, ok := values.(*CreateCopyPayload)
			if !ok {
				return errors.Errorf("unexpected payload type %T", values)
			}
			_, err := svc.CreateCopy(ctx, *params)
			return err
		},
		Update: func(ctx context.Context, id int, values interface{}) error {
			params, ok := values.(*UpdateCopyPayload)
			if !ok {
				return errors.Errorf("unexpected payload type %T", values)
			}
			_, err := svc.UpdateCopy(ctx, id, *params)
			return err
		},
		Delete: svc.DeleteCopy,
		Key:    func(c models.Copy) int { return c.ID },
	}, notifier)
	return p
}

// Books returns the book options for the form selector.
func (p *Page) Books() []models.Book {
	return p.books.Items()
}
