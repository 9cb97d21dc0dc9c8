package books

import (
	"context"

	"github.com/bibliodesk/bibliodesk/pkg/binder"
	"github.com/bibliodesk/bibliodesk/pkg/models"
	"github.com/bibliodesk/bibliodesk/pkg/pages"
	"github.com/bibliodesk/bibliodesk/pkg/publishers"
	"github.com/pkg/errors"
)

// Page is the book controller plus the publisher list its form's publisher
// selector needs. Both load concurrently on Reload.
type Page struct {
	*pages.Controller[models.Book, int]

	publishers pages.Collection[models.Publisher]
}

func NewPage(svc *Service, publisherService *publishers.Service, b *binder.Binder, notifier pages.Notifier) *Page {
	p := &Page{}
	p.Controller = pages.New(pages.Config[models.Book, int]{
		Name: "Book",
		Load: func(ctx context.Context) ([]models.Book, error) {
			return svc.ListBooks(ctx, ListBooksOptions{})
		},
		Siblings: []pages.SiblingLoader{
			pages.Sibling("publishers", func(ctx context.Context) ([]models.Publisher, error) {
				return publisherService.ListPublishers(ctx, publishers.ListPublishersOptions{})
			}, &p.publishers),
		},
		Validate: func(ctx context.Context, values interface{}) []binder.FieldError {
			return b.Check(ctx, values)
		},
		Create: func(ctx context.Context, values interface{}) error {
			params, ok := values.(*CreateBookPayload)
			if !ok {
				return errors.Errorf("unexpected payload type %T", values)
			}
			_, err := svc.CreateBook(ctx, *params)
			return err
		},
		Update: func(ctx context.Context, id int, values interface{}) error {
			params, ok := values.(*UpdateBookPayload)
			if !ok {
				return errors.Errorf("unexpected payload type %T", values)
			}
			_, err := svc.UpdateBook(ctx, id, *params)
			return err
		},
		Delete: svc.DeleteBook,
		Key:    func(b models.Book) int { return b.ID },
	}, notifier)
	return p
}

// Publishers returns the publisher options for the form selector.
func (p *Page) Publishers() []models.Publisher {
	return p.publishers.Items()
}
