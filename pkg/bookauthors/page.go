package bookauthors

import (
	"context"

	"github.com/bibliodesk/bibliodesk/pkg/authors"
	"github.com/bibliodesk/bibliodesk/pkg/binder"
	"github.com/bibliodesk/bibliodesk/pkg/books"
	"github.com/bibliodesk/bibliodesk/pkg/models"
	"github.com/bibliodesk/bibliodesk/pkg/pages"
	"github.com/pkg/errors"
)

// Page is the book-author link controller plus the book and author lists its
// form's selectors need. All three load concurrently on Reload.
type Page struct {
	*pages.Controller[models.BookAuthor, Key]

	books   pages.Collection[models.Book]
	authors pages.Collection[models.Author]
}

func NewPage(svc *Service, bookService *books.Service, authorService *authors.Service, b *binder.Binder, notifier pages.Notifier) *Page {
	p := &Page{}
	p.Controller = pages.New(pages.Config[models.BookAuthor, Key]{
		Name: "Book author",
		Load: func(ctx context.Context) ([]models.BookAuthor, error) {
			return svc.ListBookAuthors(ctx, ListBookAuthorsOptions{})
		},
		Siblings: []pages.SiblingLoader{
			pages.Sibling("books", func(ctx context.Context) ([]models.Book, error) {
				return bookService.ListBooks(ctx, books.ListBooksOptions{})
			}, &p.books),
			pages.Sibling("authors", func(ctx context.Context) ([]models.Author, error) {
				return authorService.ListAuthors(ctx, authors.ListAuthorsOptions{})
			}, &p.authors),
		},
		Validate: func(ctx context.Context, values interface{}) []binder.FieldError {
			return b.Check(ctx, values)
		},
		Create: func(ctx context.Context, values interface{}) error {
			params, ok := values.(*CreateBookAuthorPayload)
			if !ok {
				return errors.Errorf("unexpected payload type %T", values)
			}
			_, err := svc.CreateBookAuthor(ctx, *params)
			return err
		},
		Update: func(ctx context.Context, key Key, values interface{}) error {
			params, ok := values.(*UpdateBookAuthorPayload)
			if !ok {
				return errors.Errorf("unexpected payload type %T", values)
			}
			_, err := svc.UpdateBookAuthor(ctx, key, *params)
			return err
		},
		Delete: svc.DeleteBookAuthor,
		Key: func(link models.BookAuthor) Key {
			return Key{BookID: link.BookID, AuthorID: link.AuthorID}
		},
	}, notifier)
	return p
}

// Books returns the book options for the form selector.
func (p *Page) Books() []models.Book {
	return p.books.Items()
}

// Authors returns the author options for the form selector.
func (p *Page) Authors() []models.Author {
	return p.authors.Items()
}
