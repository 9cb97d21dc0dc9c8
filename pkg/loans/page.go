package loans

import (
	"context"

	"github.com/bibliodesk/bibliodesk/pkg/binder"
	"github.com/bibliodesk/bibliodesk/pkg/copies"
	"github.com/bibliodesk/bibliodesk/pkg/librarians"
	"github.com/bibliodesk/bibliodesk/pkg/models"
	"github.com/bibliodesk/bibliodesk/pkg/pages"
	"github.com/bibliodesk/bibliodesk/pkg/readers"
	"github.com/pkg/errors"
)

// Page is the loan controller plus the reader, librarian, and copy lists its
// form's selectors need. All four collections load concurrently on Reload, and
// the ones that resolve stay usable when another fails.
type Page struct {
	*pages.Controller[models.Loan, int]

	readers    pages.Collection[models.Reader]
	librarians pages.Collection[models.Librarian]
	copies     pages.Collection[models.Copy]
}

func NewPage(svc *Service, readerService *readers.Service, librarianService *librarians.Service, copyService *copies.Service, b *binder.Binder, notifier pages.Notifier) *Page {
	p := &Page{}
	p.Controller = pages.New(pages.Config[models.Loan, int]{
		Name: "Loan",
		Load: func(ctx context.Context) ([]models.Loan, error) {
			return svc.ListLoans(ctx, ListLoansOptions{})
		},
		Siblings: []pages.SiblingLoader{
			pages.Sibling("readers", func(ctx context.Context) ([]models.Reader, error) {
				return readerService.ListReaders(ctx, readers.ListReadersOptions{})
			}, &p.readers),
			pages.Sibling("librarians", func(ctx context.Context) ([]models.Librarian, error) {
				return librarianService.ListLibrarians(ctx, librarians.ListLibrariansOptions{})
			}, &p.librarians),
			pages.Sibling("copies", func(ctx context.Context) ([]models.Copy, error) {
				return copyService.ListCopies(ctx, copies.ListCopiesOptions{})
			}, &p.copies),
		},
		Validate: func(ctx context.Context, values interface{}) []binder.FieldError {
			return b.Check(ctx, values)
		},
		Create: func(ctx context.Context, values interface{}) error {
			params, ok := values.(*CreateLoanPayload)
			if !ok {
				return errors.Errorf("unexpected payload type %T", values)
			}
			_, err := svc.CreateLoan(ctx, *params)
			return err
		},
		Update: func(ctx context.Context, id int, values interface{}) error {
			params, ok := values.(*UpdateLoanPayload)
			if !ok {
				return errors.Errorf("unexpected payload type %T", values)
			}
			_, err := svc.UpdateLoan(ctx, id, *params)
			return err
		},
		Delete: svc.DeleteLoan,
		Key:    func(l models.Loan) int { return l.ID },
	}, notifier)
	return p
}

// Readers returns the reader options for the form selector.
func (p *Page) Readers() []models.Reader {
	return p.readers.Items()
}

// Librarians returns the librarian options for the form selector.
func (p *Page) Librarians() []models.Librarian {
	return p.librarians.Items()
}

// Copies returns the copy options for the form selector.
func (p *Page) Copies() []models.Copy {
	return p.copies.Items()
}
