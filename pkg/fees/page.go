package fees

import (
	"context"

	"github.com/bibliodesk/bibliodesk/pkg/binder"
	"github.com/bibliodesk/bibliodesk/pkg/loans"
	"github.com/bibliodesk/bibliodesk/pkg/models"
	"github.com/bibliodesk/bibliodesk/pkg/pages"
	"github.com/pkg/errors"
)

// Page is the fee controller plus the loan list its form's loan selector
// needs. Both load concurrently on Reload.
type Page struct {
	*pages.Controller[models.Fee, int]

	loans pages.Collection[models.Loan]
}

func NewPage(svc *Service, loanService *loans.Service, b *binder.Binder, notifier pages.Notifier) *Page {
	p := &Page{}
	p.Controller = pages.New(pages.Config[models.Fee, int]{
		Name: "Fee",
		Load: func(ctx context.Context) ([]models.Fee, error) {
			return svc.ListFees(ctx, ListFeesOptions{})
		},
		Siblings: []pages.SiblingLoader{
			pages.Sibling("loans", func(ctx context.Context) ([]models.Loan, error) {
				return loanService.ListLoans(ctx, loans.ListLoansOptions{})
			}, &p.loans),
		},
		Validate: func(ctx context.Context, values interface{}) []binder.FieldError {
			return b.Check(ctx, values)
		},
		Create: func(ctx context.Context, values interface{}) error {
			params, ok := values.(*CreateFeePayload)
			if !ok {
				return errors.Errorf("unexpected payload type %T", values)
			}
			_, err := svc.CreateFee(ctx, *params)
			return err
		},
		Update: func(ctx context.Context, id int, values interface{}) error {
			params, ok := values.(*UpdateFeePayload)
			if !ok {
				return errors.Errorf("unexpected payload type %T", values)
			}
			_, err := svc.UpdateFee(ctx, id, *params)
			return err
		},
		Delete: svc.DeleteFee,
		Key:    func(f models.Fee) int { return f.ID },
	}, notifier)
	return p
}

// Loans returns the loan options for the form selector.
func (p *Page) Loans() []models.Loan {
	return p.loans.Items()
}
