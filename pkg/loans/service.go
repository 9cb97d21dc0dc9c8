package loans

import (
	"context"

	"github.com/bibliodesk/bibliodesk/pkg/biblio"
	"github.com/bibliodesk/bibliodesk/pkg/models"
	"github.com/bibliodesk/bibliodesk/pkg/search"
	"github.com/pkg/errors"
)

type ListLoansOptions struct {
	Search *string
}

type Service struct {
	client *biblio.Client
}

func NewService(client *biblio.Client) *Service {
	return &Service{client}
}

func (svc *Service) ListLoans(ctx context.Context, opts ListLoansOptions) ([]models.Loan, error) {
	dtos, err := svc.client.ListLoans(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	loans := make([]models.Loan, 0, len(dtos))
	for _, dto := range dtos {
		loans = append(loans, models.NormalizeLoan(dto))
	}
	if opts.Search != nil {
		loans = search.Filter(loans, *opts.Search)
	}
	return loans, nil
}

func (svc *Service) RetrieveLoan(ctx context.Context, id int) (*models.Loan, error) {
	dto, err := svc.client.RetrieveLoan(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	loan := models.NormalizeLoan(*dto)
	return &loan, nil
}

func (svc *Service) CreateLoan(ctx context.Context, params CreateLoanPayload) (*models.Loan, error) {
	dto, err := svc.client.CreateLoan(ctx, params.ReaderID, params.LibrarianID, params.CopyID, params.LoanDate, params.ReturnDate)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	loan := models.NormalizeLoan(*dto)
	return &loan, nil
}

func (svc *Service) UpdateLoan(ctx context.Context, id int, params UpdateLoanPayload) (*models.Loan, error) {
	dto, err := svc.client.UpdateLoan(ctx, id, biblio.UpdateLoanOptions{
		ReaderID:    params.ReaderID,
		LibrarianID: params.LibrarianID,
		CopyID:      params.CopyID,
		LoanDate:    params.LoanDate,
		ReturnDate:  params.ReturnDate,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	loan := models.NormalizeLoan(*dto)
	return &loan, nil
}

func (svc *Service) DeleteLoan(ctx context.Context, id int) error {
	return errors.WithStack(svc.client.DeleteLoan(ctx, id))
}
