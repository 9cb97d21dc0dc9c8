package fees

import (
	"context"

	"github.com/bibliodesk/bibliodesk/pkg/biblio"
	"github.com/bibliodesk/bibliodesk/pkg/models"
	"github.com/bibliodesk/bibliodesk/pkg/search"
	"github.com/pkg/errors"
)

type ListFeesOptions struct {
	Search *string
}

type Service struct {
	client *biblio.Client
}

func NewService(client *biblio.Client) *Service {
	return &Service{client}
}

func (svc *Service) ListFees(ctx context.Context, opts ListFeesOptions) ([]models.Fee, error) {
	dtos, err := svc.client.ListFees(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	fees := make([]models.Fee, 0, len(dtos))
	for _, dto := range dtos {
		fees = append(fees, models.NormalizeFee(dto))
	}
	if opts.Search != nil {
		fees = search.Filter(fees, *opts.Search)
	}
	return fees, nil
}

func (svc *Service) RetrieveFee(ctx context.Context, id int) (*models.Fee, error) {
	dto, err := svc.client.RetrieveFee(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	fee := models.NormalizeFee(*dto)
	return &fee, nil
}

func (svc *Service) CreateFee(ctx context.Context, params CreateFeePayload) (*models.Fee, error) {
	dto, err := svc.client.CreateFee(ctx, params.LoanID, params.DaysLate, params.Amount)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	fee := models.NormalizeFee(*dto)
	return &fee, nil
}

func (svc *Service) UpdateFee(ctx context.Context, id int, params UpdateFeePayload) (*models.Fee, error) {
	dto, err := svc.client.UpdateFee(ctx, id, biblio.UpdateFeeOptions{
		LoanID:   params.LoanID,
		DaysLate: params.DaysLate,
		Amount:   params.Amount,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	fee := models.NormalizeFee(*dto)
	return &fee, nil
}

func (svc *Service) DeleteFee(ctx context.Context, id int) error {
	return errors.WithStack(svc.client.DeleteFee(ctx, id))
}
