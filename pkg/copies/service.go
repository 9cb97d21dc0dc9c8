package copies

import (
	"context"

	"github.com/bibliodesk/bibliodesk/pkg/biblio"
	"github.com/bibliodesk/bibliodesk/pkg/models"
	"github.com/bibliodesk/bibliodesk/pkg/search"
	"github.com/pkg/errors"
)

type ListCopiesOptions struct {
	Search *string
}

type Service struct {
	client *biblio.Client
}

func NewService(client *biblio.Client) *Service {
	return &Service{client}
}

func (svc *Service) ListCopies(ctx context.Context, opts ListCopiesOptions) ([]models.Copy, error) {
	dtos, err := svc.client.ListCopies(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	copies := make([]models.Copy, 0, len(dtos))
	for _, dto := range dtos {
		copies = append(copies, models.NormalizeCopy(dto))
	}
	if opts.Search != nil {
		copies = search.Filter(copies, *opts.Search)
	}
	return copies, nil
}

func (svc *Service) RetrieveCopy(ctx context.Context, id int) (*models.Copy, error) {
	dto, err := svc.client.RetrieveCopy(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	copy := models.NormalizeCopy(*dto)
	return &copy, nil
}

func (svc *Service) CreateCopy(ctx context.Context, params CreateCopyPayload) (*models.Copy, error) {
	dto, err := svc.client.CreateCopy(ctx, params.BookID, params.Location)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	copy := models.NormalizeCopy(*dto)
	return &copy, nil
}

func (svc *Service) UpdateCopy(ctx context.Context, id int, params UpdateCopyPayload) (*models.Copy, error) {
	dto, err := svc.client.UpdateCopy(ctx, id, biblio.UpdateCopyOptions{
		BookID:   params.BookID,
		Location: params.Location,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	copy := models.NormalizeCopy(*dto)
	return &copy, nil
}

func (svc *Service) DeleteCopy(ctx context.Context, id int) error {
	return errors.WithStack(svc.client.DeleteCopy(ctx, id))
}
