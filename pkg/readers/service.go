package readers

import (
	"context"

	"github.com/bibliodesk/bibliodesk/pkg/biblio"
	"github.com/bibliodesk/bibliodesk/pkg/models"
	"github.com/bibliodesk/bibliodesk/pkg/search"
	"github.com/pkg/errors"
)

type ListReadersOptions struct {
	Search *string
}

type Service struct {
	client *biblio.Client
}

func NewService(client *biblio.Client) *Service {
	return &Service{client}
}

func (svc *Service) ListReaders(ctx context.Context, opts ListReadersOptions) ([]models.Reader, error) {
	dtos, err := svc.client.ListReaders(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	readers := make([]models.Reader, 0, len(dtos))
	for _, dto := range dtos {
		readers = append(readers, models.NormalizeReader(dto))
	}
	if opts.Search != nil {
		readers = search.Filter(readers, *opts.Search)
	}
	return readers, nil
}

func (svc *Service) RetrieveReader(ctx context.Context, id int) (*models.Reader, error) {
	dto, err := svc.client.RetrieveReader(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	reader := models.NormalizeReader(*dto)
	return &reader, nil
}

func (svc *Service) CreateReader(ctx context.Context, params CreateReaderPayload) (*models.Reader, error) {
	dto, err := svc.client.CreateReader(ctx, params.PersonID, params.RegisteredAt, params.Occupation)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	reader := models.NormalizeReader(*dto)
	return &reader, nil
}

func (svc *Service) UpdateReader(ctx context.Context, id int, params UpdateReaderPayload) (*models.Reader, error) {
	dto, err := svc.client.UpdateReader(ctx, id, biblio.UpdateReaderOptions{
		PersonID:     params.PersonID,
		RegisteredAt: params.RegisteredAt,
		Occupation:   params.Occupation,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	reader := models.NormalizeReader(*dto)
	return &reader, nil
}

func (svc *Service) DeleteReader(ctx context.Context, id int) error {
	return errors.WithStack(svc.client.DeleteReader(ctx, id))
}
