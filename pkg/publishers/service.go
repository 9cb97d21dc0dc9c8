package publishers

import (
	"context"

	"github.com/bibliodesk/bibliodesk/pkg/biblio"
	"github.com/bibliodesk/bibliodesk/pkg/models"
	"github.com/bibliodesk/bibliodesk/pkg/search"
	"github.com/pkg/errors"
)

type ListPublishersOptions struct {
	Search *string
}

type Service struct {
	client *biblio.Client
}

func NewService(client *biblio.Client) *Service {
	return &Service{client}
}

func (svc *Service) ListPublishers(ctx context.Context, opts ListPublishersOptions) ([]models.Publisher, error) {
	dtos, err := svc.client.ListPublishers(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	publishers := make([]models.Publisher, 0, len(dtos))
	for _, dto := range dtos {
		publishers = append(publishers, models.NormalizePublisher(dto))
	}
	if opts.Search != nil {
		publishers = search.Filter(publishers, *opts.Search)
	}
	return publishers, nil
}

func (svc *Service) RetrievePublisher(ctx context.Context, id int) (*models.Publisher, error) {
	dto, err := svc.client.RetrievePublisher(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	publisher := models.NormalizePublisher(*dto)
	return &publisher, nil
}

func (svc *Service) CreatePublisher(ctx context.Context, params CreatePublisherPayload) (*models.Publisher, error) {
	dto, err := svc.client.CreatePublisher(ctx, params.Name, params.Country, params.City, params.Website)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	publisher := models.NormalizePublisher(*dto)
	return &publisher, nil
}

func (svc *Service) UpdatePublisher(ctx context.Context, id int, params UpdatePublisherPayload) (*models.Publisher, error) {
	dto, err := svc.client.UpdatePublisher(ctx, id, biblio.UpdatePublisherOptions{
		Name:    params.Name,
		Country: params.Country,
		City:    params.City,
		Website: params.Website,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	publisher := models.NormalizePublisher(*dto)
	return &publisher, nil
}

func (svc *Service) DeletePublisher(ctx context.Context, id int) error {
	return errors.WithStack(svc.client.DeletePublisher(ctx, id))
}
