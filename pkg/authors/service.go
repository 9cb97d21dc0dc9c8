package authors

import (
	"context"

	"github.com/bibliodesk/bibliodesk/pkg/biblio"
	"github.com/bibliodesk/bibliodesk/pkg/models"
	"github.com/bibliodesk/bibliodesk/pkg/search"
	"github.com/pkg/errors"
)

type ListAuthorsOptions struct {
	Search *string
}

type Service struct {
	client *biblio.Client
}

func NewService(client *biblio.Client) *Service {
	return &Service{client}
}

func (svc *Service) ListAuthors(ctx context.Context, opts ListAuthorsOptions) ([]models.Author, error) {
	dtos, err := svc.client.ListAuthors(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	authors := make([]models.Author, 0, len(dtos))
	for _, dto := range dtos {
		authors = append(authors, models.NormalizeAuthor(dto))
	}
	if opts.Search != nil {
		authors = search.Filter(authors, *opts.Search)
	}
	return authors, nil
}

func (svc *Service) RetrieveAuthor(ctx context.Context, id int) (*models.Author, error) {
	dto, err := svc.client.RetrieveAuthor(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	author := models.NormalizeAuthor(*dto)
	return &author, nil
}

func (svc *Service) CreateAuthor(ctx context.Context, params CreateAuthorPayload) (*models.Author, error) {
	dto, err := svc.client.CreateAuthor(ctx, params.Name, params.Surname, params.BirthDate, params.Nationality)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	author := models.NormalizeAuthor(*dto)
	return &author, nil
}

func (svc *Service) UpdateAuthor(ctx context.Context, id int, params UpdateAuthorPayload) (*models.Author, error) {
	dto, err := svc.client.UpdateAuthor(ctx, id, biblio.UpdateAuthorOptions{
		Name:        params.Name,
		Surname:     params.Surname,
		BirthDate:   params.BirthDate,
		Nationality: params.Nationality,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	author := models.NormalizeAuthor(*dto)
	return &author, nil
}

func (svc *Service) DeleteAuthor(ctx context.Context, id int) error {
	return errors.WithStack(svc.client.DeleteAuthor(ctx, id))
}
