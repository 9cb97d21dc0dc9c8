package bookauthors

import (
	"context"

	"github.com/bibliodesk/bibliodesk/pkg/biblio"
	"github.com/bibliodesk/bibliodesk/pkg/models"
	"github.com/bibliodesk/bibliodesk/pkg/search"
	"github.com/pkg/errors"
)

// Key is the composite (book, author) identity of a link; the upstream has no
// surrogate id for this table.
type Key struct {
	BookID   int
	AuthorID int
}

type ListBookAuthorsOptions struct {
	Search *string
}

type Service struct {
	client *biblio.Client
}

func NewService(client *biblio.Client) *Service {
	return &Service{client}
}

func (svc *Service) ListBookAuthors(ctx context.Context, opts ListBookAuthorsOptions) ([]models.BookAuthor, error) {
	dtos, err := svc.client.ListBookAuthors(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	links := make([]models.BookAuthor, 0, len(dtos))
	for _, dto := range dtos {
		links = append(links, models.NormalizeBookAuthor(dto))
	}
	if opts.Search != nil {
		links = search.Filter(links, *opts.Search)
	}
	return links, nil
}

func (svc *Service) RetrieveBookAuthor(ctx context.Context, key Key) (*models.BookAuthor, error) {
	dto, err := svc.client.RetrieveBookAuthor(ctx, key.BookID, key.AuthorID)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	link := models.NormalizeBookAuthor(*dto)
	return &link, nil
}

func (svc *Service) CreateBookAuthor(ctx context.Context, params CreateBookAuthorPayload) (*models.BookAuthor, error) {
	dto, err := svc.client.CreateBookAuthor(ctx, params.BookID, params.AuthorID, params.Role)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	link := models.NormalizeBookAuthor(*dto)
	return &link, nil
}

func (svc *Service) UpdateBookAuthor(ctx context.Context, key Key, params UpdateBookAuthorPayload) (*models.BookAuthor, error) {
	dto, err := svc.client.UpdateBookAuthor(ctx, key.BookID, key.AuthorID, biblio.UpdateBookAuthorOptions{
		Role: params.Role,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	link := models.NormalizeBookAuthor(*dto)
	return &link, nil
}

func (svc *Service) DeleteBookAuthor(ctx context.Context, key Key) error {
	return errors.WithStack(svc.client.DeleteBookAuthor(ctx, key.BookID, key.AuthorID))
}
