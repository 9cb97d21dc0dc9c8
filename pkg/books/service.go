package books

import (
	"context"

	"github.com/bibliodesk/bibliodesk/pkg/biblio"
	"github.com/bibliodesk/bibliodesk/pkg/models"
	"github.com/bibliodesk/bibliodesk/pkg/search"
	"github.com/pkg/errors"
)

type ListBooksOptions struct {
	Search *string
}

type Service struct {
	client *biblio.Client
}

func NewService(client *biblio.Client) *Service {
	return &Service{client}
}

func (svc *Service) ListBooks(ctx context.Context, opts ListBooksOptions) ([]models.Book, error) {
	dtos, err := svc.client.ListBooks(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	books := make([]models.Book, 0, len(dtos))
	for _, dto := range dtos {
		books = append(books, models.NormalizeBook(dto))
	}
	if opts.Search != nil {
		books = search.Filter(books, *opts.Search)
	}
	return books, nil
}

func (svc *Service) RetrieveBook(ctx context.Context, id int) (*models.Book, error) {
	dto, err := svc.client.RetrieveBook(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	book := models.NormalizeBook(*dto)
	return &book, nil
}

func (svc *Service) CreateBook(ctx context.Context, params CreateBookPayload) (*models.Book, error) {
	dto, err := svc.client.CreateBook(ctx, params.Title, params.PublicationYear, params.PublisherID)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	book := models.NormalizeBook(*dto)
	return &book, nil
}

func (svc *Service) UpdateBook(ctx context.Context, id int, params UpdateBookPayload) (*models.Book, error) {
	dto, err := svc.client.UpdateBook(ctx, id, biblio.UpdateBookOptions{
		Title:           params.Title,
		PublicationYear: params.PublicationYear,
		PublisherID:     params.PublisherID,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	book := models.NormalizeBook(*dto)
	return &book, nil
}

func (svc *Service) DeleteBook(ctx context.Context, id int) error {
	return errors.WithStack(svc.client.DeleteBook(ctx, id))
}
