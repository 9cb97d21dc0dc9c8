package librarians

import (
	"context"

	"github.com/bibliodesk/bibliodesk/pkg/biblio"
	"github.com/bibliodesk/bibliodesk/pkg/models"
	"github.com/bibliodesk/bibliodesk/pkg/search"
	"github.com/pkg/errors"
)

type ListLibrariansOptions struct {
	Search *string
}

type Service struct {
	client *biblio.Client
}

func NewService(client *biblio.Client) *Service {
	return &Service{client}
}

func (svc *Service) ListLibrarians(ctx context.Context, opts ListLibrariansOptions) ([]models.Librarian, error) {
	dtos, err := svc.client.ListLibrarians(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	librarians := make([]models.Librarian, 0, len(dtos))
	for _, dto := range dtos {
		librarians = append(librarians, models.NormalizeLibrarian(dto))
	}
	if opts.Search != nil {
		librarians = search.Filter(librarians, *opts.Search)
	}
	return librarians, nil
}

func (svc *Service) RetrieveLibrarian(ctx context.Context, id int) (*models.Librarian, error) {
	dto, err := svc.client.RetrieveLibrarian(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	librarian := models.NormalizeLibrarian(*dto)
	return &librarian, nil
}

func (svc *Service) CreateLibrarian(ctx context.Context, params CreateLibrarianPayload) (*models.Librarian, error) {
	dto, err := svc.client.CreateLibrarian(ctx, params.PersonID, params.HireDate, params.Shift)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	librarian := models.NormalizeLibrarian(*dto)
	return &librarian, nil
}

func (svc *Service) UpdateLibrarian(ctx context.Context, id int, params UpdateLibrarianPayload) (*models.Librarian, error) {
	dto, err := svc.client.UpdateLibrarian(ctx, id, biblio.UpdateLibrarianOptions{
		PersonID: params.PersonID,
		HireDate: params.HireDate,
		Shift:    params.Shift,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	librarian := models.NormalizeLibrarian(*dto)
	return &librarian, nil
}

func (svc *Service) DeleteLibrarian(ctx context.Context, id int) error {
	return errors.WithStack(svc.client.DeleteLibrarian(ctx, id))
}
