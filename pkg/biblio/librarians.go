package biblio

import (
	"context"
	"net/url"
	"strconv"

	"github.com/bibliodesk/bibliodesk/pkg/models"
)

const librariansPath = "/Bibliotecarios"

func (c *Client) ListLibrarians(ctx context.Context) ([]models.LibrarianDTO, error) {
	var dtos []models.LibrarianDTO
	err := c.get(ctx, librariansPath, &dtos, "list librarians")
	return dtos, err
}

func (c *Client) RetrieveLibrarian(ctx context.Context, id int) (*models.LibrarianDTO, error) {
	dto := &models.LibrarianDTO{}
	err := c.get(ctx, idPath(librariansPath, id), dto, "retrieve librarian")
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (c *Client) CreateLibrarian(ctx context.Context, personID int, hireDate, shift string) (*models.LibrarianDTO, error) {
	dto := &models.LibrarianDTO{}
	path := joinSegments(librariansPath, strconv.Itoa(personID), nullSegment(hireDate), shift)
	err := c.post(ctx, path, dto, "create librarian")
	if err != nil {
		return nil, err
	}
	return dto, nil
}

type UpdateLibrarianOptions struct {
	PersonID *int
	HireDate *string
	Shift    *string
}

func (c *Client) UpdateLibrarian(ctx context.Context, id int, opts UpdateLibrarianOptions) (*models.LibrarianDTO, error) {
	q := url.Values{}
	setInt(q, "idPersona", opts.PersonID)
	setDate(q, "fechaContratacion", opts.HireDate)
	setString(q, "turno", opts.Shift)

	dto := &models.LibrarianDTO{}
	err := c.put(ctx, idPath(librariansPath, id), q, dto, "update librarian")
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (c *Client) DeleteLibrarian(ctx context.Context, id int) error {
	return c.delete(ctx, idPath(librariansPath, id), "delete librarian")
}
