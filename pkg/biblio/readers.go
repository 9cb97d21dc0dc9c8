package biblio

import (
	"context"
	"net/url"
	"strconv"

	"github.com/bibliodesk/bibliodesk/pkg/models"
)

const readersPath = "/Lectores"

func (c *Client) ListReaders(ctx context.Context) ([]models.ReaderDTO, error) {
	var dtos []models.ReaderDTO
	err := c.get(ctx, readersPath, &dtos, "list readers")
	return dtos, err
}

func (c *Client) RetrieveReader(ctx context.Context, id int) (*models.ReaderDTO, error) {
	dto := &models.ReaderDTO{}
	err := c.get(ctx, idPath(readersPath, id), dto, "retrieve reader")
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (c *Client) CreateReader(ctx context.Context, personID int, registeredAt, occupation string) (*models.ReaderDTO, error) {
	dto := &models.ReaderDTO{}
	path := joinSegments(readersPath, strconv.Itoa(personID), nullSegment(registeredAt), occupation)
	err := c.post(ctx, path, dto, "create reader")
	if err != nil {
		return nil, err
	}
	return dto, nil
}

type UpdateReaderOptions struct {
	PersonID     *int
	RegisteredAt *string
	Occupation   *string
}

func (c *Client) UpdateReader(ctx context.Context, id int, opts UpdateReaderOptions) (*models.ReaderDTO, error) {
	q := url.Values{}
	setInt(q, "idPersona", opts.PersonID)
	setDate(q, "fechaRegistro", opts.RegisteredAt)
	setString(q, "ocupacion", opts.Occupation)

	dto := &models.ReaderDTO{}
	err := c.put(ctx, idPath(readersPath, id), q, dto, "update reader")
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (c *Client) DeleteReader(ctx context.Context, id int) error {
	return c.delete(ctx, idPath(readersPath, id), "delete reader")
}
