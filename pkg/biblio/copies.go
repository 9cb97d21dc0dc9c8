package biblio

import (
	"context"
	"net/url"
	"strconv"

	"github.com/bibliodesk/bibliodesk/pkg/models"
)

const copiesPath = "/Ejemplares"

func (c *Client) ListCopies(ctx context.Context) ([]models.CopyDTO, error) {
	var dtos []models.CopyDTO
	err := c.get(ctx, copiesPath, &dtos, "list copies")
	return dtos, err
}

func (c *Client) RetrieveCopy(ctx context.Context, id int) (*models.CopyDTO, error) {
	dto := &models.CopyDTO{}
	err := c.get(ctx, idPath(copiesPath, id), dto, "retrieve copy")
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (c *Client) CreateCopy(ctx context.Context, bookID int, location string) (*models.CopyDTO, error) {
	dto := &models.CopyDTO{}
	path := joinSegments(copiesPath, strconv.Itoa(bookID), location)
	err := c.post(ctx, path, dto, "create copy")
	if err != nil {
		return nil, err
	}
	return dto, nil
}

type UpdateCopyOptions struct {
	BookID   *int
	Location *string
}

func (c *Client) UpdateCopy(ctx context.Context, id int, opts UpdateCopyOptions) (*models.CopyDTO, error) {
	q := url.Values{}
	setInt(q, "idLibro", opts.BookID)
	setString(q, "ubicacion", opts.Location)

	dto := &models.CopyDTO{}
	err := c.put(ctx, idPath(copiesPath, id), q, dto, "update copy")
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (c *Client) DeleteCopy(ctx context.Context, id int) error {
	return c.delete(ctx, idPath(copiesPath, id), "delete copy")
}
