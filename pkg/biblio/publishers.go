package biblio

import (
	"context"
	"net/url"

	"github.com/bibliodesk/bibliodesk/pkg/models"
)

const publishersPath = "/Editoriales"

func (c *Client) ListPublishers(ctx context.Context) ([]models.PublisherDTO, error) {
	var dtos []models.PublisherDTO
	err := c.get(ctx, publishersPath, &dtos, "list publishers")
	return dtos, err
}

func (c *Client) RetrievePublisher(ctx context.Context, id int) (*models.PublisherDTO, error) {
	dto := &models.PublisherDTO{}
	err := c.get(ctx, idPath(publishersPath, id), dto, "retrieve publisher")
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (c *Client) CreatePublisher(ctx context.Context, name, country, city, website string) (*models.PublisherDTO, error) {
	dto := &models.PublisherDTO{}
	path := joinSegments(publishersPath, name, country, city, nullSegment(website))
	err := c.post(ctx, path, dto, "create publisher")
	if err != nil {
		return nil, err
	}
	return dto, nil
}

type UpdatePublisherOptions struct {
	Name    *string
	Country *string
	City    *string
	Website *string
}

func (c *Client) UpdatePublisher(ctx context.Context, id int, opts UpdatePublisherOptions) (*models.PublisherDTO, error) {
	q := url.Values{}
	setString(q, "nombre", opts.Name)
	setString(q, "pais", opts.Country)
	setString(q, "ciudad", opts.City)
	setString(q, "sitioWeb", opts.Website)

	dto := &models.PublisherDTO{}
	err := c.put(ctx, idPath(publishersPath, id), q, dto, "update publisher")
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (c *Client) DeletePublisher(ctx context.Context, id int) error {
	return c.delete(ctx, idPath(publishersPath, id), "delete publisher")
}
