package biblio

import (
	"context"
	"net/url"
	"strconv"

	"github.com/bibliodesk/bibliodesk/pkg/models"
)

const booksPath = "/Libros"

func (c *Client) ListBooks(ctx context.Context) ([]models.BookDTO, error) {
	var dtos []models.BookDTO
	err := c.get(ctx, booksPath, &dtos, "list books")
	return dtos, err
}

func (c *Client) RetrieveBook(ctx context.Context, id int) (*models.BookDTO, error) {
	dto := &models.BookDTO{}
	err := c.get(ctx, idPath(booksPath, id), dto, "retrieve book")
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// CreateBook passes the publication year positionally as text; the upstream
// stores it as text too.
func (c *Client) CreateBook(ctx context.Context, title, publicationYear string, publisherID int) (*models.BookDTO, error) {
	dto := &models.BookDTO{}
	path := joinSegments(booksPath, title, publicationYear, strconv.Itoa(publisherID))
	err := c.post(ctx, path, dto, "create book")
	if err != nil {
		return nil, err
	}
	return dto, nil
}

type UpdateBookOptions struct {
	Title           *string
	PublicationYear *string
	PublisherID     *int
}

func (c *Client) UpdateBook(ctx context.Context, id int, opts UpdateBookOptions) (*models.BookDTO, error) {
	q := url.Values{}
	setString(q, "titulo", opts.Title)
	setString(q, "anioPublicacion", opts.PublicationYear)
	setInt(q, "idEditorial", opts.PublisherID)

	dto := &models.BookDTO{}
	err := c.put(ctx, idPath(booksPath, id), q, dto, "update book")
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (c *Client) DeleteBook(ctx context.Context, id int) error {
	return c.delete(ctx, idPath(booksPath, id), "delete book")
}
