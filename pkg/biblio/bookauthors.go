package biblio

import (
	"context"
	"net/url"
	"strconv"

	"github.com/bibliodesk/bibliodesk/pkg/models"
)

const bookAuthorsPath = "/LibroAutores"

func (c *Client) ListBookAuthors(ctx context.Context) ([]models.BookAuthorDTO, error) {
	var dtos []models.BookAuthorDTO
	err := c.get(ctx, bookAuthorsPath, &dtos, "list book-author links")
	return dtos, err
}

// RetrieveBookAuthor addresses a link by its composite (book, author) key.
func (c *Client) RetrieveBookAuthor(ctx context.Context, bookID, authorID int) (*models.BookAuthorDTO, error) {
	dto := &models.BookAuthorDTO{}
	path := joinSegments(bookAuthorsPath, strconv.Itoa(bookID), strconv.Itoa(authorID))
	err := c.get(ctx, path, dto, "retrieve book-author link")
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (c *Client) CreateBookAuthor(ctx context.Context, bookID, authorID int, role string) (*models.BookAuthorDTO, error) {
	dto := &models.BookAuthorDTO{}
	path := joinSegments(bookAuthorsPath, strconv.Itoa(bookID), strconv.Itoa(authorID), role)
	err := c.post(ctx, path, dto, "create book-author link")
	if err != nil {
		return nil, err
	}
	return dto, nil
}

type UpdateBookAuthorOptions struct {
	Role *string
}

func (c *Client) UpdateBookAuthor(ctx context.Context, bookID, authorID int, opts UpdateBookAuthorOptions) (*models.BookAuthorDTO, error) {
	q := url.Values{}
	setString(q, "rol", opts.Role)

	dto := &models.BookAuthorDTO{}
	path := joinSegments(bookAuthorsPath, strconv.Itoa(bookID), strconv.Itoa(authorID))
	err := c.put(ctx, path, q, dto, "update book-author link")
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (c *Client) DeleteBookAuthor(ctx context.Context, bookID, authorID int) error {
	path := joinSegments(bookAuthorsPath, strconv.Itoa(bookID), strconv.Itoa(authorID))
	return c.delete(ctx, path, "delete book-author link")
}
