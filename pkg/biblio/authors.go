package biblio

import (
	"context"
	"net/url"

	"github.com/bibliodesk/bibliodesk/pkg/models"
)

const authorsPath = "/Autores"

func (c *Client) ListAuthors(ctx context.Context) ([]models.AuthorDTO, error) {
	var dtos []models.AuthorDTO
	err := c.get(ctx, authorsPath, &dtos, "list authors")
	return dtos, err
}

func (c *Client) RetrieveAuthor(ctx context.Context, id int) (*models.AuthorDTO, error) {
	dto := &models.AuthorDTO{}
	err := c.get(ctx, idPath(authorsPath, id), dto, "retrieve author")
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// CreateAuthor sends the birth date as the null token when absent; it is the
// only optional field an author has.
func (c *Client) CreateAuthor(ctx context.Context, name, surname, birthDate, nationality string) (*models.AuthorDTO, error) {
	dto := &models.AuthorDTO{}
	path := joinSegments(authorsPath, name, surname, nullSegment(birthDate), nationality)
	err := c.post(ctx, path, dto, "create author")
	if err != nil {
		return nil, err
	}
	return dto, nil
}

type UpdateAuthorOptions struct {
	Name        *string
	Surname     *string
	BirthDate   *string
	Nationality *string
}

func (c *Client) UpdateAuthor(ctx context.Context, id int, opts UpdateAuthorOptions) (*models.AuthorDTO, error) {
	q := url.Values{}
	setString(q, "nombre", opts.Name)
	setString(q, "apellido", opts.Surname)
	setDate(q, "fechaNacimiento", opts.BirthDate)
	setString(q, "nacionalidad", opts.Nationality)

	dto := &models.AuthorDTO{}
	err := c.put(ctx, idPath(authorsPath, id), q, dto, "update author")
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (c *Client) DeleteAuthor(ctx context.Context, id int) error {
	return c.delete(ctx, idPath(authorsPath, id), "delete author")
}
