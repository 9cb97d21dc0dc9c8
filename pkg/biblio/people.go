package biblio

import (
	"context"
	"net/url"

	"github.com/bibliodesk/bibliodesk/pkg/models"
)

const peoplePath = "/Personas"

func (c *Client) ListPeople(ctx context.Context) ([]models.PersonDTO, error) {
	var dtos []models.PersonDTO
	err := c.get(ctx, peoplePath, &dtos, "list people")
	return dtos, err
}

func (c *Client) RetrievePerson(ctx context.Context, id int) (*models.PersonDTO, error) {
	dto := &models.PersonDTO{}
	err := c.get(ctx, idPath(peoplePath, id), dto, "retrieve person")
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (c *Client) CreatePerson(ctx context.Context, name, surname, document, birthDate, email, phone, address string) (*models.PersonDTO, error) {
	dto := &models.PersonDTO{}
	path := joinSegments(peoplePath, name, surname, document, birthDate, email, phone, address)
	err := c.post(ctx, path, dto, "create person")
	if err != nil {
		return nil, err
	}
	return dto, nil
}

type UpdatePersonOptions struct {
	Name      *string
	Surname   *string
	Document  *string
	BirthDate *string
	Email     *string
	Phone     *string
	Address   *string
}

func (c *Client) UpdatePerson(ctx context.Context, id int, opts UpdatePersonOptions) (*models.PersonDTO, error) {
	q := url.Values{}
	setString(q, "nombre", opts.Name)
	setString(q, "apellido", opts.Surname)
	setString(q, "documentoIdentidad", opts.Document)
	setDate(q, "fechaNacimiento", opts.BirthDate)
	setString(q, "correo", opts.Email)
	setString(q, "telefono", opts.Phone)
	setString(q, "direccion", opts.Address)

	dto := &models.PersonDTO{}
	err := c.put(ctx, idPath(peoplePath, id), q, dto, "update person")
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (c *Client) DeletePerson(ctx context.Context, id int) error {
	return c.delete(ctx, idPath(peoplePath, id), "delete person")
}
