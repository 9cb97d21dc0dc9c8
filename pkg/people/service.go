package people

import (
	"context"

	"github.com/bibliodesk/bibliodesk/pkg/biblio"
	"github.com/bibliodesk/bibliodesk/pkg/models"
	"github.com/bibliodesk/bibliodesk/pkg/search"
	"github.com/pkg/errors"
)

type ListPeopleOptions struct {
	Search *string
}

type Service struct {
	client *biblio.Client
}

func NewService(client *biblio.Client) *Service {
	return &Service{client}
}

func (svc *Service) ListPeople(ctx context.Context, opts ListPeopleOptions) ([]models.Person, error) {
	dtos, err := svc.client.ListPeople(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	people := make([]models.Person, 0, len(dtos))
	for _, dto := range dtos {
		people = append(people, models.NormalizePerson(dto))
	}
	if opts.Search != nil {
		people = search.Filter(people, *opts.Search)
	}
	return people, nil
}

func (svc *Service) RetrievePerson(ctx context.Context, id int) (*models.Person, error) {
	dto, err := svc.client.RetrievePerson(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	person := models.NormalizePerson(*dto)
	return &person, nil
}

func (svc *Service) CreatePerson(ctx context.Context, params CreatePersonPayload) (*models.Person, error) {
	dto, err := svc.client.CreatePerson(ctx, params.Name, params.Surname, params.Document, params.BirthDate, params.Email, params.Phone, params.Address)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	person := models.NormalizePerson(*dto)
	return &person, nil
}

func (svc *Service) UpdatePerson(ctx context.Context, id int, params UpdatePersonPayload) (*models.Person, error) {
	dto, err := svc.client.UpdatePerson(ctx, id, biblio.UpdatePersonOptions{
		Name:      params.Name,
		Surname:   params.Surname,
		Document:  params.Document,
		BirthDate: params.BirthDate,
		Email:     params.Email,
		Phone:     params.Phone,
		Address:   params.Address,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	person := models.NormalizePerson(*dto)
	return &person, nil
}

func (svc *Service) DeletePerson(ctx context.Context, id int) error {
	return errors.WithStack(svc.client.DeletePerson(ctx, id))
}
