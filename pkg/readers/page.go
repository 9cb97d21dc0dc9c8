package readers

import (
	"context"

	"github.com/bibliodesk/bibliodesk/pkg/binder"
	"github.com/bibliodesk/bibliodesk/pkg/models"
	"github.com/bibliodesk/bibliodesk/pkg/pages"
	"github.com/bibliodesk/bibliodesk/pkg/people"
	"github.com/pkg/errors"
)

// Page is the reader controller plus the people list its form's person
// selector needs. Both load concurrently on Reload.
type Page struct {
	*pages.Controller[models.Reader, int]

	people pages.Collection[models.Person]
}

func NewPage(svc *Service, personService *people.Service, b *binder.Binder, notifier pages.Notifier) *Page {
	p := &Page{}
	p.Controller = pages.New(pages.Config[models.Reader, int]{
		Name: "Reader",
		Load: func(ctx context.Context) ([]models.Reader, error) {
			return svc.ListReaders(ctx, ListReadersOptions{})
		},
		Siblings: []pages.SiblingLoader{
			pages.Sibling("people", func(ctx context.Context) ([]models.Person, error) {
				return personService.ListPeople(ctx, people.ListPeopleOptions{})
			}, &p.people),
		},
		Validate: func(ctx context.Context, values interface{}) []binder.FieldError {
			return b.Check(ctx, values)
		},
		Create: func(ctx context.Context, values interface{}) error {
			params, ok := values.(*CreateReaderPayload)
			if !ok {
				return errors.Errorf("unexpected payload type %T", values)
			}
			_, err := svc.CreateReader(ctx, *params)
			return err
		},
		Update: func(ctx context.Context, id int, values interface{}) error {
			params, ok := values.(*UpdateReaderPayload)
			if !ok {
				return errors.Errorf("unexpected payload type %T", values)
			}
			_, err := svc.UpdateReader(ctx, id, *params)
			return err
		},
		Delete: svc.DeleteReader,
		Key:    func(r models.Reader) int { return r.ID },
	}, notifier)
	return p
}

// People returns the person options for the form selector.
func (p *Page) People() []models.Person {
	return p.people.Items()
}
