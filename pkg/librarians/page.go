package librarians

import (
	"context"

	"github.com/bibliodesk/bibliodesk/pkg/binder"
	"github.com/bibliodesk/bibliodesk/pkg/models"
	"github.com/bibliodesk/bibliodesk/pkg/pages"
	"github.com/bibliodesk/bibliodesk/pkg/people"
	"github.com/pkg/errors"
)

// Page is the librarian controller plus the people list its form's person
// selector needs. Both load concurrently on Reload.
type Page struct {
	*pages.Controller[models.Librarian, int]

	people pages.Collection[models.Person]
}

func NewPage(svc *Service, personService *people.Service, b *binder.Binder, notifier pages.Notifier) *Page {
	p := &Page{}
	p.Controller = pages.New(pages.Config[models.Librarian, int]{
		Name: "Librarian",
		Load: func(ctx context.Context) ([]models.Librarian, error) {
			return svc.ListLibrarians(ctx, ListLibrariansOptions{})
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
			params, ok := values.(*CreateLibrarianPayload)
			if !ok {
				return errors.Errorf("unexpected payload type %T", values)
			}
			_, err := svc.CreateLibrarian(ctx, *params)
			return err
		},
		Update: func(ctx context.Context, id int, values interface{}) error {
			params, ok := values.(*UpdateLibrarianPayload)
			if !ok {
				return errors.Errorf("unexpected payload type %T", values)
			}
			_, err := svc.UpdateLibrarian(ctx, id, *params)
			return err
		},
		Delete: svc.DeleteLibrarian,
		Key:    func(l models.Librarian) int { return l.ID },
	}, notifier)
	return p
}

// People returns the person options for the form selector.
func (p *Page) People() []models.Person {
	return p.people.Items()
}
