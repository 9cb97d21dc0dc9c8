package people

import (
	"context"

	"github.com/bibliodesk/bibliodesk/pkg/binder"
	"github.com/bibliodesk/bibliodesk/pkg/models"
	"github.com/bibliodesk/bibliodesk/pkg/pages"
	"github.com/pkg/errors"
)

// NewPage wires the person list/form/delete state machine to the service.
func NewPage(svc *Service, b *binder.Binder, notifier pages.Notifier) *pages.Controller[models.Person, int] {
	return pages.New(pages.Config[models.Person, int]{
		Name: "Person",
		Load: func(ctx context.Context) ([]models.Person, error) {
			return svc.ListPeople(ctx, ListPeopleOptions{})
		},
		Validate: func(ctx context.Context, values interface{}) []binder.FieldError {
			return b.Check(ctx, values)
		},
		Create: func(ctx context.Context, values interface{}) error {
			params, ok := values.(*CreatePersonPayload)
			if !ok {
				return errors.Errorf("unexpected payload type %T", values)
			}
			_, err := svc.CreatePerson(ctx, *params)
			return err
		},
		Update: func(ctx context.Context, id int, values interface{}) error {
			params, ok := values.(*UpdatePersonPayload)
			if !ok {
				return errors.Errorf("unexpected payload type %T", values)
			}
			_, err := svc.UpdatePerson(ctx, id, *params)
			return err
		},
		Delete: svc.DeletePerson,
		Key:    func(p models.Person) int { return p.ID },
	}, notifier)
}
