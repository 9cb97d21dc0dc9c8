package publishers

import (
	"context"

	"github.com/bibliodesk/bibliodesk/pkg/binder"
	"github.com/bibliodesk/bibliodesk/pkg/models"
	"github.com/bibliodesk/bibliodesk/pkg/pages"
	"github.com/pkg/errors"
)

// NewPage wires the publisher list/form/delete state machine to the service.
func NewPage(svc *Service, b *binder.Binder, notifier pages.Notifier) *pages.Controller[models.Publisher, int] {
	return pages.New(pages.Config[models.Publisher, int]{
		Name: "Publisher",
		Load: func(ctx context.Context) ([]models.Publisher, error) {
			return svc.ListPublishers(ctx, ListPublishersOptions{})
		},
		Validate: func(ctx context.Context, values interface{}) []binder.FieldError {
			return b.Check(ctx, values)
		},
		Create: func(ctx context.Context, values interface{}) error {
			params, ok := values.(*CreatePublisherPayload)
			if !ok {
				return errors.Errorf("unexpected payload type %T", values)
			}
			_, err := svc.CreatePublisher(ctx, *params)
			return err
		},
		Update: func(ctx context.Context, id int, values interface{}) error {
			params, ok := values.(*UpdatePublisherPayload)
			if !ok {
				return errors.Errorf("unexpected payload type %T", values)
			}
			_, err := svc.UpdatePublisher(ctx, id, *params)
			return err
		},
		Delete: svc.DeletePublisher,
		Key:    func(p models.Publisher) int { return p.ID },
	}, notifier)
}
