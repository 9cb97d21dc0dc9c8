package authors

import (
	"context"

	"github.com/bibliodesk/bibliodesk/pkg/binder"
	"github.com/bibliodesk/bibliodesk/pkg/models"
	"github.com/bibliodesk/bibliodesk/pkg/pages"
	"github.com/pkg/errors"
)

// NewPage wires the author list/form/delete state machine to the service.
func NewPage(svc *Service, b *binder.Binder, notifier pages.Notifier) *pages.Controller[models.Author, int] {
	return pages.New(pages.Config[models.Author, int]{
		Name: "Author",
		Load: func(ctx context.Context) ([]models.Author, error) {
			return svc.ListAuthors(ctx, ListAuthorsOptions{})
		},
		Validate: func(ctx context.Context, values interface{}) []binder.FieldError {
			return b.Check(ctx, values)
		},
		Create: func(ctx context.Context, values interface{}) error {
			params, ok := values.(*CreateAuthorPayload)
			if !ok {
				return errors.Errorf("unexpected payload type %T", values)
			}
			_, err := svc.CreateAuthor(ctx, *params)
			return err
		},
		Update: func(ctx context.Context, id int, values interface{}) error {
			params, ok := values.(*UpdateAuthorPayload)
			if !ok {
				return errors.Errorf("unexpected payload type %T", values)
			}
			_, err := svc.UpdateAuthor(ctx, id, *params)
			return err
		},
		Delete: svc.DeleteAuthor,
		Key:    func(a models.Author) int { return a.ID },
	}, notifier)
}
