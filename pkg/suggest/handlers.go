package suggest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type SuggestPayload struct {
	Prompt string `json:"prompt" mod:"trim" validate:"required,min=3,max=500"`
}

type handler struct {
	suggester Suggester
}

func (h *handler) suggest(c echo.Context) error {
	ctx := c.Request().Context()

	params := SuggestPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	suggestion, err := h.suggester.Suggest(ctx, params.Prompt)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, suggestion))
}

// RegisterRoutesWithGroup registers the AI book-entry route on a
// pre-configured group.
func RegisterRoutesWithGroup(g *echo.Group, suggester Suggester) {
	h := &handler{suggester: suggester}

	g.POST("", h.suggest)
}
