package authors

import (
	"github.com/bibliodesk/bibliodesk/pkg/biblio"
	"github.com/labstack/echo/v4"
)

// RegisterRoutesWithGroup registers author routes on a pre-configured group.
func RegisterRoutesWithGroup(g *echo.Group, client *biblio.Client) {
	authorService := NewService(client)

	h := &handler{
		authorService: authorService,
	}

	g.GET("", h.list)
	g.GET("/:id", h.retrieve)
	g.POST("", h.create)
	g.PATCH("/:id", h.update)
	g.DELETE("/:id", h.deleteAuthor)
}
