package librarians

import (
	"github.com/bibliodesk/bibliodesk/pkg/biblio"
	"github.com/labstack/echo/v4"
)

// RegisterRoutesWithGroup registers librarian routes on a pre-configured group.
func RegisterRoutesWithGroup(g *echo.Group, client *biblio.Client) {
	librarianService := NewService(client)

	h := &handler{
		librarianService: librarianService,
	}

	g.GET("", h.list)
	g.GET("/:id", h.retrieve)
	g.POST("", h.create)
	g.PATCH("/:id", h.update)
	g.DELETE("/:id", h.deleteLibrarian)
}
