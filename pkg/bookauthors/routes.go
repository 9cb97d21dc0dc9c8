package bookauthors

import (
	"github.com/bibliodesk/bibliodesk/pkg/biblio"
	"github.com/labstack/echo/v4"
)

// RegisterRoutesWithGroup registers book-author link routes on a
// pre-configured group. The link has no surrogate id, so item routes carry
// both halves of the composite key.
func RegisterRoutesWithGroup(g *echo.Group, client *biblio.Client) {
	bookAuthorService := NewService(client)

	h := &handler{
		bookAuthorService: bookAuthorService,
	}

	g.GET("", h.list)
	g.GET("/:bookID/:authorID", h.retrieve)
	g.POST("", h.create)
	g.PATCH("/:bookID/:authorID", h.update)
	g.DELETE("/:bookID/:authorID", h.deleteBookAuthor)
}
