package bookauthors

import (
	"net/http"
	"strconv"

	"github.com/bibliodesk/bibliodesk/pkg/errcodes"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	bookAuthorService *Service
}

func compositeKey(c echo.Context) (Key, error) {
	bookID, err := strconv.Atoi(c.Param("bookID"))
	if err != nil {
		return Key{}, errcodes.NotFound("Book author")
	}
	authorID, err := strconv.Atoi(c.Param("authorID"))
	if err != nil {
		return Key{}, errcodes.NotFound("Book author")
	}
	return Key{BookID: bookID, AuthorID: authorID}, nil
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	params := ListBookAuthorsQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	links, err := h.bookAuthorService.ListBookAuthors(ctx, ListBookAuthorsOptions{
		Search: params.Search,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	response := map[string]any{
		"book_authors": links,
		"total":        len(links),
	}
	return errors.WithStack(c.JSON(http.StatusOK, response))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	key, err := compositeKey(c)
	if err != nil {
		return err
	}

	link, err := h.bookAuthorService.RetrieveBookAuthor(ctx, key)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, link))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateBookAuthorPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	link, err := h.bookAuthorService.CreateBookAuthor(ctx, params)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, link))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	key, err := compositeKey(c)
	if err != nil {
		return err
	}

	params := UpdateBookAuthorPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	link, err := h.bookAuthorService.UpdateBookAuthor(ctx, key, params)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, link))
}

func (h *handler) deleteBookAuthor(c echo.Context) error {
	ctx := c.Request().Context()
	key, err := compositeKey(c)
	if err != nil {
		return err
	}

	if err := h.bookAuthorService.DeleteBookAuthor(ctx, key); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
