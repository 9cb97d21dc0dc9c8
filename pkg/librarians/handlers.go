package librarians

import (
	"net/http"
	"strconv"

	"github.com/bibliodesk/bibliodesk/pkg/errcodes"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	librarianService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	params := ListLibrariansQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	librarians, err := h.librarianService.ListLibrarians(ctx, ListLibrariansOptions{
		Search: params.Search,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	response := map[string]any{
		"librarians": librarians,
		"total":      len(librarians),
	}
	return errors.WithStack(c.JSON(http.StatusOK, response))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Librarian")
	}

	librarian, err := h.librarianService.RetrieveLibrarian(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, librarian))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateLibrarianPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	librarian, err := h.librarianService.CreateLibrarian(ctx, params)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, librarian))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Librarian")
	}

	params := UpdateLibrarianPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	librarian, err := h.librarianService.UpdateLibrarian(ctx, id, params)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, librarian))
}

func (h *handler) deleteLibrarian(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Librarian")
	}

	if err := h.librarianService.DeleteLibrarian(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
