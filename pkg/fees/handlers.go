package fees

import (
	"net/http"
	"strconv"

	"github.com/bibliodesk/bibliodesk/pkg/errcodes"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	feeService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	params := ListFeesQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	fees, err := h.feeService.ListFees(ctx, ListFeesOptions{
		Search: params.Search,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	response := map[string]any{
		"fees":  fees,
		"total": len(fees),
	}
	return errors.WithStack(c.JSON(http.StatusOK, response))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Fee")
	}

	fee, err := h.feeService.RetrieveFee(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, fee))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateFeePayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	fee, err := h.feeService.CreateFee(ctx, params)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, fee))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Fee")
	}

	params := UpdateFeePayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	fee, err := h.feeService.UpdateFee(ctx, id, params)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, fee))
}

func (h *handler) deleteFee(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Fee")
	}

	if err := h.feeService.DeleteFee(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
