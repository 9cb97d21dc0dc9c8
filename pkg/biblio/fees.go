package biblio

import (
	"context"
	"net/url"
	"strconv"

	"github.com/bibliodesk/bibliodesk/pkg/models"
)

const feesPath = "/Tarifas"

func (c *Client) ListFees(ctx context.Context) ([]models.FeeDTO, error) {
	var dtos []models.FeeDTO
	err := c.get(ctx, feesPath, &dtos, "list fees")
	return dtos, err
}

func (c *Client) RetrieveFee(ctx context.Context, id int) (*models.FeeDTO, error) {
	dto := &models.FeeDTO{}
	err := c.get(ctx, idPath(feesPath, id), dto, "retrieve fee")
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (c *Client) CreateFee(ctx context.Context, loanID, daysLate, amount int) (*models.FeeDTO, error) {
	dto := &models.FeeDTO{}
	path := joinSegments(feesPath, strconv.Itoa(loanID), strconv.Itoa(daysLate), strconv.Itoa(amount))
	err := c.post(ctx, path, dto, "create fee")
	if err != nil {
		return nil, err
	}
	return dto, nil
}

type UpdateFeeOptions struct {
	LoanID   *int
	DaysLate *int
	Amount   *int
}

func (c *Client) UpdateFee(ctx context.Context, id int, opts UpdateFeeOptions) (*models.FeeDTO, error) {
	q := url.Values{}
	setInt(q, "idPrestamo", opts.LoanID)
	setInt(q, "diasRetraso", opts.DaysLate)
	setInt(q, "montoTarifa", opts.Amount)

	dto := &models.FeeDTO{}
	err := c.put(ctx, idPath(feesPath, id), q, dto, "update fee")
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (c *Client) DeleteFee(ctx context.Context, id int) error {
	return c.delete(ctx, idPath(feesPath, id), "delete fee")
}
