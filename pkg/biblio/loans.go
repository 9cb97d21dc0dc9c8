package biblio

import (
	"context"
	"net/url"
	"strconv"

	"github.com/bibliodesk/bibliodesk/pkg/models"
)

const loansPath = "/Prestamos"

func (c *Client) ListLoans(ctx context.Context) ([]models.LoanDTO, error) {
	var dtos []models.LoanDTO
	err := c.get(ctx, loansPath, &dtos, "list loans")
	return dtos, err
}

func (c *Client) RetrieveLoan(ctx context.Context, id int) (*models.LoanDTO, error) {
	dto := &models.LoanDTO{}
	err := c.get(ctx, idPath(loansPath, id), dto, "retrieve loan")
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (c *Client) CreateLoan(ctx context.Context, readerID, librarianID, copyID int, loanDate, returnDate string) (*models.LoanDTO, error) {
	dto := &models.LoanDTO{}
	path := joinSegments(loansPath,
		strconv.Itoa(readerID),
		strconv.Itoa(librarianID),
		strconv.Itoa(copyID),
		loanDate,
		returnDate,
	)
	err := c.post(ctx, path, dto, "create loan")
	if err != nil {
		return nil, err
	}
	return dto, nil
}

type UpdateLoanOptions struct {
	ReaderID    *int
	LibrarianID *int
	CopyID      *int
	LoanDate    *string
	ReturnDate  *string
}

func (c *Client) UpdateLoan(ctx context.Context, id int, opts UpdateLoanOptions) (*models.LoanDTO, error) {
	q := url.Values{}
	setInt(q, "idLector", opts.ReaderID)
	setInt(q, "idBibliotecario", opts.LibrarianID)
	setInt(q, "idEjemplar", opts.CopyID)
	setDate(q, "fechaPrestamo", opts.LoanDate)
	setDate(q, "fechaDevolucion", opts.ReturnDate)

	dto := &models.LoanDTO{}
	err := c.put(ctx, idPath(loansPath, id), q, dto, "update loan")
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (c *Client) DeleteLoan(ctx context.Context, id int) error {
	return c.delete(ctx, idPath(loansPath, id), "delete loan")
}
