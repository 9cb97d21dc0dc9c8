package loans

type ListLoansQuery struct {
	Search *string `query:"search" json:"search,omitempty" validate:"omitempty,max=100"`
}

type CreateLoanPayload struct {
	ReaderID    int    `json:"idLector" validate:"required,min=1"`
	LibrarianID int    `json:"idBibliotecario" validate:"required,min=1"`
	CopyID      int    `json:"idEjemplar" validate:"required,min=1"`
	LoanDate    string `json:"fechaPrestamo" mod:"trim" validate:"required,date"`
	ReturnDate  string `json:"fechaDevolucion" mod:"trim" validate:"required,date"`
}

type UpdateLoanPayload struct {
	ReaderID    *int `json:"idLector,omitempty" validate:"omitempty,min=1"`
	LibrarianID *int `json:"idBibliotecario,omitempty" validate:"omitempty,min=1"`
	CopyID      *int `json:"idEjemplar,omitempty" validate:"omitempty,min=1"`
	// Present-but-empty clears the stored date.
	LoanDate   *string `json:"fechaPrestamo,omitempty" mod:"trim" validate:"omitempty,date"`
	ReturnDate *string `json:"fechaDevolucion,omitempty" mod:"trim" validate:"omitempty,date"`
}
