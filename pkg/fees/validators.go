package fees

type ListFeesQuery struct {
	Search *string `query:"search" json:"search,omitempty" validate:"omitempty,max=100"`
}

type CreateFeePayload struct {
	LoanID   int `json:"idPrestamo" validate:"required,min=1"`
	DaysLate int `json:"diasRetraso" validate:"min=0"`
	Amount   int `json:"montoTarifa" validate:"min=0"`
}

type UpdateFeePayload struct {
	LoanID   *int `json:"idPrestamo,omitempty" validate:"omitempty,min=1"`
	DaysLate *int `json:"diasRetraso,omitempty" validate:"omitempty,min=0"`
	Amount   *int `json:"montoTarifa,omitempty" validate:"omitempty,min=0"`
}
