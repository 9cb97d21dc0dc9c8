package models

import "strconv"

type FeeDTO struct {
	ID       FlexInt `json:"idTarifa"`
	LoanID   FlexInt `json:"idPrestamo"`
	DaysLate FlexInt `json:"diasRetraso"`
	Amount   FlexInt `json:"montoTarifa"`
}

type Fee struct {
	ID       int `json:"idTarifa"`
	LoanID   int `json:"idPrestamo"`
	DaysLate int `json:"diasRetraso"`
	Amount   int `json:"montoTarifa"`
}

func NormalizeFee(dto FeeDTO) Fee {
	return Fee{
		ID:       dto.ID.Int(),
		LoanID:   dto.LoanID.Int(),
		DaysLate: dto.DaysLate.Int(),
		Amount:   dto.Amount.Int(),
	}
}

func (f Fee) SearchFields() []string {
	return []string{
		strconv.Itoa(f.ID),
		strconv.Itoa(f.LoanID),
		strconv.Itoa(f.DaysLate),
		strconv.Itoa(f.Amount),
	}
}
