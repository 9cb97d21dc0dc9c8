package librarians

type ListLibrariansQuery struct {
	Search *string `query:"search" json:"search,omitempty" validate:"omitempty,max=100"`
}

type CreateLibrarianPayload struct {
	PersonID int `json:"idPersona" validate:"required,min=1"`
	// Optional; empty travels as the upstream null token.
	HireDate string `json:"fechaContratacion" mod:"trim" validate:"omitempty,date"`
	Shift    string `json:"turno" mod:"trim" validate:"required,max=50"`
}

type UpdateLibrarianPayload struct {
	PersonID *int `json:"idPersona,omitempty" validate:"omitempty,min=1"`
	// Present-but-empty clears the stored date.
	HireDate *string `json:"fechaContratacion,omitempty" mod:"trim" validate:"omitempty,date"`
	Shift    *string `json:"turno,omitempty" mod:"trim" validate:"omitempty,min=1,max=50"`
}
