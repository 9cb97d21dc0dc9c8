package readers

type ListReadersQuery struct {
	Search *string `query:"search" json:"search,omitempty" validate:"omitempty,max=100"`
}

type CreateReaderPayload struct {
	PersonID int `json:"idPersona" validate:"required,min=1"`
	// Optional; empty travels as the upstream null token.
	RegisteredAt string `json:"fechaRegistro" mod:"trim" validate:"omitempty,date"`
	Occupation   string `json:"ocupacion" mod:"trim" validate:"required,max=100"`
}

type UpdateReaderPayload struct {
	PersonID *int `json:"idPersona,omitempty" validate:"omitempty,min=1"`
	// Present-but-empty clears the stored date.
	RegisteredAt *string `json:"fechaRegistro,omitempty" mod:"trim" validate:"omitempty,date"`
	Occupation   *string `json:"ocupacion,omitempty" mod:"trim" validate:"omitempty,min=1,max=100"`
}
