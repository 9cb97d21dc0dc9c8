package authors

type ListAuthorsQuery struct {
	Search *string `query:"search" json:"search,omitempty" validate:"omitempty,max=100"`
}

type CreateAuthorPayload struct {
	Name    string `json:"nombre" mod:"trim" validate:"required,max=100"`
	Surname string `json:"apellido" mod:"trim" validate:"required,max=100"`
	// Optional; empty travels as the upstream null token.
	BirthDate   string `json:"fechaNacimiento" mod:"trim" validate:"omitempty,date"`
	Nationality string `json:"nacionalidad" mod:"trim" validate:"required,max=100"`
}

type UpdateAuthorPayload struct {
	Name    *string `json:"nombre,omitempty" mod:"trim" validate:"omitempty,min=1,max=100"`
	Surname *string `json:"apellido,omitempty" mod:"trim" validate:"omitempty,min=1,max=100"`
	// Present-but-empty clears the stored date; omitempty lets that through.
	BirthDate   *string `json:"fechaNacimiento,omitempty" mod:"trim" validate:"omitempty,date"`
	Nationality *string `json:"nacionalidad,omitempty" mod:"trim" validate:"omitempty,min=1,max=100"`
}
