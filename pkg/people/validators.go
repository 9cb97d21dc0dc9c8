package people

type ListPeopleQuery struct {
	Search *string `query:"search" json:"search,omitempty" validate:"omitempty,max=100"`
}

type CreatePersonPayload struct {
	Name      string `json:"nombre" mod:"trim" validate:"required,max=100"`
	Surname   string `json:"apellido" mod:"trim" validate:"required,max=100"`
	Document  string `json:"documentoIdentidad" mod:"trim" validate:"required,max=50"`
	BirthDate string `json:"fechaNacimiento" mod:"trim" validate:"required,date"`
	Email     string `json:"correo" mod:"trim" validate:"required,email"`
	Phone     string `json:"telefono" mod:"trim" validate:"required,max=30"`
	Address   string `json:"direccion" mod:"trim" validate:"required,max=200"`
}

type UpdatePersonPayload struct {
	Name      *string `json:"nombre,omitempty" mod:"trim" validate:"omitempty,min=1,max=100"`
	Surname   *string `json:"apellido,omitempty" mod:"trim" validate:"omitempty,min=1,max=100"`
	Document  *string `json:"documentoIdentidad,omitempty" mod:"trim" validate:"omitempty,min=1,max=50"`
	BirthDate *string `json:"fechaNacimiento,omitempty" mod:"trim" validate:"omitempty,date"`
	Email     *string `json:"correo,omitempty" mod:"trim" validate:"omitempty,email"`
	Phone     *string `json:"telefono,omitempty" mod:"trim" validate:"omitempty,min=1,max=30"`
	Address   *string `json:"direccion,omitempty" mod:"trim" validate:"omitempty,min=1,max=200"`
}
