package models

import "strconv"

// PersonDTO is the raw upstream payload for a person row. Field names follow
// the upstream's wire vocabulary.
type PersonDTO struct {
	ID        FlexInt `json:"idPersona"`
	Name      string  `json:"nombre"`
	Surname   string  `json:"apellido"`
	Document  string  `json:"documentoIdentidad"`
	BirthDate string  `json:"fechaNacimiento"`
	Email     string  `json:"correo"`
	Phone     string  `json:"telefono"`
	Address   string  `json:"direccion"`
}

// Person is the canonical display record for a person.
type Person struct {
	ID        int    `json:"idPersona"`
	Name      string `json:"nombre"`
	Surname   string `json:"apellido"`
	Document  string `json:"documentoIdentidad"`
	BirthDate string `json:"fechaNacimiento"`
	Email     string `json:"correo"`
	Phone     string `json:"telefono"`
	Address   string `json:"direccion"`
}

func NormalizePerson(dto PersonDTO) Person {
	return Person{
		ID:        dto.ID.Int(),
		Name:      dto.Name,
		Surname:   dto.Surname,
		Document:  dto.Document,
		BirthDate: CleanDate(dto.BirthDate),
		Email:     dto.Email,
		Phone:     dto.Phone,
		Address:   dto.Address,
	}
}

func (p Person) SearchFields() []string {
	return []string{
		strconv.Itoa(p.ID),
		p.Name,
		p.Surname,
		p.Document,
		p.Email,
		p.Phone,
		p.Address,
	}
}
