package models

import "strconv"

type AuthorDTO struct {
	ID          FlexInt `json:"idAutor"`
	Name        string  `json:"nombre"`
	Surname     string  `json:"apellido"`
	BirthDate   string  `json:"fechaNacimiento"`
	Nationality string  `json:"nacionalidad"`
}

type Author struct {
	ID          int    `json:"idAutor"`
	Name        string `json:"nombre"`
	Surname     string `json:"apellido"`
	BirthDate   string `json:"fechaNacimiento,omitempty"`
	Nationality string `json:"nacionalidad"`
}

func NormalizeAuthor(dto AuthorDTO) Author {
	return Author{
		ID:          dto.ID.Int(),
		Name:        dto.Name,
		Surname:     dto.Surname,
		BirthDate:   CleanDate(dto.BirthDate),
		Nationality: dto.Nationality,
	}
}

func (a Author) SearchFields() []string {
	return []string{
		strconv.Itoa(a.ID),
		a.Name,
		a.Surname,
		a.Nationality,
	}
}
