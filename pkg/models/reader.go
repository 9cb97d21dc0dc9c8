package models

import "strconv"

// ReaderDTO mirrors LibrarianDTO: the related person may be flattened, nested
// under "personas", or absent.
type ReaderDTO struct {
	ID           FlexInt    `json:"idLector"`
	PersonID     FlexInt    `json:"idPersona"`
	Person       *PersonDTO `json:"personas"`
	RegisteredAt string     `json:"fechaRegistro"`
	Occupation   string     `json:"ocupacion"`
	Name         string     `json:"nombre"`
	Surname      string     `json:"apellido"`
	Document     string     `json:"documentoIdentidad"`
}

type Reader struct {
	ID           int     `json:"idLector"`
	PersonID     int     `json:"idPersona,omitempty"`
	RegisteredAt string  `json:"fechaRegistro,omitempty"`
	Occupation   string  `json:"ocupacion"`
	Name         string  `json:"nombre,omitempty"`
	Surname      string  `json:"apellido,omitempty"`
	Document     string  `json:"documentoIdentidad,omitempty"`
	Person       *Person `json:"persona,omitempty"`
}

func NormalizeReader(dto ReaderDTO) Reader {
	var person *Person
	if dto.Person != nil {
		p := NormalizePerson(*dto.Person)
		person = &p
	}

	r := Reader{
		ID:           dto.ID.Int(),
		PersonID:     dto.PersonID.Int(),
		RegisteredAt: CleanDate(dto.RegisteredAt),
		Occupation:   dto.Occupation,
		Name:         dto.Name,
		Surname:      dto.Surname,
		Document:     dto.Document,
		Person:       person,
	}
	if person != nil {
		r.Name = firstNonEmpty(dto.Name, person.Name)
		r.Surname = firstNonEmpty(dto.Surname, person.Surname)
		r.Document = firstNonEmpty(dto.Document, person.Document)
		if r.PersonID == 0 {
			r.PersonID = person.ID
		}
	}
	return r
}

func (r Reader) FullName() string {
	return fullName(r.Name, r.Surname)
}

func (r Reader) SearchFields() []string {
	return []string{
		strconv.Itoa(r.ID),
		r.Name,
		r.Surname,
		r.Document,
		r.Occupation,
		r.RegisteredAt,
	}
}
