package models

import "strconv"

// LibrarianDTO is the raw upstream payload for a librarian. Depending on the
// endpoint the related person arrives either flattened into sibling fields
// (nombre, apellido, documentoIdentidad) or as a nested object under the
// upstream's plural key "personas" — or not at all.
type LibrarianDTO struct {
	ID       FlexInt    `json:"idBibliotecario"`
	PersonID FlexInt    `json:"idPersona"`
	Person   *PersonDTO `json:"personas"`
	HireDate string     `json:"fechaContratacion"`
	Shift    string     `json:"turno"`
	Name     string     `json:"nombre"`
	Surname  string     `json:"apellido"`
	Document string     `json:"documentoIdentidad"`
}

type Librarian struct {
	ID       int     `json:"idBibliotecario"`
	PersonID int     `json:"idPersona,omitempty"`
	HireDate string  `json:"fechaContratacion,omitempty"`
	Shift    string  `json:"turno"`
	Name     string  `json:"nombre,omitempty"`
	Surname  string  `json:"apellido,omitempty"`
	Document string  `json:"documentoIdentidad,omitempty"`
	Person   *Person `json:"persona,omitempty"`
}

// NormalizeLibrarian is total over every shape the upstream has been observed
// returning: flattened-only, nested-only, both, or neither. Convenience fields
// left unresolvable simply stay empty.
func NormalizeLibrarian(dto LibrarianDTO) Librarian {
	var person *Person
	if dto.Person != nil {
		p := NormalizePerson(*dto.Person)
		person = &p
	}

	l := Librarian{
		ID:       dto.ID.Int(),
		PersonID: dto.PersonID.Int(),
		HireDate: CleanDate(dto.HireDate),
		Shift:    dto.Shift,
		Name:     dto.Name,
		Surname:  dto.Surname,
		Document: dto.Document,
		Person:   person,
	}
	if person != nil {
		l.Name = firstNonEmpty(dto.Name, person.Name)
		l.Surname = firstNonEmpty(dto.Surname, person.Surname)
		l.Document = firstNonEmpty(dto.Document, person.Document)
		if l.PersonID == 0 {
			l.PersonID = person.ID
		}
	}
	return l
}

// FullName is the denormalized display name, empty when neither the flattened
// fields nor a nested person were present.
func (l Librarian) FullName() string {
	return fullName(l.Name, l.Surname)
}

func (l Librarian) SearchFields() []string {
	return []string{
		strconv.Itoa(l.ID),
		l.Name,
		l.Surname,
		l.Document,
		l.Shift,
		l.HireDate,
	}
}
