package models

import "strconv"

// LoanDTO is the widest raw shape the upstream produces. Related entities can
// arrive nested under their plural keys (lectores, bibliotecarios, ejemplares,
// the last one nesting libros), flattened into convenience fields
// (nombreLector, nombreBibliotecario, titulo), both, or not at all.
type LoanDTO struct {
	ID            FlexInt       `json:"idPrestamo"`
	ReaderID      FlexInt       `json:"idLector"`
	LibrarianID   FlexInt       `json:"idBibliotecario"`
	CopyID        FlexInt       `json:"idEjemplar"`
	Reader        *ReaderDTO    `json:"lectores"`
	Librarian     *LibrarianDTO `json:"bibliotecarios"`
	Copy          *CopyDTO      `json:"ejemplares"`
	LoanDate      string        `json:"fechaPrestamo"`
	ReturnDate    string        `json:"fechaDevolucion"`
	ReaderName    string        `json:"nombreLector"`
	LibrarianName string        `json:"nombreBibliotecario"`
	BookTitle     string        `json:"titulo"`
}

type Loan struct {
	ID            int        `json:"idPrestamo"`
	ReaderID      int        `json:"idLector"`
	LibrarianID   int        `json:"idBibliotecario"`
	CopyID        int        `json:"idEjemplar"`
	LoanDate      string     `json:"fechaPrestamo"`
	ReturnDate    string     `json:"fechaDevolucion"`
	ReaderName    string     `json:"nombreLector,omitempty"`
	LibrarianName string     `json:"nombreBibliotecario,omitempty"`
	BookTitle     string     `json:"tituloLibroEjemplar,omitempty"`
	Reader        *Reader    `json:"lector,omitempty"`
	Librarian     *Librarian `json:"bibliotecario,omitempty"`
	Copy          *Copy      `json:"ejemplar,omitempty"`
}

func NormalizeLoan(dto LoanDTO) Loan {
	var reader *Reader
	if dto.Reader != nil {
		r := NormalizeReader(*dto.Reader)
		reader = &r
	}
	var librarian *Librarian
	if dto.Librarian != nil {
		l := NormalizeLibrarian(*dto.Librarian)
		librarian = &l
	}
	var cp *Copy
	if dto.Copy != nil {
		c := NormalizeCopy(*dto.Copy)
		cp = &c
	}

	loan := Loan{
		ID:            dto.ID.Int(),
		ReaderID:      dto.ReaderID.Int(),
		LibrarianID:   dto.LibrarianID.Int(),
		CopyID:        dto.CopyID.Int(),
		LoanDate:      CleanDate(dto.LoanDate),
		ReturnDate:    CleanDate(dto.ReturnDate),
		ReaderName:    dto.ReaderName,
		LibrarianName: dto.LibrarianName,
		BookTitle:     dto.BookTitle,
		Reader:        reader,
		Librarian:     librarian,
		Copy:          cp,
	}
	if reader != nil {
		loan.ReaderName = firstNonEmpty(dto.ReaderName, reader.FullName())
	}
	if librarian != nil {
		loan.LibrarianName = firstNonEmpty(dto.LibrarianName, librarian.FullName())
	}
	if cp != nil {
		loan.BookTitle = firstNonEmpty(dto.BookTitle, cp.BookTitle)
	}
	return loan
}

func (l Loan) SearchFields() []string {
	return []string{
		strconv.Itoa(l.ID),
		l.ReaderName,
		l.LibrarianName,
		l.BookTitle,
		l.LoanDate,
		l.ReturnDate,
	}
}
