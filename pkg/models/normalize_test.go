package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanDate(t *testing.T) {
	assert.Equal(t, "", CleanDate(""))
	assert.Equal(t, "", CleanDate("   "))
	assert.Equal(t, "2024-05-01", CleanDate("2024-05-01"))
	assert.Equal(t, "2024-05-01", CleanDate(" 2024-05-01 "))
}

func TestNormalizeLibrarian(t *testing.T) {
	t.Run("flattened fields win over nested person", func(t *testing.T) {
		dto := LibrarianDTO{
			ID:       3,
			PersonID: 9,
			Name:     "Ana",
			Surname:  "Lopez",
			Document: "DOC-1",
			Shift:    "morning",
			Person: &PersonDTO{
				ID:      9,
				Name:    "Different",
				Surname: "Person",
			},
		}

		l := NormalizeLibrarian(dto)
		assert.Equal(t, 3, l.ID)
		assert.Equal(t, "Ana", l.Name)
		assert.Equal(t, "Lopez", l.Surname)
		assert.Equal(t, "DOC-1", l.Document)
		assert.Equal(t, "Ana Lopez", l.FullName())
	})

	t.Run("nested person fills absent flattened fields", func(t *testing.T) {
		dto := LibrarianDTO{
			ID:    4,
			Shift: "evening",
			Person: &PersonDTO{
				ID:       12,
				Name:     "Luis",
				Surname:  "Mora",
				Document: "DOC-2",
			},
		}

		l := NormalizeLibrarian(dto)
		assert.Equal(t, "Luis", l.Name)
		assert.Equal(t, "Mora", l.Surname)
		assert.Equal(t, "DOC-2", l.Document)
		assert.Equal(t, 12, l.PersonID)
	})

	t.Run("neither shape leaves convenience fields empty", func(t *testing.T) {
		l := NormalizeLibrarian(LibrarianDTO{ID: 5, Shift: "night"})
		assert.Equal(t, 5, l.ID)
		assert.Equal(t, "", l.Name)
		assert.Equal(t, "", l.FullName())
		assert.Nil(t, l.Person)
	})

	t.Run("string identifiers off the wire come out numeric", func(t *testing.T) {
		raw := `{"idBibliotecario":"8","idPersona":"21","turno":"morning"}`
		var dto LibrarianDTO
		require.NoError(t, json.Unmarshal([]byte(raw), &dto))

		l := NormalizeLibrarian(dto)
		assert.Equal(t, 8, l.ID)
		assert.Equal(t, 21, l.PersonID)
	})
}

func TestNormalizeCopy(t *testing.T) {
	t.Run("flattened title wins", func(t *testing.T) {
		c := NormalizeCopy(CopyDTO{
			ID:     1,
			Title:  "Flattened Title",
			Book:   &BookDTO{ID: 2, Title: "Nested Title"},
			BookID: 2,
		})
		assert.Equal(t, "Flattened Title", c.BookTitle)
	})

	t.Run("nested book title used when not flattened", func(t *testing.T) {
		c := NormalizeCopy(CopyDTO{
			ID:   1,
			Book: &BookDTO{ID: 2, Title: "Nested Title", PublicationYear: "2001"},
		})
		assert.Equal(t, "Nested Title", c.BookTitle)
		assert.Equal(t, 2, c.BookID)
		require.NotNil(t, c.Book)
		assert.Equal(t, "2001", c.Book.PublicationYear)
	})

	t.Run("neither present leaves title empty", func(t *testing.T) {
		c := NormalizeCopy(CopyDTO{ID: 1, Location: "A-3"})
		assert.Equal(t, "", c.BookTitle)
		assert.Nil(t, c.Book)
	})
}

func TestNormalizeLoan(t *testing.T) {
	t.Run("flattened names win over nested entities", func(t *testing.T) {
		loan := NormalizeLoan(LoanDTO{
			ID:            1,
			ReaderName:    "Flat Reader",
			LibrarianName: "Flat Librarian",
			BookTitle:     "Flat Title",
			Reader:        &ReaderDTO{ID: 2, Name: "Nested", Surname: "Reader"},
			Librarian:     &LibrarianDTO{ID: 3, Name: "Nested", Surname: "Librarian"},
			Copy:          &CopyDTO{ID: 4, Book: &BookDTO{Title: "Nested Title"}},
		})
		assert.Equal(t, "Flat Reader", loan.ReaderName)
		assert.Equal(t, "Flat Librarian", loan.LibrarianName)
		assert.Equal(t, "Flat Title", loan.BookTitle)
	})

	t.Run("nested chain resolves reader and book title", func(t *testing.T) {
		loan := NormalizeLoan(LoanDTO{
			ID:          10,
			ReaderID:    2,
			LibrarianID: 3,
			CopyID:      4,
			LoanDate:    "2024-01-15",
			ReturnDate:  "2024-02-15",
			Reader: &ReaderDTO{
				ID:     2,
				Person: &PersonDTO{ID: 7, Name: "Maria", Surname: "Paz"},
			},
			Librarian: &LibrarianDTO{
				ID:     3,
				Person: &PersonDTO{ID: 8, Name: "Jorge", Surname: "Soto"},
			},
			Copy: &CopyDTO{
				ID:   4,
				Book: &BookDTO{ID: 5, Title: "El Quijote"},
			},
		})

		assert.Equal(t, "Maria Paz", loan.ReaderName)
		assert.Equal(t, "Jorge Soto", loan.LibrarianName)
		assert.Equal(t, "El Quijote", loan.BookTitle)
		assert.Equal(t, "2024-01-15", loan.LoanDate)
	})

	t.Run("bare loan has empty convenience fields", func(t *testing.T) {
		loan := NormalizeLoan(LoanDTO{ID: 1, ReaderID: 2, LibrarianID: 3, CopyID: 4})
		assert.Equal(t, "", loan.ReaderName)
		assert.Equal(t, "", loan.LibrarianName)
		assert.Equal(t, "", loan.BookTitle)
	})
}

func TestNormalizeBook_YearAsNumber(t *testing.T) {
	raw := `{"idLibro":1,"titulo":"Rayuela","anioPublicacion":1963,"idEditorial":"2"}`
	var dto BookDTO
	require.NoError(t, json.Unmarshal([]byte(raw), &dto))

	b := NormalizeBook(dto)
	assert.Equal(t, "1963", b.PublicationYear)
	assert.Equal(t, 2, b.PublisherID)
}
