package models

import "strconv"

// BookDTO never nests its publisher; the upstream only sends idEditorial.
type BookDTO struct {
	ID              FlexInt    `json:"idLibro"`
	Title           string     `json:"titulo"`
	PublicationYear FlexString `json:"anioPublicacion"`
	PublisherID     FlexInt    `json:"idEditorial"`
}

type Book struct {
	ID              int    `json:"idLibro"`
	Title           string `json:"titulo"`
	PublicationYear string `json:"anioPublicacion"`
	PublisherID     int    `json:"idEditorial"`
}

func NormalizeBook(dto BookDTO) Book {
	return Book{
		ID:              dto.ID.Int(),
		Title:           dto.Title,
		PublicationYear: dto.PublicationYear.String(),
		PublisherID:     dto.PublisherID.Int(),
	}
}

func (b Book) SearchFields() []string {
	return []string{
		strconv.Itoa(b.ID),
		b.Title,
		b.PublicationYear,
		strconv.Itoa(b.PublisherID),
	}
}
