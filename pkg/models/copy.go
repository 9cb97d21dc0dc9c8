package models

import "strconv"

// CopyDTO may carry the related book flattened (titulo) or nested under the
// upstream's plural key "libros".
type CopyDTO struct {
	ID       FlexInt  `json:"idEjemplar"`
	BookID   FlexInt  `json:"idLibro"`
	Book     *BookDTO `json:"libros"`
	Location string   `json:"ubicacion"`
	Title    string   `json:"titulo"`
}

type Copy struct {
	ID        int    `json:"idEjemplar"`
	BookID    int    `json:"idLibro,omitempty"`
	Location  string `json:"ubicacion"`
	BookTitle string `json:"tituloLibro,omitempty"`
	Book      *Book  `json:"libro,omitempty"`
}

func NormalizeCopy(dto CopyDTO) Copy {
	var book *Book
	if dto.Book != nil {
		b := NormalizeBook(*dto.Book)
		book = &b
	}

	c := Copy{
		ID:        dto.ID.Int(),
		BookID:    dto.BookID.Int(),
		Location:  dto.Location,
		BookTitle: dto.Title,
		Book:      book,
	}
	if book != nil {
		c.BookTitle = firstNonEmpty(dto.Title, book.Title)
		if c.BookID == 0 {
			c.BookID = book.ID
		}
	}
	return c
}

func (c Copy) SearchFields() []string {
	return []string{
		strconv.Itoa(c.ID),
		c.Location,
		c.BookTitle,
		strconv.Itoa(c.BookID),
	}
}
