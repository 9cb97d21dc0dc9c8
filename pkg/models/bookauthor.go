package models

import "strconv"

// BookAuthorDTO is the many-to-many link between books and authors. The pair
// (idLibro, idAutor) is its composite key; there is no surrogate id.
type BookAuthorDTO struct {
	BookID   FlexInt `json:"idLibro"`
	AuthorID FlexInt `json:"idAutor"`
	Role     string  `json:"rol"`
}

type BookAuthor struct {
	BookID   int    `json:"idLibro"`
	AuthorID int    `json:"idAutor"`
	Role     string `json:"rol"`
}

func NormalizeBookAuthor(dto BookAuthorDTO) BookAuthor {
	return BookAuthor{
		BookID:   dto.BookID.Int(),
		AuthorID: dto.AuthorID.Int(),
		Role:     dto.Role,
	}
}

func (ba BookAuthor) SearchFields() []string {
	return []string{
		strconv.Itoa(ba.BookID),
		strconv.Itoa(ba.AuthorID),
		ba.Role,
	}
}
