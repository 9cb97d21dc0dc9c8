package books

type ListBooksQuery struct {
	Search *string `query:"search" json:"search,omitempty" validate:"omitempty,max=100"`
}

type CreateBookPayload struct {
	Title string `json:"titulo" mod:"trim" validate:"required,max=300"`
	// The upstream stores the year as text; exactly four digits.
	PublicationYear string `json:"anioPublicacion" mod:"trim" validate:"required,year"`
	PublisherID     int    `json:"idEditorial" validate:"required,min=1"`
}

type UpdateBookPayload struct {
	Title           *string `json:"titulo,omitempty" mod:"trim" validate:"omitempty,min=1,max=300"`
	PublicationYear *string `json:"anioPublicacion,omitempty" mod:"trim" validate:"omitempty,year"`
	PublisherID     *int    `json:"idEditorial,omitempty" validate:"omitempty,min=1"`
}
