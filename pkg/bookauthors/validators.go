package bookauthors

type ListBookAuthorsQuery struct {
	Search *string `query:"search" json:"search,omitempty" validate:"omitempty,max=100"`
}

type CreateBookAuthorPayload struct {
	BookID   int    `json:"idLibro" validate:"required,min=1"`
	AuthorID int    `json:"idAutor" validate:"required,min=1"`
	Role     string `json:"rol" mod:"trim" validate:"required,max=100"`
}

// The composite key is immutable; only the role can change.
type UpdateBookAuthorPayload struct {
	Role *string `json:"rol,omitempty" mod:"trim" validate:"omitempty,min=1,max=100"`
}
