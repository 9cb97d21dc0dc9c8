package copies

type ListCopiesQuery struct {
	Search *string `query:"search" json:"search,omitempty" validate:"omitempty,max=100"`
}

type CreateCopyPayload struct {
	BookID   int    `json:"idLibro" validate:"required,min=1"`
	Location string `json:"ubicacion" mod:"trim" validate:"required,max=100"`
}

type UpdateCopyPayload struct {
	BookID   *int    `json:"idLibro,omitempty" validate:"omitempty,min=1"`
	Location *string `json:"ubicacion,omitempty" mod:"trim" validate:"omitempty,min=1,max=100"`
}
