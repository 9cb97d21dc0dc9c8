package publishers

type ListPublishersQuery struct {
	Search *string `query:"search" json:"search,omitempty" validate:"omitempty,max=100"`
}

type CreatePublisherPayload struct {
	Name    string `json:"nombre" mod:"trim" validate:"required,max=200"`
	Country string `json:"pais" mod:"trim" validate:"required,max=100"`
	City    string `json:"ciudad" mod:"trim" validate:"required,max=100"`
	// Website may be empty; the upstream create path carries it as its
	// literal null token in that case.
	Website string `json:"sitioWeb" mod:"trim" validate:"url"`
}

type UpdatePublisherPayload struct {
	Name    *string `json:"nombre,omitempty" mod:"trim" validate:"omitempty,min=1,max=200"`
	Country *string `json:"pais,omitempty" mod:"trim" validate:"omitempty,min=1,max=100"`
	City    *string `json:"ciudad,omitempty" mod:"trim" validate:"omitempty,min=1,max=100"`
	Website *string `json:"sitioWeb,omitempty" mod:"trim" validate:"omitempty,url"`
}
