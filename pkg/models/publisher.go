package models

import "strconv"

type PublisherDTO struct {
	ID      FlexInt `json:"idEditorial"`
	Name    string  `json:"nombre"`
	Country string  `json:"pais"`
	City    string  `json:"ciudad"`
	Website string  `json:"sitioWeb"`
}

type Publisher struct {
	ID      int    `json:"idEditorial"`
	Name    string `json:"nombre"`
	Country string `json:"pais"`
	City    string `json:"ciudad"`
	Website string `json:"sitioWeb,omitempty"`
}

func NormalizePublisher(dto PublisherDTO) Publisher {
	return Publisher{
		ID:      dto.ID.Int(),
		Name:    dto.Name,
		Country: dto.Country,
		City:    dto.City,
		Website: dto.Website,
	}
}

func (p Publisher) SearchFields() []string {
	return []string{
		strconv.Itoa(p.ID),
		p.Name,
		p.Country,
		p.City,
		p.Website,
	}
}
