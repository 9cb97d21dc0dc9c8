package binder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookPayload struct {
	Title           string `json:"titulo" mod:"trim" validate:"required,max=300"`
	PublicationYear string `json:"anioPublicacion" mod:"trim" validate:"required,year"`
	PublisherID     int    `json:"idEditorial" validate:"required,gt=0"`
}

type feePayload struct {
	LoanID   int `json:"idPrestamo" validate:"required,gt=0"`
	DaysLate int `json:"diasRetraso" validate:"gte=0"`
	Amount   int `json:"montoTarifa" validate:"gte=0"`
}

type publisherPayload struct {
	Name    string `json:"nombre" mod:"trim" validate:"required"`
	Country string `json:"pais" mod:"trim" validate:"required"`
	City    string `json:"ciudad" mod:"trim" validate:"required"`
	Website string `json:"sitioWeb" mod:"trim" validate:"omitempty,url"`
}

func newTestBinder(t *testing.T) *Binder {
	t.Helper()
	b, err := New()
	require.NoError(t, err)
	return b
}

func TestCheck_YearValidator(t *testing.T) {
	b := newTestBinder(t)
	ctx := context.Background()

	tests := []struct {
		year  string
		valid bool
	}{
		{"1999", true},
		{"16", false},
		{"19999", false},
		{"199x", false},
		{"", false}, // required kicks in before year
	}

	for _, tt := range tests {
		t.Run(tt.year, func(t *testing.T) {
			errs := b.Check(ctx, &bookPayload{Title: "Rayuela", PublicationYear: tt.year, PublisherID: 1})
			if tt.valid {
				assert.Nil(t, errs)
			} else {
				require.NotEmpty(t, errs)
				assert.Equal(t, "anioPublicacion", errs[0].Field)
			}
		})
	}
}

func TestCheck_NonNegativeAndPositive(t *testing.T) {
	b := newTestBinder(t)
	ctx := context.Background()

	t.Run("negative days late rejected", func(t *testing.T) {
		errs := b.Check(ctx, &feePayload{LoanID: 1, DaysLate: -1, Amount: 0})
		require.Len(t, errs, 1)
		assert.Equal(t, "diasRetraso", errs[0].Field)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		errs := b.Check(ctx, &feePayload{LoanID: 1, DaysLate: 0, Amount: -5})
		require.Len(t, errs, 1)
		assert.Equal(t, "montoTarifa", errs[0].Field)
	})

	t.Run("non-positive identifier rejected", func(t *testing.T) {
		errs := b.Check(ctx, &feePayload{LoanID: 0, DaysLate: 0, Amount: 0})
		require.Len(t, errs, 1)
		assert.Equal(t, "idPrestamo", errs[0].Field)
	})

	t.Run("zero days and amount accepted", func(t *testing.T) {
		errs := b.Check(ctx, &feePayload{LoanID: 3, DaysLate: 0, Amount: 0})
		assert.Nil(t, errs)
	})
}

func TestCheck_CollectsEveryFieldError(t *testing.T) {
	b := newTestBinder(t)

	errs := b.Check(context.Background(), &publisherPayload{Website: "not a url"})
	// nombre, pais, ciudad missing; sitioWeb malformed.
	assert.Len(t, errs, 4)
}

func TestCheck_OptionalWebsite(t *testing.T) {
	b := newTestBinder(t)
	ctx := context.Background()

	assert.Nil(t, b.Check(ctx, &publisherPayload{Name: "Acme", Country: "ES", City: "Madrid"}))
	assert.Nil(t, b.Check(ctx, &publisherPayload{Name: "Acme", Country: "ES", City: "Madrid", Website: "https://acme.example"}))

	errs := b.Check(ctx, &publisherPayload{Name: "Acme", Country: "ES", City: "Madrid", Website: "ftp://acme.example"})
	require.Len(t, errs, 1)
	assert.Equal(t, "sitioWeb", errs[0].Field)
}

func TestCheck_TrimsBeforeValidating(t *testing.T) {
	b := newTestBinder(t)

	p := &publisherPayload{Name: "  Acme  ", Country: "ES", City: "Madrid"}
	require.Nil(t, b.Check(context.Background(), p))
	assert.Equal(t, "Acme", p.Name)
}

func TestCheck_DateValidator(t *testing.T) {
	b := newTestBinder(t)
	ctx := context.Background()

	type payload struct {
		HireDate string `json:"fechaContratacion" validate:"omitempty,date"`
	}

	assert.Nil(t, b.Check(ctx, &payload{}))
	assert.Nil(t, b.Check(ctx, &payload{HireDate: "2024-05-01"}))

	errs := b.Check(ctx, &payload{HireDate: "01/05/2024"})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "YYYY-MM-DD")
}
