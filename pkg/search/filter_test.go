package search

import (
	"testing"

	"github.com/bibliodesk/bibliodesk/pkg/models"
	"github.com/stretchr/testify/assert"
)

func testPeople() []models.Person {
	return []models.Person{
		{ID: 1, Name: "Ana", Surname: "Gomez", Document: "A-100", Email: "ana@example.test"},
		{ID: 2, Name: "Bruno", Surname: "Diaz", Document: "B-200", Email: "bruno@example.test"},
		{ID: 3, Name: "MARIANA", Surname: "Ruiz", Document: "C-300", Email: "m.ruiz@example.test"},
	}
}

func TestFilter_EmptyQueryIsIdentity(t *testing.T) {
	people := testPeople()
	got := Filter(people, "")
	assert.Equal(t, people, got)
	// Same backing slice, same order.
	assert.Len(t, got, 3)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[2].ID)
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	got := Filter(testPeople(), "ana")
	// Matches both "Ana" and "MARIANA".
	assert.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)

	got = Filter(testPeople(), "ANA")
	assert.Len(t, got, 2)
}

func TestFilter_MatchesIdentifierAsText(t *testing.T) {
	got := Filter(testPeople(), "2")
	// Matches id 2 and documents B-200, C-300 (substring "00" not queried;
	// "2" appears in "B-200").
	assert.NotEmpty(t, got)
	for _, p := range got {
		assert.Contains(t, []int{1, 2, 3}, p.ID)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	once := Filter(testPeople(), "example")
	twice := Filter(once, "example")
	assert.Equal(t, once, twice)
}

func TestFilter_NoMatchesReturnsEmpty(t *testing.T) {
	got := Filter(testPeople(), "zzzz")
	assert.Empty(t, got)
}

func TestFilter_SearchesConvenienceFields(t *testing.T) {
	loans := []models.Loan{
		{ID: 1, ReaderName: "Carla Vega", BookTitle: "El Quijote", LoanDate: "2024-01-15"},
		{ID: 2, ReaderName: "Diego Sol", BookTitle: "Rayuela", LoanDate: "2024-02-20"},
	}

	assert.Len(t, Filter(loans, "quijote"), 1)
	assert.Len(t, Filter(loans, "2024-02"), 1)
	assert.Len(t, Filter(loans, "carla"), 1)
}
