package biblio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bibliodesk/bibliodesk/pkg/errcodes"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	path   string
	query  map[string][]string
}

// newRecordingServer captures every request and answers with a fixed body.
func newRecordingServer(t *testing.T, status int, body string) (*Client, *[]recordedRequest) {
	t.Helper()

	requests := &[]recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*requests = append(*requests, recordedRequest{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.Query(),
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return New(srv.URL, 5*time.Second), requests
}

func TestCreatePublisher_EncodesAbsentWebsiteAsNullToken(t *testing.T) {
	client, requests := newRecordingServer(t, http.StatusOK,
		`{"idEditorial":11,"nombre":"Acme","pais":"ES","ciudad":"Madrid","sitioWeb":""}`)

	dto, err := client.CreatePublisher(context.Background(), "Acme", "ES", "Madrid", "")
	require.NoError(t, err)
	assert.Equal(t, 11, dto.ID.Int())

	require.Len(t, *requests, 1)
	req := (*requests)[0]
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "/Editoriales/Acme/ES/Madrid/null", req.path)
}

func TestCreatePublisher_EscapesPathSegments(t *testing.T) {
	client, requests := newRecordingServer(t, http.StatusOK, `{"idEditorial":1}`)

	_, err := client.CreatePublisher(context.Background(), "Acme Press", "ES", "Madrid", "https://acme.example")
	require.NoError(t, err)

	req := (*requests)[0]
	// r.URL.Path is the decoded form; escaping must round-trip the values.
	assert.Equal(t, "/Editoriales/Acme Press/ES/Madrid/https://acme.example", req.path)
}

func TestUpdateLoan_SendsOnlyPresentFields(t *testing.T) {
	client, requests := newRecordingServer(t, http.StatusOK, `{"idPrestamo":5}`)

	returnDate := "2024-03-01"
	_, err := client.UpdateLoan(context.Background(), 5, UpdateLoanOptions{
		ReturnDate: &returnDate,
	})
	require.NoError(t, err)

	require.Len(t, *requests, 1)
	req := (*requests)[0]
	assert.Equal(t, http.MethodPut, req.method)
	assert.Equal(t, "/Prestamos/5", req.path)
	assert.Equal(t, []string{"2024-03-01"}, req.query["fechaDevolucion"])
	assert.NotContains(t, req.query, "idLector")
	assert.NotContains(t, req.query, "idBibliotecario")
	assert.NotContains(t, req.query, "idEjemplar")
	assert.NotContains(t, req.query, "fechaPrestamo")
}

func TestUpdateLibrarian_ClearedDateBecomesNullToken(t *testing.T) {
	client, requests := newRecordingServer(t, http.StatusOK, `{"idBibliotecario":2}`)

	empty := ""
	_, err := client.UpdateLibrarian(context.Background(), 2, UpdateLibrarianOptions{
		HireDate: &empty,
	})
	require.NoError(t, err)

	req := (*requests)[0]
	assert.Equal(t, []string{"null"}, req.query["fechaContratacion"])
}

func TestDo_ClassifiesErrors(t *testing.T) {
	t.Run("unreachable upstream is a network error", func(t *testing.T) {
		client := New("http://127.0.0.1:1", 500*time.Millisecond)

		_, err := client.ListPublishers(context.Background())
		require.Error(t, err)

		var e *errcodes.Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, "upstream_unavailable", e.Code)
	})

	t.Run("non-2xx carries the upstream message", func(t *testing.T) {
		client, _ := newRecordingServer(t, http.StatusInternalServerError, `{"message":"FK violation"}`)

		err := client.DeletePublisher(context.Background(), 1)
		require.Error(t, err)

		var e *errcodes.Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, "upstream_error", e.Code)
		assert.Contains(t, e.Message, "FK violation")
	})

	t.Run("malformed body on a 2xx is an unexpected error", func(t *testing.T) {
		client, _ := newRecordingServer(t, http.StatusOK, `{"idEditorial":`)

		_, err := client.RetrievePublisher(context.Background(), 1)
		require.Error(t, err)

		var e *errcodes.Error
		assert.False(t, errors.As(err, &e))
	})
}

func TestRetrieveBookAuthor_UsesCompositeKeyPath(t *testing.T) {
	client, requests := newRecordingServer(t, http.StatusOK, `{"idLibro":3,"idAutor":9,"rol":"editor"}`)

	dto, err := client.RetrieveBookAuthor(context.Background(), 3, 9)
	require.NoError(t, err)
	assert.Equal(t, "editor", dto.Role)

	req := (*requests)[0]
	assert.Equal(t, "/LibroAutores/3/9", req.path)
}
