package bookauthors

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bibliodesk/bibliodesk/pkg/biblio"
	"github.com/bibliodesk/bibliodesk/pkg/binder"
	"github.com/bibliodesk/bibliodesk/pkg/errcodes"
	"github.com/labstack/echo/v4"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLinkEcho(t *testing.T) (*echo.Echo, *[]string) {
	t.Helper()

	calls := &[]string{}
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		request := r.Method + " " + r.URL.Path
		if r.URL.RawQuery != "" {
			request += "?" + r.URL.RawQuery
		}
		*calls = append(*calls, request)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"idLibro": "3", "idAutor": 9, "rol": "Principal"}`))
	}))
	t.Cleanup(upstream.Close)

	e := echo.New()
	b, err := binder.New()
	require.NoError(t, err)
	e.Binder = b
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	client := biblio.New(upstream.URL, 5*time.Second)
	RegisterRoutesWithGroup(e.Group("/book-authors"), client)
	return e, calls
}

func TestRetrieveBookAuthor_CompositeKey(t *testing.T) {
	e, calls := newLinkEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/book-authors/3/9", nil)
	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, *calls, 1)
	assert.Equal(t, "GET /LibroAutores/3/9", (*calls)[0])

	var link map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &link))
	assert.EqualValues(t, 3, link["idLibro"])
	assert.EqualValues(t, 9, link["idAutor"])
}

func TestCreateBookAuthor_PositionalPath(t *testing.T) {
	e, calls := newLinkEcho(t)

	payload := `{"idLibro": 3, "idAutor": 9, "rol": "Principal"}`
	req := httptest.NewRequest(http.MethodPost, "/book-authors", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	require.Len(t, *calls, 1)
	assert.Equal(t, "POST /LibroAutores/3/9/Principal", (*calls)[0])
}

func TestUpdateBookAuthor_RoleOnly(t *testing.T) {
	e, calls := newLinkEcho(t)

	req := httptest.NewRequest(http.MethodPatch, "/book-authors/3/9", strings.NewReader(`{"rol": "Editor"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	require.Len(t, *calls, 1)
	assert.Equal(t, "PUT /LibroAutores/3/9?rol=Editor", (*calls)[0])
}

func TestDeleteBookAuthor_CompositeKey(t *testing.T) {
	e, calls := newLinkEcho(t)

	req := httptest.NewRequest(http.MethodDelete, "/book-authors/3/9", nil)
	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	require.Len(t, *calls, 1)
	assert.Equal(t, "DELETE /LibroAutores/3/9", (*calls)[0])
}

func TestCreateBookAuthor_RejectsMissingIDs(t *testing.T) {
	e, calls := newLinkEcho(t)

	req := httptest.NewRequest(http.MethodPost, "/book-authors", strings.NewReader(`{"rol": "Principal"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Empty(t, *calls)
}
