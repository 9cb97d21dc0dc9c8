package publishers

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

type upstreamCall struct {
	method string
	path   string
	query  string
}

// newUpstream fakes the remote library API: it records every call and answers
// with the canned body for the request path.
func newUpstream(t *testing.T, responses map[string]string) (*httptest.Server, *[]upstreamCall) {
	t.Helper()

	calls := &[]upstreamCall{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls = append(*calls, upstreamCall{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
		})
		for prefix, body := range responses {
			if strings.HasPrefix(r.URL.Path, prefix) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(body))
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	return server, calls
}

func newTestEcho(t *testing.T, upstreamURL string) *echo.Echo {
	t.Helper()

	e := echo.New()
	b, err := binder.New()
	require.NoError(t, err)
	e.Binder = b
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	client := biblio.New(upstreamURL, 5*time.Second)
	RegisterRoutesWithGroup(e.Group("/publishers"), client)
	return e
}

func TestListPublishers(t *testing.T) {
	upstream, _ := newUpstream(t, map[string]string{
		"/Editoriales": `[
			{"idEditorial": "1", "nombre": "Acme", "pais": "ES", "ciudad": "Madrid", "sitioWeb": ""},
			{"idEditorial": 2, "nombre": "Planeta", "pais": "AR", "ciudad": "Buenos Aires", "sitioWeb": "https://planeta.example"}
		]`,
	})
	e := newTestEcho(t, upstream.URL)

	t.Run("returns normalized publishers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/publishers", nil)
		rr := httptest.NewRecorder()
		e.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var body struct {
			Publishers []map[string]any `json:"publishers"`
			Total      int              `json:"total"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, 2, body.Total)
		// String id on the wire comes back as a number.
		assert.EqualValues(t, 1, body.Publishers[0]["idEditorial"])
		assert.Equal(t, "Acme", body.Publishers[0]["nombre"])
	})

	t.Run("search narrows the list", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/publishers?search=planeta", nil)
		rr := httptest.NewRecorder()
		e.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var body struct {
			Publishers []map[string]any `json:"publishers"`
			Total      int              `json:"total"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		require.Equal(t, 1, body.Total)
		assert.Equal(t, "Planeta", body.Publishers[0]["nombre"])
	})
}

func TestCreatePublisher(t *testing.T) {
	t.Run("empty website travels as the null token", func(t *testing.T) {
		upstream, calls := newUpstream(t, map[string]string{
			"/Editoriales": `{"idEditorial": 7, "nombre": "Acme", "pais": "ES", "ciudad": "Madrid", "sitioWeb": ""}`,
		})
		e := newTestEcho(t, upstream.URL)

		payload := `{"nombre": "  Acme  ", "pais": "ES", "ciudad": "Madrid", "sitioWeb": ""}`
		req := httptest.NewRequest(http.MethodPost, "/publishers", strings.NewReader(payload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rr := httptest.NewRecorder()
		e.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		require.Len(t, *calls, 1)
		// Trimmed name in the second segment, literal null in the last.
		assert.Equal(t, "/Editoriales/Acme/ES/Madrid/null", (*calls)[0].path)

		var created map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
		assert.EqualValues(t, 7, created["idEditorial"])
	})

	t.Run("missing required fields are rejected before any upstream call", func(t *testing.T) {
		upstream, calls := newUpstream(t, map[string]string{})
		e := newTestEcho(t, upstream.URL)

		req := httptest.NewRequest(http.MethodPost, "/publishers", strings.NewReader(`{"nombre": "Acme"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rr := httptest.NewRecorder()
		e.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Empty(t, *calls)
	})

	t.Run("invalid website is rejected", func(t *testing.T) {
		upstream, calls := newUpstream(t, map[string]string{})
		e := newTestEcho(t, upstream.URL)

		payload := `{"nombre": "Acme", "pais": "ES", "ciudad": "Madrid", "sitioWeb": "ftp://acme"}`
		req := httptest.NewRequest(http.MethodPost, "/publishers", strings.NewReader(payload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rr := httptest.NewRecorder()
		e.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Empty(t, *calls)
	})
}

func TestUpdatePublisher(t *testing.T) {
	upstream, calls := newUpstream(t, map[string]string{
		"/Editoriales": `{"idEditorial": 3, "nombre": "Acme", "pais": "ES", "ciudad": "Sevilla", "sitioWeb": ""}`,
	})
	e := newTestEcho(t, upstream.URL)

	req := httptest.NewRequest(http.MethodPatch, "/publishers/3", strings.NewReader(`{"ciudad": "Sevilla"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	require.Len(t, *calls, 1)
	assert.Equal(t, http.MethodPut, (*calls)[0].method)
	assert.Equal(t, "/Editoriales/3", (*calls)[0].path)
	// Only the changed field travels.
	assert.Equal(t, "ciudad=Sevilla", (*calls)[0].query)
}

func TestDeletePublisher(t *testing.T) {
	upstream, calls := newUpstream(t, map[string]string{
		"/Editoriales": `{}`,
	})
	e := newTestEcho(t, upstream.URL)

	req := httptest.NewRequest(http.MethodDelete, "/publishers/9", nil)
	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	require.Len(t, *calls, 1)
	assert.Equal(t, http.MethodDelete, (*calls)[0].method)
	assert.Equal(t, "/Editoriales/9", (*calls)[0].path)
}

func TestRetrievePublisher_UpstreamDown(t *testing.T) {
	// Nothing listens on this port.
	e := newTestEcho(t, "http://127.0.0.1:1")

	req := httptest.NewRequest(http.MethodGet, "/publishers/1", nil)
	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, rr.Body.String(), "upstream_unavailable")
}
