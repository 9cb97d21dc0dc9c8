package loans

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bibliodesk/bibliodesk/pkg/biblio"
	"github.com/bibliodesk/bibliodesk/pkg/binder"
	"github.com/bibliodesk/bibliodesk/pkg/copies"
	"github.com/bibliodesk/bibliodesk/pkg/librarians"
	"github.com/bibliodesk/bibliodesk/pkg/pages"
	"github.com/bibliodesk/bibliodesk/pkg/readers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	notifications []pages.Notification
}

func (n *recordingNotifier) Notify(notification pages.Notification) {
	n.notifications = append(n.notifications, notification)
}

func TestLoanPage_PartialReloadKeepsWhatResolved(t *testing.T) {
	// The readers endpoint is down; everything else answers.
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/Prestamos":
			_, _ = w.Write([]byte(`[{"idPrestamo": 1, "idLector": 2, "idBibliotecario": 3, "idEjemplar": 4, "fechaPrestamo": "2024-01-10", "fechaDevolucion": "2024-01-24"}]`))
		case "/Lectores":
			w.WriteHeader(http.StatusInternalServerError)
		case "/Bibliotecarios":
			_, _ = w.Write([]byte(`[{"idBibliotecario": 3, "turno": "tarde", "nombre": "Luis", "apellido": "Soto"}]`))
		case "/Ejemplares":
			_, _ = w.Write([]byte(`[{"idEjemplar": 4, "ubicacion": "A-1", "titulo": "El Quijote"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(upstream.Close)

	client := biblio.New(upstream.URL, 5*time.Second)
	b, err := binder.New()
	require.NoError(t, err)
	notifier := &recordingNotifier{}

	page := NewPage(
		NewService(client),
		readers.NewService(client),
		librarians.NewService(client),
		copies.NewService(client),
		b,
		notifier,
	)

	ok := page.Reload(context.Background())
	assert.False(t, ok)

	// Loans, librarians and copies rendered; readers did not.
	require.Len(t, page.Items(), 1)
	assert.Equal(t, 1, page.Items()[0].ID)
	assert.Len(t, page.Librarians(), 1)
	assert.Len(t, page.Copies(), 1)
	assert.Empty(t, page.Readers())

	// One error notification naming the failed collection.
	require.Len(t, notifier.notifications, 1)
	assert.True(t, notifier.notifications[0].IsError)
	assert.Contains(t, notifier.notifications[0].Message, "readers")
}

func TestLoanPage_SubmitInvalidMakesNoUpstreamCall(t *testing.T) {
	calls := 0
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(upstream.Close)

	client := biblio.New(upstream.URL, 5*time.Second)
	b, err := binder.New()
	require.NoError(t, err)
	notifier := &recordingNotifier{}

	page := NewPage(
		NewService(client),
		readers.NewService(client),
		librarians.NewService(client),
		copies.NewService(client),
		b,
		notifier,
	)

	page.BeginCreate()
	ok := page.Submit(context.Background(), &CreateLoanPayload{
		ReaderID:    2,
		LibrarianID: 3,
		CopyID:      4,
		LoanDate:    "not-a-date",
		ReturnDate:  "2024-01-24",
	})

	assert.False(t, ok)
	assert.Zero(t, calls)
	require.Len(t, notifier.notifications, 1)
	assert.True(t, notifier.notifications[0].IsError)
}
