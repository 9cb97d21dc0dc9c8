package suggest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bibliodesk/bibliodesk/pkg/config"
	"github.com/bibliodesk/bibliodesk/pkg/errcodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest(t *testing.T) {
	t.Run("returns the suggestion with a sanitized summary", func(t *testing.T) {
		var gotAuth string
		endpoint := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"title": "El Quijote",
				"author": "Miguel de Cervantes",
				"isbn": "978-84-376-0494-7",
				"publicationDate": "1605-01-16",
				"summary": "<p>Un  hidalgo</p><p>pierde el juicio</p>"
			}`))
		}))
		t.Cleanup(endpoint.Close)

		client := New(config.SuggestConfig{URL: endpoint.URL, Key: "sk-test", Timeout: 5 * time.Second})
		suggestion, err := client.Suggest(context.Background(), "el quijote")
		require.NoError(t, err)

		assert.Equal(t, "El Quijote", suggestion.Title)
		assert.Equal(t, "Un hidalgo\npierde el juicio", suggestion.Summary)
		assert.Equal(t, "Bearer sk-test", gotAuth)
	})

	t.Run("rejects a prompt under three characters without calling out", func(t *testing.T) {
		calls := 0
		endpoint := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		t.Cleanup(endpoint.Close)

		client := New(config.SuggestConfig{URL: endpoint.URL})
		_, err := client.Suggest(context.Background(), "  ab ")
		require.Error(t, err)

		codeErr := &errcodes.Error{}
		require.ErrorAs(t, err, &codeErr)
		assert.Equal(t, http.StatusUnprocessableEntity, codeErr.HTTPCode)
		assert.Zero(t, calls)
	})

	t.Run("unreachable endpoint maps to unavailable", func(t *testing.T) {
		client := New(config.SuggestConfig{URL: "http://127.0.0.1:1"})
		_, err := client.Suggest(context.Background(), "dune")
		require.Error(t, err)

		codeErr := &errcodes.Error{}
		require.ErrorAs(t, err, &codeErr)
		assert.Equal(t, "upstream_unavailable", codeErr.Code)
	})
}

func TestBookFormValues(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		wantYear  string
		wantTitle string
	}{
		{"full date", "1605-01-16", "1605", "El Quijote"},
		{"year only", "1605", "1605", "El Quijote"},
		{"no year", "unknown", "", "El Quijote"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Suggestion{Title: " El Quijote ", PublicationDate: tt.date}
			title, year := s.BookFormValues()
			assert.Equal(t, tt.wantTitle, title)
			assert.Equal(t, tt.wantYear, year)
		})
	}
}

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain text", "just prose", "just prose"},
		{"tags removed", "<b>bold</b> and <i>italic</i>", "bold and italic"},
		{"block tags break lines", "<p>one</p><p>two</p>", "one\ntwo"},
		{"entities decoded", "Tom &amp; Jerry", "Tom & Jerry"},
		{"whitespace collapsed", "a   b\t\tc", "a b c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripMarkup(tt.in))
		})
	}
}
