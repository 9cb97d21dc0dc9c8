package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bibliodesk/bibliodesk/pkg/authors"
	"github.com/bibliodesk/bibliodesk/pkg/biblio"
	"github.com/bibliodesk/bibliodesk/pkg/binder"
	"github.com/bibliodesk/bibliodesk/pkg/bookauthors"
	"github.com/bibliodesk/bibliodesk/pkg/books"
	"github.com/bibliodesk/bibliodesk/pkg/config"
	"github.com/bibliodesk/bibliodesk/pkg/copies"
	"github.com/bibliodesk/bibliodesk/pkg/errcodes"
	"github.com/bibliodesk/bibliodesk/pkg/fees"
	"github.com/bibliodesk/bibliodesk/pkg/librarians"
	"github.com/bibliodesk/bibliodesk/pkg/loans"
	"github.com/bibliodesk/bibliodesk/pkg/people"
	"github.com/bibliodesk/bibliodesk/pkg/publishers"
	"github.com/bibliodesk/bibliodesk/pkg/readers"
	"github.com/bibliodesk/bibliodesk/pkg/suggest"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/health"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/echo/v4/middleware/recovery"
)

func New(cfg *config.Config) (*http.Server, error) {
	e := echo.New()

	b, err := binder.New()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	e.Binder = b

	e.Use(logger.Middleware())
	e.Use(recovery.Middleware())
	e.Use(middleware.CORS())

	health.RegisterRoutes(e)

	client := biblio.New(cfg.API.URL, cfg.API.Timeout)
	registerEntityRoutes(e, client)

	suggest.RegisterRoutesWithGroup(e.Group("/suggest"), suggest.New(cfg.Suggest))

	echo.NotFoundHandler = notFoundHandler
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           e,
		ReadHeaderTimeout: 3 * time.Second,
	}

	return srv, nil
}

// registerEntityRoutes mounts one route group per upstream entity. Every group
// shares the same biblio client.
func registerEntityRoutes(e *echo.Echo, client *biblio.Client) {
	people.RegisterRoutesWithGroup(e.Group("/people"), client)
	authors.RegisterRoutesWithGroup(e.Group("/authors"), client)
	librarians.RegisterRoutesWithGroup(e.Group("/librarians"), client)
	readers.RegisterRoutesWithGroup(e.Group("/readers"), client)
	publishers.RegisterRoutesWithGroup(e.Group("/publishers"), client)
	books.RegisterRoutesWithGroup(e.Group("/books"), client)
	copies.RegisterRoutesWithGroup(e.Group("/copies"), client)
	bookauthors.RegisterRoutesWithGroup(e.Group("/book-authors"), client)
	loans.RegisterRoutesWithGroup(e.Group("/loans"), client)
	fees.RegisterRoutesWithGroup(e.Group("/fees"), client)
}

func notFoundHandler(c echo.Context) error {
	c.SetPath("/:path")
	return errcodes.NotFound("Page")
}
