package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bibliodesk/bibliodesk/pkg/authors"
	"github.com/bibliodesk/bibliodesk/pkg/biblio"
	"github.com/bibliodesk/bibliodesk/pkg/binder"
	"github.com/bibliodesk/bibliodesk/pkg/bookauthors"
	"github.com/bibliodesk/bibliodesk/pkg/books"
	"github.com/bibliodesk/bibliodesk/pkg/config"
	"github.com/bibliodesk/bibliodesk/pkg/copies"
	"github.com/bibliodesk/bibliodesk/pkg/fees"
	"github.com/bibliodesk/bibliodesk/pkg/librarians"
	"github.com/bibliodesk/bibliodesk/pkg/loans"
	"github.com/bibliodesk/bibliodesk/pkg/pages"
	"github.com/bibliodesk/bibliodesk/pkg/people"
	"github.com/bibliodesk/bibliodesk/pkg/publishers"
	"github.com/bibliodesk/bibliodesk/pkg/readers"
	"github.com/bibliodesk/bibliodesk/pkg/search"
	"github.com/bibliodesk/bibliodesk/pkg/suggest"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/segmentio/encoding/json"
	"github.com/urfave/cli/v2"
)

// console holds the shared services every command wires its page from.
type console struct {
	client    *biblio.Client
	binder    *binder.Binder
	notifier  pages.Notifier
	suggester suggest.Suggester

	people     *people.Service
	authors    *authors.Service
	librarians *librarians.Service
	readers    *readers.Service
	publishers *publishers.Service
	books      *books.Service
	copies     *copies.Service
	links      *bookauthors.Service
	loans      *loans.Service
	fees       *fees.Service
}

func newConsole(cfg *config.Config) (*console, error) {
	b, err := binder.New()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	client := biblio.New(cfg.API.URL, cfg.API.Timeout)
	return &console{
		client:     client,
		binder:     b,
		notifier:   pages.NewLogNotifier(),
		suggester:  suggest.New(cfg.Suggest),
		people:     people.NewService(client),
		authors:    authors.NewService(client),
		librarians: librarians.NewService(client),
		readers:    readers.NewService(client),
		publishers: publishers.NewService(client),
		books:      books.NewService(client),
		copies:     copies.NewService(client),
		links:      bookauthors.NewService(client),
		loans:      loans.NewService(client),
		fees:       fees.NewService(client),
	}, nil
}

func main() {
	log := logger.New()

	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		log.Err(err).Fatal("config error")
	}

	con, err := newConsole(cfg)
	if err != nil {
		log.Err(err).Fatal("console error")
	}

	app := &cli.App{
		Name:        "biblioctl",
		Usage:       "terminal console for the Bibliodesk library catalog",
		Description: "Lists, filters, and edits the catalog entities the web console manages.",
		Commands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "list an entity collection",
				ArgsUsage: "<people|authors|librarians|readers|publishers|books|copies|book-authors|loans|fees>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "search", Usage: "substring filter across every column"},
				},
				Action: con.list,
			},
			{
				Name:      "delete",
				Usage:     "delete one record by id",
				ArgsUsage: "<entity> <id> (book-authors take <bookID> <authorID>)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "yes", Usage: "confirm the deletion; without it nothing is sent"},
				},
				Action: con.deleteRecord,
			},
			{
				Name:      "suggest",
				Usage:     "ask the generative endpoint for book metadata",
				ArgsUsage: "<prompt>",
				Action:    con.suggestBook,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Err(err).Fatal("command failed")
	}
}

// render reloads a page, applies the search query, and prints the filtered
// rows as JSON.
func render[T search.Searchable, K comparable](ctx context.Context, ctrl *pages.Controller[T, K], query string) error {
	if ok := ctrl.Reload(ctx); !ok {
		return errors.New(ctrl.LastError())
	}
	ctrl.SetQuery(query)

	out, err := json.MarshalIndent(ctrl.Filtered(), "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}
	fmt.Println(string(out))
	return nil
}

func (con *console) list(c *cli.Context) error {
	ctx := c.Context
	query := c.String("search")

	switch c.Args().First() {
	case "people":
		return render(ctx, people.NewPage(con.people, con.binder, con.notifier), query)
	case "authors":
		return render(ctx, authors.NewPage(con.authors, con.binder, con.notifier), query)
	case "librarians":
		return render(ctx, librarians.NewPage(con.librarians, con.people, con.binder, con.notifier).Controller, query)
	case "readers":
		return render(ctx, readers.NewPage(con.readers, con.people, con.binder, con.notifier).Controller, query)
	case "publishers":
		return render(ctx, publishers.NewPage(con.publishers, con.binder, con.notifier), query)
	case "books":
		return render(ctx, books.NewPage(con.books, con.publishers, con.binder, con.notifier).Controller, query)
	case "copies":
		return render(ctx, copies.NewPage(con.copies, con.books, con.binder, con.notifier).Controller, query)
	case "book-authors":
		return render(ctx, bookauthors.NewPage(con.links, con.books, con.authors, con.binder, con.notifier).Controller, query)
	case "loans":
		return render(ctx, loans.NewPage(con.loans, con.readers, con.librarians, con.copies, con.binder, con.notifier).Controller, query)
	case "fees":
		return render(ctx, fees.NewPage(con.fees, con.loans, con.binder, con.notifier).Controller, query)
	default:
		return errors.Errorf("unknown entity %q", c.Args().First())
	}
}

// remove walks the page's two-step deletion: request first, confirm only when
// --yes was given.
func remove[T search.Searchable, K comparable](ctx context.Context, ctrl *pages.Controller[T, K], key K, confirmed bool) error {
	if ok := ctrl.Reload(ctx); !ok {
		return errors.New(ctrl.LastError())
	}

	ctrl.RequestDelete(key)
	if !confirmed {
		ctrl.CancelDelete()
		fmt.Println("Deletion not confirmed; nothing was sent. Re-run with --yes.")
		return nil
	}
	if ok := ctrl.ConfirmDelete(ctx); !ok {
		return errors.New(ctrl.LastError())
	}
	fmt.Println("Deleted.")
	return nil
}

func (con *console) deleteRecord(c *cli.Context) error {
	ctx := c.Context
	confirmed := c.Bool("yes")
	entity := c.Args().First()

	if entity == "book-authors" {
		if c.Args().Len() != 3 {
			return errors.New("book-authors need <bookID> <authorID>")
		}
		bookID, err := strconv.Atoi(c.Args().Get(1))
		if err != nil {
			return errors.Wrap(err, "invalid book id")
		}
		authorID, err := strconv.Atoi(c.Args().Get(2))
		if err != nil {
			return errors.Wrap(err, "invalid author id")
		}
		page := bookauthors.NewPage(con.links, con.books, con.authors, con.binder, con.notifier)
		return remove(ctx, page.Controller, bookauthors.Key{BookID: bookID, AuthorID: authorID}, confirmed)
	}

	if c.Args().Len() != 2 {
		return errors.New("expected <entity> <id>")
	}
	id, err := strconv.Atoi(c.Args().Get(1))
	if err != nil {
		return errors.Wrap(err, "invalid id")
	}

	switch entity {
	case "people":
		return remove(ctx, people.NewPage(con.people, con.binder, con.notifier), id, confirmed)
	case "authors":
		return remove(ctx, authors.NewPage(con.authors, con.binder, con.notifier), id, confirmed)
	case "librarians":
		return remove(ctx, librarians.NewPage(con.librarians, con.people, con.binder, con.notifier).Controller, id, confirmed)
	case "readers":
		return remove(ctx, readers.NewPage(con.readers, con.people, con.binder, con.notifier).Controller, id, confirmed)
	case "publishers":
		return remove(ctx, publishers.NewPage(con.publishers, con.binder, con.notifier), id, confirmed)
	case "books":
		return remove(ctx, books.NewPage(con.books, con.publishers, con.binder, con.notifier).Controller, id, confirmed)
	case "copies":
		return remove(ctx, copies.NewPage(con.copies, con.books, con.binder, con.notifier).Controller, id, confirmed)
	case "loans":
		return remove(ctx, loans.NewPage(con.loans, con.readers, con.librarians, con.copies, con.binder, con.notifier).Controller, id, confirmed)
	case "fees":
		return remove(ctx, fees.NewPage(con.fees, con.loans, con.binder, con.notifier).Controller, id, confirmed)
	default:
		return errors.Errorf("unknown entity %q", entity)
	}
}

func (con *console) suggestBook(c *cli.Context) error {
	prompt := strings.Join(c.Args().Slice(), " ")

	suggestion, err := con.suggester.Suggest(c.Context, prompt)
	if err != nil {
		return errors.WithStack(err)
	}

	out, err := json.MarshalIndent(suggestion, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}
	fmt.Println(string(out))

	title, year := suggestion.BookFormValues()
	fmt.Printf("Book form prefill: titulo=%q anioPublicacion=%q\n", title, year)
	return nil
}
