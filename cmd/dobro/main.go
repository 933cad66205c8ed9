package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/dobrye-dela/dobro-go/internal/api"
	"github.com/dobrye-dela/dobro-go/internal/api/rest"
	"github.com/dobrye-dela/dobro-go/internal/catalog"
	"github.com/dobrye-dela/dobro-go/internal/entities"
	"github.com/dobrye-dela/dobro-go/internal/favorites"
	"github.com/dobrye-dela/dobro-go/internal/filter"
	"github.com/dobrye-dela/dobro-go/internal/geo"
	"github.com/dobrye-dela/dobro-go/internal/session"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	APIURL    string        `long:"api.url" env:"API_URL" default:"http://localhost:8000" description:"backend base url"`
	CacheTTL  time.Duration `long:"cache.ttl" env:"CACHE_TTL" default:"1m" description:"ttl for cached public reads"`
	StateFile string        `long:"state.file" env:"STATE_FILE" description:"session state file, defaults to ~/.dobro/session.json"`

	Cities   []string `long:"city" description:"filter by city, may be repeated"`
	Orgs     []int64  `long:"org" description:"filter by organization id, may be repeated"`
	Tags     []string `long:"tag" description:"filter by tag, may be repeated"`
	Search   string   `long:"search" description:"case-insensitive text search"`
	From     string   `long:"from" description:"events on or after this date (YYYY-MM-DD)"`
	To       string   `long:"to" description:"events on or before this date (YYYY-MM-DD)"`
	Map      bool     `long:"map" description:"group organizations by city"`
	Mine     bool     `long:"mine" description:"restrict events to the ones the user registered for"`
	Reason   string   `long:"reason" description:"rejection reason for the reject command"`
	LogLevel string   `long:"log.level" env:"LOG_LEVEL" default:"warning" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
}{}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Dobro"
	parser.LongDescription = "Command line client for the volunteering platform"
	parser.Usage = "[OPTIONS] command [args]"

	args, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	if len(args) == 0 {
		parser.WriteHelp(os.Stdout)
		os.Exit(1)
	}

	client := rest.New(opts.APIURL, rest.WithCacheTTL(opts.CacheTTL))
	sess := session.New(client, statePath())

	ctx := context.Background()

	if err := sess.Restore(ctx); err != nil {
		logrus.WithError(err).Warn("failed to restore session")
	}

	if err := run(ctx, args, client, sess); err != nil {
		logrus.WithError(err).Fatal("command failed")
	}
}

// nolint:gocyclo
func run(ctx context.Context, args []string, client api.Client, sess *session.Store) error {
	cmd, cmdArgs := args[0], args[1:]

	switch cmd {
	case "login":
		if len(cmdArgs) != 2 {
			return fmt.Errorf("usage: login <email> <password>")
		}
		if err := sess.Login(ctx, cmdArgs[0], cmdArgs[1]); err != nil {
			return err
		}
		fmt.Printf("logged in as %s\n", sess.User().Email)
		return nil
	case "logout":
		sess.Logout()
		fmt.Println("logged out")
		return nil
	case "whoami":
		return whoami(sess)
	case "events":
		return listEvents(ctx, client)
	case "nkos":
		return listOrganizations(ctx, client)
	case "news":
		return listNews(ctx, client)
	case "kb":
		return listKnowledgeBase(ctx, client)
	case "fav":
		return toggleFavorite(ctx, client, sess, cmdArgs)
	case "attend":
		return toggleAttendance(ctx, client, sess, cmdArgs)
	case "stats":
		return showStatistics(ctx, client)
	case "pending":
		return listPending(ctx, client, cmdArgs)
	case "approve":
		return moderate(ctx, client, cmdArgs, true)
	case "reject":
		return moderate(ctx, client, cmdArgs, false)
	case "submit":
		if err := client.SubmitForModeration(ctx); err != nil {
			return err
		}
		fmt.Println("submitted for moderation")
		return nil
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func whoami(sess *session.Store) error {
	u := sess.User()
	if u == nil {
		fmt.Println("not authenticated")
		return nil
	}

	fmt.Printf("%s <%s> role=%s", u.Name, u.Email, u.Role)
	if u.City != "" {
		fmt.Printf(" city=%s", u.City)
	}
	if exp := sess.TokenExpiresAt(); !exp.IsZero() {
		fmt.Printf(" token expires %s", exp.Format(time.RFC3339))
	}
	fmt.Println()

	return nil
}

func listEvents(ctx context.Context, client api.Client) error {
	cat := catalog.New(client)
	if err := cat.RefreshEvents(ctx); err != nil {
		return err
	}
	if err := cat.RefreshOrganizations(ctx); err != nil {
		logrus.WithError(err).Warn("failed to load organizations")
	}

	events := cat.Events()

	if opts.Mine {
		fav := favorites.New(client)
		if err := fav.Load(ctx); err != nil {
			return err
		}
		events = fav.Attended()
	}

	criteria, err := criteriaFromFlags()
	if err != nil {
		return err
	}

	for _, e := range filter.Events(events, criteria) {
		date := ""
		if !e.Date.IsZero() {
			date = e.Date.Format("2006-01-02 15:04")
		}
		fmt.Printf("%d\t%s\t%s\t%s\t%s\n", e.ID, date, e.City, e.Title, cat.OrganizerName(e))
	}

	return nil
}

func listOrganizations(ctx context.Context, client api.Client) error {
	cat := catalog.New(client)
	if err := cat.RefreshOrganizations(ctx); err != nil {
		return err
	}

	criteria, err := criteriaFromFlags()
	if err != nil {
		return err
	}

	orgs := filter.Organizations(cat.Organizations(), criteria)

	if opts.Map {
		grouping := geo.GroupByCity(orgs, func(o entities.Organization) string { return o.City })

		counts := grouping.Counts()
		cities := make([]string, 0, len(counts))
		for city := range counts {
			cities = append(cities, city)
		}
		sort.Strings(cities)

		for _, city := range cities {
			_, point, _ := geo.Lookup(city)
			fmt.Printf("%s\t%d\t%.4f,%.4f\n", city, counts[city], point.Lat, point.Lng)
		}
		return nil
	}

	for _, o := range orgs {
		fmt.Printf("%d\t%s\t%s\t%s\n", o.ID, o.City, o.Name, o.Category)
	}

	return nil
}

func listNews(ctx context.Context, client api.Client) error {
	cat := catalog.New(client)
	if err := cat.RefreshNews(ctx); err != nil {
		return err
	}

	criteria, err := criteriaFromFlags()
	if err != nil {
		return err
	}

	for _, n := range filter.News(cat.News(), criteria) {
		date := ""
		if !n.PublishedAt.IsZero() {
			date = n.PublishedAt.Format("2006-01-02")
		}
		fmt.Printf("%d\t%s\t%s\t%s\n", n.ID, date, n.City, n.Title)
	}

	return nil
}

func listKnowledgeBase(ctx context.Context, client api.Client) error {
	cat := catalog.New(client)
	if err := cat.RefreshKnowledgeBase(ctx); err != nil {
		return err
	}

	for _, item := range cat.KnowledgeBase() {
		fmt.Printf("%d\t%s\t%s\t%s\n", item.ID, item.Type, item.Category, item.Title)
	}

	return nil
}

func toggleFavorite(ctx context.Context, client api.Client, sess *session.Store, args []string) error {
	if !sess.Can(entities.CapFavorite) {
		return fmt.Errorf("login first")
	}
	if len(args) != 2 {
		return fmt.Errorf("usage: fav <events|news|nkos|knowledge-base> <id>")
	}

	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", args[1])
	}

	fav := favorites.New(client)
	if err := fav.Load(ctx); err != nil {
		return err
	}

	var now bool
	switch entities.FavoriteKind(args[0]) {
	case entities.FavoriteEvents:
		now, err = fav.ToggleEvent(ctx, entities.Event{ID: id})
	case entities.FavoriteNews:
		now, err = fav.ToggleNews(ctx, entities.News{ID: id})
	case entities.FavoriteNKOs:
		now, err = fav.ToggleOrganization(ctx, entities.Organization{ID: id})
	case entities.FavoriteKnowledgeBase:
		now, err = fav.ToggleKnowledgeBaseItem(ctx, entities.KnowledgeBaseItem{ID: id})
	default:
		return fmt.Errorf("unknown kind %q", args[0])
	}
	if err != nil {
		return err
	}

	if now {
		fmt.Println("added to favorites")
	} else {
		fmt.Println("removed from favorites")
	}

	return nil
}

func toggleAttendance(ctx context.Context, client api.Client, sess *session.Store, args []string) error {
	if !sess.Can(entities.CapAttendEvents) {
		return fmt.Errorf("login first")
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: attend <event-id>")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid event id %q", args[0])
	}

	fav := favorites.New(client)
	if err := fav.Load(ctx); err != nil {
		return err
	}

	attending, err := fav.ToggleAttendance(ctx, entities.Event{ID: id})
	if err != nil {
		return err
	}

	if attending {
		fmt.Println("registered")
	} else {
		fmt.Println("registration withdrawn")
	}

	return nil
}

func showStatistics(ctx context.Context, client api.Client) error {
	stats, err := client.Statistics(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("users: %d\nnkos: %d\nevents: %d\nnews: %d\n",
		stats.Users, stats.Organizations, stats.Events, stats.News)

	return nil
}

func listPending(ctx context.Context, client api.Client, args []string) error {
	what := "nkos"
	if len(args) > 0 {
		what = args[0]
	}

	switch what {
	case "nkos":
		orgs, err := client.PendingOrganizations(ctx)
		if err != nil {
			return err
		}
		for _, o := range orgs {
			fmt.Printf("%s\t%s\t%s\n", o.Email, o.City, o.Name)
		}
	case "events":
		events, err := client.PendingEvents(ctx)
		if err != nil {
			return err
		}
		for _, e := range events {
			fmt.Printf("%d\t%s\t%s\n", e.ID, e.City, e.Title)
		}
	default:
		return fmt.Errorf("usage: pending [nkos|events]")
	}

	return nil
}

func moderate(ctx context.Context, client api.Client, args []string, approve bool) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: approve|reject <nko|event> <email|id>")
	}

	switch args[0] {
	case "nko":
		if approve {
			return client.ApproveOrganization(ctx, args[1])
		}
		return client.RejectOrganization(ctx, args[1], opts.Reason)
	case "event":
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid event id %q", args[1])
		}
		if approve {
			return client.ApproveEvent(ctx, id)
		}
		return client.RejectEvent(ctx, id, opts.Reason)
	default:
		return fmt.Errorf("unknown target %q", args[0])
	}
}

func criteriaFromFlags() (filter.Criteria, error) {
	c := filter.Criteria{
		Cities:          opts.Cities,
		OrganizationIDs: opts.Orgs,
		Tags:            opts.Tags,
		SearchText:      opts.Search,
	}

	if opts.From != "" {
		from, err := time.Parse("2006-01-02", opts.From)
		if err != nil {
			return filter.Criteria{}, fmt.Errorf("invalid --from date %q", opts.From)
		}
		c.DateFrom = &from
	}
	if opts.To != "" {
		to, err := time.Parse("2006-01-02", opts.To)
		if err != nil {
			return filter.Criteria{}, fmt.Errorf("invalid --to date %q", opts.To)
		}
		c.DateTo = &to
	}

	return c, nil
}

func statePath() string {
	if opts.StateFile != "" {
		return opts.StateFile
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		logrus.WithError(err).Warn("failed to resolve config directory, session will not persist")
		return ""
	}
	return filepath.Join(dir, "dobro", "session.json")
}
