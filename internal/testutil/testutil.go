package testutil

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/joshua-takyi/eventhub/internal/connect"
	"github.com/joshua-takyi/eventhub/internal/models"
	"gorm.io/gorm"
)

var seq atomic.Int64

func next() int64 { return seq.Add(1) }

func Logger(tb testing.TB) *slog.Logger {
	tb.Helper()
	return slog.New(slog.DiscardHandler)
}

// DB opens a private in-memory sqlite database with the full schema.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := connect.Open("sqlite", dsn, Logger(tb))
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}
	if err := connect.Migrate(db); err != nil {
		tb.Fatalf("migrate test db: %v", err)
	}
	tb.Cleanup(func() {
		_ = connect.Close(db)
	})
	return db
}

func Store(tb testing.TB) *models.SQLRepo {
	tb.Helper()
	return models.NewSQLRepo(DB(tb))
}

// CountryCode returns a fresh two letter code.
func CountryCode() string {
	n := next()
	return string([]byte{byte('A' + (n/26)%26), byte('A' + n%26)})
}

func SeedCountry(tb testing.TB, store models.Store) *models.Country {
	tb.Helper()
	country := &models.Country{Name: gofakeit.Country(), Code: CountryCode()}
	if err := store.CreateCountry(context.Background(), country); err != nil {
		tb.Fatalf("seed country: %v", err)
	}
	return country
}

func SeedCity(tb testing.TB, store models.Store, countryID int64) *models.City {
	tb.Helper()
	city := &models.City{Name: fmt.Sprintf("%s %d", gofakeit.City(), next()), CountryID: countryID}
	if err := store.CreateCity(context.Background(), city); err != nil {
		tb.Fatalf("seed city: %v", err)
	}
	return city
}

func SeedVenue(tb testing.TB, store models.Store, cityID int64) *models.Venue {
	tb.Helper()
	venue := &models.Venue{
		Name:        gofakeit.Company() + " Hall",
		Address:     gofakeit.Street(),
		Description: gofakeit.LoremIpsumSentence(8),
		CityID:      cityID,
	}
	if err := store.CreateVenue(context.Background(), venue); err != nil {
		tb.Fatalf("seed venue: %v", err)
	}
	return venue
}

func SeedCategory(tb testing.TB, store models.Store) *models.Category {
	tb.Helper()
	category := &models.Category{
		Name:        fmt.Sprintf("%s %d", gofakeit.HipsterWord(), next()),
		Description: gofakeit.LoremIpsumSentence(6),
	}
	if err := store.CreateCategory(context.Background(), category); err != nil {
		tb.Fatalf("seed category: %v", err)
	}
	return category
}

func SeedUser(tb testing.TB, store models.Store, role models.Role) *models.User {
	tb.Helper()
	n := next()
	user := &models.User{
		FirstName:   gofakeit.FirstName(),
		LastName:    gofakeit.LastName(),
		Email:       fmt.Sprintf("user%d@%s", n, gofakeit.DomainName()),
		PhoneNumber: Phone(),
		Role:        role,
	}
	if err := store.CreateUser(context.Background(), user); err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return user
}

// Phone returns a unique E.164 number.
func Phone() string {
	return fmt.Sprintf("+1555%07d", next())
}

func SeedEvent(tb testing.TB, store models.Store, categoryID, venueID, organizerID int64) *models.Event {
	tb.Helper()
	event := &models.Event{
		Name:        gofakeit.BuzzWord() + " Festival",
		Description: gofakeit.LoremIpsumSentence(10),
		Status:      models.EventStatusPublished,
		Date:        time.Now().UTC().Add(72 * time.Hour).Truncate(time.Second),
		CategoryID:  categoryID,
		VenueID:     venueID,
		OrganizerID: organizerID,
	}
	if err := store.CreateEvent(context.Background(), event); err != nil {
		tb.Fatalf("seed event: %v", err)
	}
	return event
}

// Graph is a minimal connected set of records around one event.
type Graph struct {
	Country   *models.Country
	City      *models.City
	Venue     *models.Venue
	Category  *models.Category
	Organizer *models.User
	Event     *models.Event
}

func SeedGraph(tb testing.TB, store models.Store) Graph {
	tb.Helper()
	var g Graph
	g.Country = SeedCountry(tb, store)
	g.City = SeedCity(tb, store, g.Country.ID)
	g.Venue = SeedVenue(tb, store, g.City.ID)
	g.Category = SeedCategory(tb, store)
	g.Organizer = SeedUser(tb, store, models.RoleOrganizer)
	g.Event = SeedEvent(tb, store, g.Category.ID, g.Venue.ID, g.Organizer.ID)
	return g
}
