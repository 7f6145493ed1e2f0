package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"venuebuilder/internal/seating"
	"venuebuilder/internal/shared/config"
	"venuebuilder/internal/shared/database"
	"venuebuilder/internal/venues"
	"venuebuilder/pkg/logger"

	"github.com/joho/godotenv"
)

type Seeder struct {
	db      *database.DB
	service venues.Service
}

func main() {
	fmt.Println("🌱 Starting venue layout seeder...")

	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	editor := venues.NewEditor(cfg.Builder, logger.GetDefault())
	seeder := &Seeder{
		db: db,
		service: venues.NewService(
			venues.NewRepository(db.PostgreSQL),
			venues.NewMemorySessionStore(time.Hour),
			venues.NewNoopPublisher(),
			editor,
		),
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	fmt.Println("\n🧹 Cleaning layouts...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}

	fmt.Println("\n🌱 Seeding layouts...")
	if err := seeder.SeedAll(ctx); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Println("\n🎉 Seeding completed! Layouts are ready for editing.")
}

func (s *Seeder) CleanDatabase() error {
	return s.db.PostgreSQL.Exec("TRUNCATE TABLE venue_layouts").Error
}

func (s *Seeder) SeedAll(ctx context.Context) error {
	templates := []venues.CreateLayoutRequest{
		{Name: "City Stadium", Code: "CITY-STADIUM", LayoutType: string(venues.LayoutTypeStadium), UseTemplate: true},
		{Name: "Grand Theater", Code: "GRAND-THEATER", LayoutType: string(venues.LayoutTypeTheater), UseTemplate: true},
		{Name: "Downtown Arena", Code: "DOWNTOWN-ARENA", LayoutType: string(venues.LayoutTypeArena), UseTemplate: true},
	}
	for _, req := range templates {
		layout, err := s.service.CreateLayout(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", req.Code, err)
		}
		fmt.Printf("  ✅ %s (%s): %d seats\n", layout.Name, layout.Code, layout.TotalCapacity)
	}

	return s.seedCustomLayout(ctx)
}

// seedCustomLayout builds a small ground by hand through an editing session,
// the same path the builder UI takes.
func (s *Seeder) seedCustomLayout(ctx context.Context) error {
	layout, err := s.service.CreateLayout(ctx, venues.CreateLayoutRequest{
		Name:       "Community Ground",
		Code:       "COMMUNITY-GROUND",
		LayoutType: string(venues.LayoutTypeGeneral),
	})
	if err != nil {
		return err
	}

	session, err := s.service.OpenSession(ctx, layout.ID)
	if err != nil {
		return err
	}
	defer s.service.CloseSession(ctx, session.SessionID)

	for _, name := range []string{"Main Stand", "Family Stand"} {
		if session, err = s.service.QuickAddStand(ctx, session.SessionID, name); err != nil {
			return err
		}
	}

	// Keep the family stand closed until it passes inspection
	blocked := seating.StatusBlocked
	familyStand := session.CreatedID
	if _, err := s.service.ApplyMutation(ctx, session.SessionID, func(e *seating.Editor, st *seating.Stadium) (*seating.Stadium, error) {
		return e.UpdateStand(st, familyStand, seating.StandUpdate{Status: &blocked})
	}); err != nil {
		return err
	}

	saved, err := s.service.SaveSession(ctx, session.SessionID)
	if err != nil {
		return err
	}
	fmt.Printf("  ✅ %s (%s): %d of %d seats sellable\n", saved.Name, saved.Code, saved.SellableCapacity, saved.TotalCapacity)
	return nil
}
