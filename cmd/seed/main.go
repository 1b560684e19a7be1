package main

import (
	"context"
	"log"

	"mentorloop/internal/database"
	"mentorloop/internal/domain"
	"mentorloop/internal/repository"
)

// Seeds a local SQLite database with sample leads so the admin
// dashboard has something to show during development.
func main() {
	db, err := database.Connect("mentorloop.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM learners")
	db.Exec("DELETE FROM mentors")
	db.Exec("DELETE FROM contact_inquiries")

	ctx := context.Background()
	learners := repository.NewSignupRepository(db, domain.VariantLearner)
	mentors := repository.NewSignupRepository(db, domain.VariantMentor)
	contacts := repository.NewContactRepository(db)

	log.Println("Creating learners...")
	for _, s := range []domain.Signup{
		{
			Email:        "maya@example.com",
			FirstName:    "Maya",
			LastName:     "Lindqvist",
			Interest:     "Watercolor painting, ideally landscapes",
			NotifyLaunch: true,
			HowHeard:     domain.SourceFriend,
		},
		{
			Email:               "tomas@example.com",
			FirstName:           "Tomas",
			LastName:            "Ruiz",
			Phone:               "+34600111222",
			Interest:            "Sourdough baking from scratch",
			ParticipateResearch: true,
			NotifyLaunch:        true,
			HowHeard:            domain.SourceSearch,
		},
	} {
		rec := s
		if err := learners.Create(ctx, &rec); err != nil {
			log.Fatal("seed learner failed:", err)
		}
	}

	log.Println("Creating mentors...")
	for _, s := range []domain.Signup{
		{
			Email:        "ingrid@example.com",
			FirstName:    "Ingrid",
			LastName:     "Berg",
			Interest:     "Ceramics and wheel throwing, 12 years",
			NotifyLaunch: true,
			HowHeard:     domain.SourceSocialMedia,
		},
	} {
		rec := s
		if err := mentors.Create(ctx, &rec); err != nil {
			log.Fatal("seed mentor failed:", err)
		}
	}

	log.Println("Creating contact inquiries...")
	inquiry := domain.ContactInquiry{
		FirstName: "Priya",
		LastName:  "Shah",
		Email:     "priya@example.com",
		Message:   "Do you plan to support group sessions?\nWe're a knitting circle of six.",
	}
	if err := contacts.Create(ctx, &inquiry); err != nil {
		log.Fatal("seed inquiry failed:", err)
	}

	log.Println("Seed complete.")
}
