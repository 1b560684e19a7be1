package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"mentorloop/internal/config"
	"mentorloop/internal/database"
	"mentorloop/internal/domain"
	"mentorloop/internal/middleware"
	"mentorloop/internal/modules/admin"
	"mentorloop/internal/modules/contact"
	"mentorloop/internal/modules/feed"
	"mentorloop/internal/modules/mailer"
	"mentorloop/internal/modules/prefs"
	"mentorloop/internal/modules/signup"
	jwtsvc "mentorloop/internal/pkg/jwt"
	"mentorloop/internal/pkg/preload"
	"mentorloop/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadRuntimeConfig()
	if err != nil {
		log.Fatal(err)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	learnerRepo := repository.NewSignupRepository(db, domain.VariantLearner)
	mentorRepo := repository.NewSignupRepository(db, domain.VariantMentor)
	contactRepo := repository.NewContactRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	mailService := mailer.NewService(cfg.MailFrom, cfg.ContactTo)
	var dispatcher mailer.Dispatcher = mailer.NewProviderDispatcher(cfg.MailProviderURL, cfg.MailAPIKey)
	if cfg.MailAPIKey == "" && cfg.AppEnv == "dev" {
		log.Println("no MAIL_API_KEY, using console dispatcher")
		dispatcher = mailer.NewConsoleDispatcher()
	}
	sender := mailer.NewSender(mailService, dispatcher)

	hub := feed.NewHub()

	signupService := signup.NewService(learnerRepo, mentorRepo, sender, hub)
	sessions := signup.NewSessionStore(cfg.SessionTTL)
	signupHandler := signup.NewHandler(signupService, sessions)

	contactHandler := contact.NewHandler(sender, contactRepo)

	prefsService := prefs.NewService(context.Background(), settingsRepo, cfg.DefaultTheme)
	prefsService.Subscribe(hub.ThemeChanged)
	prefsHandler := prefs.NewHandler(prefsService)

	j := jwtsvc.New(cfg.AdminJWTSecret, cfg.AdminJWTTTL)
	adminService := admin.NewService(cfg.AdminEmail, cfg.AdminPasswordHash, j, learnerRepo, mentorRepo, contactRepo)
	adminHandler := admin.NewHandler(adminService)
	feedHandler := feed.NewHandler(hub)

	// Warm landing assets in the background; a broken asset is logged,
	// never fatal.
	if len(cfg.PreloadAssets) > 0 {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			report := preload.NewLoader().Preload(ctx, cfg.PreloadAssets)
			log.Printf("asset preload settled: total=%d loaded=%d failed=%d", report.Total, report.Loaded, len(report.Failed))
			for url, err := range report.Failed {
				log.Printf("asset preload failed: url=%s err=%v", url, err)
			}
		}()
	}

	// Abandoned form sessions expire in memory; sweep them so the map
	// does not grow forever.
	go func() {
		ticker := time.NewTicker(cfg.SessionTTL)
		defer ticker.Stop()
		for range ticker.C {
			if removed := sessions.PurgeExpired(); removed > 0 {
				log.Printf("signup session sweep: removed=%d", removed)
			}
		}
	}()

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	// The site's serverless-style mail endpoints live directly under
	// /api, matching the paths the SPA calls.
	api := r.Group("/api")
	contactHandler.RegisterRoutes(api)

	v1 := r.Group("/api/v1")
	{
		signupHandler.RegisterRoutes(v1)
		prefsHandler.RegisterRoutes(v1)

		adminGroup := v1.Group("/admin")
		adminHandler.RegisterPublicRoutes(adminGroup)

		protected := adminGroup.Group("/")
		protected.Use(middleware.AdminAuth(j))
		{
			adminHandler.RegisterProtectedRoutes(protected)
			feedHandler.RegisterRoutes(protected)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
