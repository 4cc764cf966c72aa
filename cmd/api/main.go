package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/gabriel1997castro/open-source-economy/internal/controller"
	"github.com/gabriel1997castro/open-source-economy/internal/model"
	"github.com/gabriel1997castro/open-source-economy/internal/repository"
	"github.com/gabriel1997castro/open-source-economy/internal/service"
	"github.com/gabriel1997castro/open-source-economy/pkg/config"
	"github.com/gabriel1997castro/open-source-economy/pkg/cron"
	"github.com/gabriel1997castro/open-source-economy/pkg/database"
	"github.com/gabriel1997castro/open-source-economy/pkg/email"
	"github.com/gabriel1997castro/open-source-economy/pkg/response"
	"github.com/gabriel1997castro/open-source-economy/pkg/seed"
)

func setupRoutes(app *fiber.App, contacts *controller.ContactController, newsletters *controller.NewsletterController) {
	api := app.Group("/api")

	api.Get("/health", controller.Health)

	// Contact Routes
	contact := api.Group("/contact")
	contact.Post("/", contacts.Create)
	contact.Get("/", contacts.List)
	contact.Post("/cleanup/test", contacts.CleanupTest)
	contact.Post("/cleanup/emails", contacts.CleanupEmails)
	contact.Get("/:id", contacts.GetByID)
	contact.Delete("/:id", contacts.DeleteByID)

	// Newsletter Routes
	newsletter := api.Group("/newsletter")
	newsletter.Post("/", newsletters.Subscribe)
	newsletter.Get("/", newsletters.List)
	newsletter.Post("/unsubscribe", newsletters.Unsubscribe)
	newsletter.Post("/cleanup/test", newsletters.CleanupTest)
	newsletter.Post("/cleanup/emails", newsletters.CleanupEmails)
	newsletter.Delete("/:id", newsletters.DeleteByID)
}

func main() {
	cfg := config.Load()

	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL is not set in .env")
	}

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	err = database.Migrate(
		db,
		&model.ContactSubmission{},
		&model.NewsletterSubscription{},
	)
	if err != nil {
		log.Printf("Migration warning: %v", err)
	}

	if cfg.App.SeedDB {
		seed.SeedDevData(db)
	}

	contactRepo := repository.NewGormContactRepository(db)
	newsletterRepo := repository.NewGormNewsletterRepository(db)

	var notifier service.ContactNotifier
	if cfg.Email.ResendAPIKey != "" {
		mailer, err := email.NewService(cfg.Email.ResendAPIKey, cfg.Email.From, cfg.Email.AdminEmail)
		if err != nil {
			log.Printf("Email notifications disabled: %v", err)
		} else {
			notifier = mailer
		}
	}

	contactController := controller.NewContactController(service.NewContactService(contactRepo, notifier))
	newsletterController := controller.NewNewsletterController(service.NewNewsletterService(newsletterRepo))

	app := fiber.New(fiber.Config{
		ErrorHandler: response.ErrorHandler(cfg.App.Env),
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins(cfg.App.CORSOrigins),
	}))

	setupRoutes(app, contactController, newsletterController)

	if cfg.App.CleanupCron {
		cron.InitTestCleanupCron(contactRepo, newsletterRepo)
	}

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}

func corsOrigins(configured string) string {
	if configured == "" {
		return "*"
	}
	return configured
}
