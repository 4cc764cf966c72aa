package seed

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gabriel1997castro/open-source-economy/internal/model"
	"github.com/gabriel1997castro/open-source-economy/internal/repository"
)

// SeedDevData inserts sample rows for local frontend development. Fixed
// emails are upserted so reruns stay idempotent; the cypress-patterned
// rows get fresh random emails so the cleanup endpoints have something
// to chew on.
func SeedDevData(db *gorm.DB) {
	submissions := []model.ContactSubmission{
		{
			Name:     "Ada Lovelace",
			Email:    "ada@example.com",
			Linkedin: "https://www.linkedin.com/in/ada-lovelace",
			Message:  "Interested in sponsoring one of your maintained projects.",
		},
		{
			Name:    "Grace Hopper",
			Email:   "grace@example.com",
			Message: "Would love to discuss a partnership opportunity with you.",
		},
	}

	for _, sub := range submissions {
		result := db.FirstOrCreate(&sub, model.ContactSubmission{Email: sub.Email})
		if result.Error != nil {
			log.Printf("Error seeding contact submission %s: %v", sub.Email, result.Error)
		}
	}

	subscriptions := []model.NewsletterSubscription{
		{Email: "ada@example.com", SubscribedAt: time.Now(), IsActive: true},
		{Email: "grace@example.com", SubscribedAt: time.Now(), IsActive: false},
	}

	for _, sub := range subscriptions {
		result := db.FirstOrCreate(&sub, model.NewsletterSubscription{Email: sub.Email})
		if result.Error != nil {
			log.Printf("Error seeding newsletter subscription %s: %v", sub.Email, result.Error)
		}
	}

	testEmail := fmt.Sprintf("%s%s@example.com", repository.TestEmailPattern, uuid.NewString()[:8])
	testSub := model.NewsletterSubscription{Email: testEmail, SubscribedAt: time.Now(), IsActive: true}
	if err := db.Create(&testSub).Error; err != nil {
		log.Printf("Error seeding test subscription: %v", err)
	}

	log.Println("Development data seeded successfully!")
}
