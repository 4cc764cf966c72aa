package cron

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/gabriel1997castro/open-source-economy/internal/repository"
)

var (
	lastRunTime time.Time
	mutex       sync.Mutex
)

// InitTestCleanupCron schedules a nightly purge of rows created by the
// automated browser tests, in case a test run died before calling the
// cleanup endpoints.
func InitTestCleanupCron(contacts repository.ContactRepository, newsletters repository.NewsletterRepository) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("0 4 * * *", func() {
		mutex.Lock()
		defer mutex.Unlock()

		if time.Since(lastRunTime) < 23*time.Hour {
			log.Printf("Test data cleanup already ran today, skipping...")
			return
		}

		purgeTestRows(contacts, newsletters)
		lastRunTime = time.Now()
	})

	if err != nil {
		log.Printf("Could not initialize cleanup cron: %v", err)
		return nil
	}

	c.Start()
	log.Printf("Test data cleanup cron initialized successfully")
	return c
}

func purgeTestRows(contacts repository.ContactRepository, newsletters repository.NewsletterRepository) {
	ctx := context.Background()

	contactCount, err := contacts.DeleteTestRows(ctx)
	if err != nil {
		log.Printf("Error purging test contact submissions: %v", err)
	} else if contactCount > 0 {
		log.Printf("Purged %d test contact submissions", contactCount)
	}

	newsletterCount, err := newsletters.DeleteTestRows(ctx)
	if err != nil {
		log.Printf("Error purging test newsletter subscriptions: %v", err)
	} else if newsletterCount > 0 {
		log.Printf("Purged %d test newsletter subscriptions", newsletterCount)
	}
}
