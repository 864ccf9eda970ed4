package services

import (
	"context"
	"log"
	"time"

	"samajam-backend/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// orphanGrace is how old an unreferenced object must be before the
// sweep removes it, so in-flight uploads whose row write has not landed
// yet are left alone.
const orphanGrace = time.Hour

// CleanupService removes bucket objects no longer referenced by any
// member or news row. The photo replace flow is not atomic, so a failed
// step can strand objects; the nightly sweep closes that window.
type CleanupService struct {
	memberRepo repositories.MemberRepository
	newsRepo   repositories.NewsRepository
	storage    *StorageService
	buckets    []string
	cron       *cron.Cron
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(memberRepo repositories.MemberRepository, newsRepo repositories.NewsRepository, storage *StorageService, buckets ...string) *CleanupService {
	return &CleanupService{
		memberRepo: memberRepo,
		newsRepo:   newsRepo,
		storage:    storage,
		buckets:    buckets,
		cron:       cron.New(),
	}
}

// Start schedules the nightly sweep (02:30)
func (s *CleanupService) Start() {
	s.cron.AddFunc("30 2 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		removed, err := s.Sweep(ctx)
		if err != nil {
			log.Printf("❌ Storage sweep failed: %v", err)
			return
		}
		log.Printf("✅ Storage sweep removed %d orphaned object(s)", removed)
	})
	s.cron.Start()
	log.Println("🚀 CleanupService started")
}

// Stop stops the schedule
func (s *CleanupService) Stop() {
	s.cron.Stop()
	log.Println("🛑 CleanupService stopped")
}

// Sweep lists every bucket and removes objects that no member photo or
// news image references, skipping anything newer than the grace window.
func (s *CleanupService) Sweep(ctx context.Context) (int, error) {
	referenced, err := s.referencedURLs(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-orphanGrace)
	removed := 0

	for _, bucket := range s.buckets {
		objects, err := s.storage.store.List(ctx, bucket)
		if err != nil {
			return removed, err
		}

		for _, obj := range objects {
			if obj.LastModified.After(cutoff) {
				continue
			}
			if referenced[s.storage.PublicURL(bucket, obj.Key)] {
				continue
			}
			if err := s.storage.store.Remove(ctx, bucket, obj.Key); err != nil {
				return removed, err
			}
			removed++
		}
	}

	return removed, nil
}

// referencedURLs collects every photo URL currently stored in a row
func (s *CleanupService) referencedURLs(ctx context.Context) (map[string]bool, error) {
	referenced := make(map[string]bool)

	members, err := s.memberRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, member := range members {
		if member.ProfilePhoto != nil && *member.ProfilePhoto != "" {
			referenced[*member.ProfilePhoto] = true
		}
	}

	articles, err := s.newsRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, article := range articles {
		if article.ImageURL != nil && *article.ImageURL != "" {
			referenced[*article.ImageURL] = true
		}
	}

	return referenced, nil
}
