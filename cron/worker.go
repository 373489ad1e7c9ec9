package cron

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"time"

	"hantrip/config"
	contentRepo "hantrip/database/repository/content"
	"hantrip/models"
	"hantrip/services/sitemap"
	"hantrip/utils"

	"github.com/hibiken/asynq"
)

const (
	TypeSitemapRebuild    = "sitemap:rebuild"
	TypePopularityRefresh = "popularity:refresh"

	// SitemapCacheKey is where the rebuilt sitemap XML lives in Redis.
	SitemapCacheKey = "sitemap:xml"

	sitemapInterval    = 6 * time.Hour
	popularityInterval = 1 * time.Hour
)

// PopularityCacheKey is where a category's popularity-sorted contents live in
// Redis.
func PopularityCacheKey(category models.Category) string {
	return "popularity:" + string(category)
}

// InitWorker runs the async worker in background and schedules the periodic
// rebuild tasks.
func InitWorker(sitemapSvc *sitemap.Service, contents contentRepo.KContentRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSitemapRebuild, handleSitemapRebuild(sitemapSvc))
	mux.HandleFunc(TypePopularityRefresh, handlePopularityRefresh(contents))

	go scheduleRebuilds(redisOpts)

	// Start async worker with retry logic
	go func() {
		log.Println("[Worker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[Worker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[Worker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// scheduleRebuilds enqueues the periodic tasks. Both run once at startup so a
// fresh deploy serves a sitemap immediately.
func scheduleRebuilds(redisOpts asynq.RedisClientOpt) {
	client := asynq.NewClient(redisOpts)
	defer client.Close()

	enqueue := func(taskType string) {
		if _, err := client.Enqueue(asynq.NewTask(taskType, nil)); err != nil {
			log.Printf("[Worker] ⚠️ Failed to enqueue %s: %v", taskType, err)
		}
	}

	enqueue(TypeSitemapRebuild)
	enqueue(TypePopularityRefresh)

	sitemapTicker := time.NewTicker(sitemapInterval)
	popularityTicker := time.NewTicker(popularityInterval)
	for {
		select {
		case <-sitemapTicker.C:
			enqueue(TypeSitemapRebuild)
		case <-popularityTicker.C:
			enqueue(TypePopularityRefresh)
		}
	}
}

func handleSitemapRebuild(sitemapSvc *sitemap.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		out, err := sitemapSvc.Build()
		if err != nil {
			log.Printf("[SitemapRebuild] ❌ Failed to build sitemap: %v", err)
			return err
		}

		if err := utils.GetCacheClient().Set(ctx, SitemapCacheKey, out, 0).Err(); err != nil {
			log.Printf("[SitemapRebuild] ❌ Failed to cache sitemap: %v", err)
			return err
		}
		log.Printf("[SitemapRebuild] ✅ Sitemap rebuilt (%d bytes)", len(out))
		return nil
	}
}

// handlePopularityRefresh caches each category's contents sorted by
// popularity, so list pages skip the sort on the request path.
func handlePopularityRefresh(contents contentRepo.KContentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		for _, category := range models.Categories() {
			items, err := contents.GetByCategory(category)
			if err != nil {
				log.Printf("[PopularityRefresh] ❌ Failed to load %s contents: %v", category, err)
				return err
			}

			sort.SliceStable(items, func(i, j int) bool {
				return popularity(items[i]) > popularity(items[j])
			})

			payload, err := json.Marshal(items)
			if err != nil {
				return err
			}
			key := PopularityCacheKey(category)
			if err := utils.GetCacheClient().Set(ctx, key, payload, 0).Err(); err != nil {
				log.Printf("[PopularityRefresh] ❌ Failed to cache %s: %v", key, err)
				return err
			}
		}
		log.Println("[PopularityRefresh] ✅ Popularity caches refreshed")
		return nil
	}
}

func popularity(c models.KContent) float64 {
	if c.Popularity == nil {
		return 0
	}
	return *c.Popularity
}
