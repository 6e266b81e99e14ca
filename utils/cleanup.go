package utils

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"dealership-backend/config"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const exportFileTTL = 24 * time.Hour

// CleanupExpiredExports removes generated export/report files older
// than the TTL. Uploaded customer documents are never touched.
func CleanupExpiredExports(dir string, ttl time.Duration) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			config.Logger.Warn("Export cleanup: cannot read directory", zap.String("dir", dir), zap.Error(err))
		}
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if time.Since(info.ModTime()) > ttl {
			path := filepath.Join(dir, entry.Name())
			if err := os.Remove(path); err != nil {
				config.Logger.Warn("Export cleanup: delete failed", zap.String("file", path), zap.Error(err))
			}
		}
	}
}

// CleanupStaleOtpLocks drops leftover OTP rate-limit keys. Redis TTLs
// normally handle this; the sweep catches keys written without one.
func CleanupStaleOtpLocks(redisClient *redis.Client) {
	ctx := context.Background()
	iter := redisClient.Scan(ctx, 0, "otp_lock:*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		ttl, err := redisClient.TTL(ctx, key).Result()
		if err != nil {
			continue
		}
		if ttl == -1 { // no expiry set
			redisClient.Del(ctx, key)
		}
	}
	if err := iter.Err(); err != nil {
		config.Logger.Warn("OTP lock sweep failed", zap.Error(err))
	}
}

// RunScheduledJobs starts the cron scheduler: export-file cleanup, OTP
// lock sweeps, and the lead/costing reconciliation the caller supplies.
// Blocks; run in a goroutine.
func RunScheduledJobs(redisClient *redis.Client, reconcile func()) {
	c := cron.New()

	c.AddFunc("@hourly", func() {
		CleanupExpiredExports("./public/files", exportFileTTL)
	})

	c.AddFunc("@every 6h", func() {
		CleanupStaleOtpLocks(redisClient)
	})

	// Costing finalization and the lead status write are two separate
	// writes; a crash between them leaves a lead stuck at C2 with its
	// costing already saved. The sweep re-drives those.
	c.AddFunc("@every 10m", reconcile)

	config.Logger.Info("Cron scheduler started")
	c.Start()
	select {}
}
