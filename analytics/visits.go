package analytics

import (
	"context"
	"strings"
	"time"

	"dealership-backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const visitTTL = 90 * 24 * time.Hour

// VisitCounter tallies request volume in Redis, bucketed per day and
// per path. Counters expire after 90 days; this is a lightweight pulse
// for the dashboard, not an analytics warehouse.
type VisitCounter struct {
	redisClient *redis.Client
	ctx         context.Context
}

func NewVisitCounter(redisClient *redis.Client, ctx context.Context) *VisitCounter {
	return &VisitCounter{redisClient: redisClient, ctx: ctx}
}

// Middleware increments the day and path counters. Counting is
// best-effort and never delays the request.
func (v *VisitCounter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		day := time.Now().Format("2006-01-02")
		path := c.Path()

		go func() {
			pipe := v.redisClient.Pipeline()
			dayKey := "visits:" + day
			pathKey := "visits:page:" + day + ":" + path
			pipe.Incr(v.ctx, dayKey)
			pipe.Expire(v.ctx, dayKey, visitTTL)
			pipe.Incr(v.ctx, pathKey)
			pipe.Expire(v.ctx, pathKey, visitTTL)
			if _, err := pipe.Exec(v.ctx); err != nil {
				config.Logger.Debug("Failed to record visit", zap.Error(err))
			}
		}()

		return c.Next()
	}
}

// VisitsForDay returns the total plus per-path counts for one day.
func (v *VisitCounter) VisitsForDay(day string) (int64, map[string]int64, error) {
	total, err := v.redisClient.Get(v.ctx, "visits:"+day).Int64()
	if err == redis.Nil {
		total = 0
	} else if err != nil {
		return 0, nil, err
	}

	prefix := "visits:page:" + day + ":"
	perPath := make(map[string]int64)

	iter := v.redisClient.Scan(v.ctx, 0, prefix+"*", 200).Iterator()
	for iter.Next(v.ctx) {
		key := iter.Val()
		count, err := v.redisClient.Get(v.ctx, key).Int64()
		if err != nil {
			continue
		}
		perPath[strings.TrimPrefix(key, prefix)] = count
	}
	if err := iter.Err(); err != nil {
		return total, perPath, err
	}

	return total, perPath, nil
}

// VisitsController answers GET ?date=YYYY-MM-DD&days=N, defaulting to
// today only.
func (v *VisitCounter) VisitsController(c *fiber.Ctx) error {
	day := c.Query("date", time.Now().Format("2006-01-02"))
	if _, err := time.Parse("2006-01-02", day); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "date must be YYYY-MM-DD",
		})
	}

	days := c.QueryInt("days", 1)
	if days < 1 || days > 90 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "days must be between 1 and 90",
		})
	}

	start, _ := time.Parse("2006-01-02", day)
	results := make([]fiber.Map, 0, days)
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, -i).Format("2006-01-02")
		total, perPath, err := v.VisitsForDay(d)
		if err != nil {
			config.Logger.Error("Failed to read visit counters",
				zap.String("day", d), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not read visit counters",
			})
		}
		results = append(results, fiber.Map{
			"date":    d,
			"total":   total,
			"by_page": perPath,
		})
	}

	return c.JSON(fiber.Map{"visits": results})
}

// RouterInit registers the analytics read endpoint.
func (v *VisitCounter) RouterInit(app *fiber.App, protect fiber.Handler) {
	app.Get("/api/v1/analytics/visits", protect, v.VisitsController)
}
