package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BusinessMetricsCollector refreshes the posts/comments gauges on a cron schedule
type BusinessMetricsCollector struct {
	db       *gorm.DB
	metrics  *Metrics
	logger   *zap.Logger
	schedule string
	cron     *cron.Cron
}

// NewBusinessMetricsCollector creates a new collector. schedule is a cron
// spec such as "@every 60s".
func NewBusinessMetricsCollector(db *gorm.DB, metrics *Metrics, logger *zap.Logger, schedule string) *BusinessMetricsCollector {
	return &BusinessMetricsCollector{
		db:       db,
		metrics:  metrics,
		logger:   logger,
		schedule: schedule,
		cron:     cron.New(),
	}
}

// Start collects once immediately and then on every tick of the schedule
func (c *BusinessMetricsCollector) Start() error {
	if _, err := c.cron.AddFunc(c.schedule, c.collect); err != nil {
		return fmt.Errorf("invalid metrics schedule %q: %w", c.schedule, err)
	}

	// 즉시 한 번 수집
	c.collect()

	c.cron.Start()
	return nil
}

// Stop stops the collector and waits for a running collection to finish
func (c *BusinessMetricsCollector) Stop() {
	<-c.cron.Stop().Done()
}

func (c *BusinessMetricsCollector) collect() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection",
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var postCount int64
	if err := c.db.WithContext(ctx).Table("posts").Count(&postCount).Error; err != nil {
		c.logger.Error("Failed to count posts", zap.Error(err))
	} else {
		c.metrics.SetPostsTotal(postCount)
	}

	var commentCount int64
	if err := c.db.WithContext(ctx).Table("comments").Count(&commentCount).Error; err != nil {
		c.logger.Error("Failed to count comments", zap.Error(err))
	} else {
		c.metrics.SetCommentsTotal(commentCount)
	}
}
