package database

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

const queryStartKey = "metrics:query_start_time"

// MetricsRecorder is an interface for recording database metrics
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
	UpdateDBStats(stats interface{})
}

type registerFunc func(name string, fn func(*gorm.DB)) error

// RegisterMetricsCallbacks times every create/query/delete statement issued through db
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) error {
	cb := db.Callback()

	create := cb.Create()
	if err := instrument("insert", create.Before("gorm:create").Register, create.After("gorm:create").Register, recorder); err != nil {
		return err
	}
	query := cb.Query()
	if err := instrument("select", query.Before("gorm:query").Register, query.After("gorm:query").Register, recorder); err != nil {
		return err
	}
	del := cb.Delete()
	if err := instrument("delete", del.Before("gorm:delete").Register, del.After("gorm:delete").Register, recorder); err != nil {
		return err
	}
	raw := cb.Raw()
	return instrument("raw", raw.Before("gorm:raw").Register, raw.After("gorm:raw").Register, recorder)
}

func instrument(operation string, before, after registerFunc, recorder MetricsRecorder) error {
	if err := before("metrics:"+operation+"_before", func(db *gorm.DB) {
		db.InstanceSet(queryStartKey, time.Now())
	}); err != nil {
		return fmt.Errorf("failed to register %s callback: %w", operation, err)
	}

	if err := after("metrics:"+operation+"_after", func(db *gorm.DB) {
		startTime, ok := db.InstanceGet(queryStartKey)
		if !ok {
			return
		}
		table := db.Statement.Table
		if table == "" {
			table = "unknown"
		}
		recorder.RecordDBQuery(operation, table, time.Since(startTime.(time.Time)), db.Error)
	}); err != nil {
		return fmt.Errorf("failed to register %s callback: %w", operation, err)
	}

	return nil
}

// StartDBStatsCollector pushes connection pool stats to recorder every interval
// until the returned channel is closed.
func StartDBStatsCollector(db *gorm.DB, recorder MetricsRecorder, interval time.Duration) chan struct{} {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sqlDB, err := db.DB()
				if err != nil {
					continue
				}
				recorder.UpdateDBStats(sqlDB.Stats())
			case <-done:
				return
			}
		}
	}()

	return done
}
